package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo persiste la cabecera en sales y las líneas en sale_lines (position conserva el orden).
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, sale_date, customer_id, sales_person_id, total_amount, discount, tax,
	final_amount, status, invoice_number, created_at, updated_at`

func scanSale(row rowScanner) (*entity.Sale, error) {
	var s entity.Sale
	var status string
	if err := row.Scan(&s.ID, &s.SaleDate, &s.CustomerID, &s.SalesPersonID, &s.TotalAmount,
		&s.Discount, &s.Tax, &s.FinalAmount, &status, &s.InvoiceNumber, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if err := parseEnum(&s.Status, status, entity.ParseSaleStatus); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserta cabecera y líneas. Debe llamarse dentro de la unidad de trabajo.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.SaleDate, s.CustomerID, s.SalesPersonID, s.TotalAmount, s.Discount, s.Tax,
		s.FinalAmount, s.Status.String(), s.InvoiceNumber, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert sale", "Sale", err)
	}
	return r.insertLines(ctx, s)
}

func (r *SaleRepo) insertLines(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sale_lines (id, sale_id, product_id, position, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, l := range s.Lines {
		if _, err := r.q.Exec(ctx, query, l.ID, s.ID, l.ProductID, i, l.Quantity, l.UnitPrice, l.TotalPrice); err != nil {
			return writeErr("insert sale line", "SaleLine", err)
		}
	}
	return nil
}

// GetByID cabecera más líneas en orden.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	if !validID(id) {
		return nil, nil
	}
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	lines, err := r.linesOf(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Lines = lines[s.ID]
	return s, nil
}

// List ventas con sus líneas (una consulta para cabeceras y otra para todas las líneas).
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY sale_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	list, err := collect(rows, scanSale)
	if err != nil {
		return nil, fmt.Errorf("scan sale: %w", err)
	}
	if len(list) == 0 {
		return list, nil
	}
	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	lines, err := r.linesOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Lines = lines[s.ID]
	}
	return list, nil
}

func (r *SaleRepo) linesOf(ctx context.Context, saleIDs []string) (map[string][]entity.SaleLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, quantity, unit_price, total_price
		FROM sale_lines WHERE sale_id = ANY($1::uuid[]) ORDER BY sale_id, position`, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.SaleLine, len(saleIDs))
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		out[l.SaleID] = append(out[l.SaleID], l)
	}
	return out, rows.Err()
}

// Update sobrescribe la cabecera y reemplaza todas las líneas.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	query := `
		UPDATE sales SET sale_date = $2, customer_id = $3, sales_person_id = $4, total_amount = $5,
			discount = $6, tax = $7, final_amount = $8, status = $9, invoice_number = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.SaleDate, s.CustomerID, s.SalesPersonID, s.TotalAmount, s.Discount, s.Tax,
		s.FinalAmount, s.Status.String(), s.InvoiceNumber, s.UpdatedAt,
	)
	if err != nil {
		return writeErr("update sale", "Sale", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_lines WHERE sale_id = $1`, s.ID); err != nil {
		return fmt.Errorf("clear sale lines: %w", err)
	}
	return r.insertLines(ctx, s)
}

// Delete las líneas caen por ON DELETE CASCADE.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	return writeErr("delete sale", "Sale", err)
}
