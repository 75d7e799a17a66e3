package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, first_name, last_name, email, phone, address, type,
	company_name, tax_number, sector, created_at, updated_at`

func scanCustomer(row rowScanner) (*entity.Customer, error) {
	var c entity.Customer
	var typ string
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &typ,
		&c.CompanyName, &c.TaxNumber, &c.Sector, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if err := parseEnum(&c.Type, typ, entity.ParseCustomerType); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.Type.String(),
		c.CompanyName, c.TaxNumber, c.Sector, c.CreatedAt, c.UpdatedAt,
	)
	return writeErr("insert customer", "Customer", err)
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if !validID(id) {
		return nil, nil
	}
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List clientes ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY first_name, last_name`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	list, err := collect(rows, scanCustomer)
	if err != nil {
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return list, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6,
			type = $7, company_name = $8, tax_number = $9, sector = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
		c.Type.String(), c.CompanyName, c.TaxNumber, c.Sector, c.UpdatedAt,
	)
	return writeErr("update customer", "Customer", err)
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return writeErr("delete customer", "Customer", err)
}
