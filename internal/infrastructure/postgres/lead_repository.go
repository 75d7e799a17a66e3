package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

type LeadRepo struct {
	q Querier
}

func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

const leadColumns = `id, company_name, contact_name, email, phone, source, status, industry,
	is_converted, created_at, updated_at`

func scanLead(row rowScanner) (*entity.Lead, error) {
	var l entity.Lead
	var source, status, industry string
	if err := row.Scan(&l.ID, &l.CompanyName, &l.ContactName, &l.Email, &l.Phone,
		&source, &status, &industry, &l.IsConverted, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if err := parseEnum(&l.Source, source, entity.ParseLeadSource); err != nil {
		return nil, err
	}
	if err := parseEnum(&l.Status, status, entity.ParseLeadStatus); err != nil {
		return nil, err
	}
	if err := parseEnum(&l.Industry, industry, entity.ParseIndustryType); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.CompanyName, l.ContactName, l.Email, l.Phone,
		l.Source.String(), l.Status.String(), l.Industry.String(),
		l.IsConverted, l.CreatedAt, l.UpdatedAt,
	)
	return writeErr("insert lead", "Lead", err)
}

func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	if !validID(id) {
		return nil, nil
	}
	l, err := scanLead(r.q.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

// List prospectos, los más recientes primero.
func (r *LeadRepo) List(ctx context.Context) ([]*entity.Lead, error) {
	rows, err := r.q.Query(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	list, err := collect(rows, scanLead)
	if err != nil {
		return nil, fmt.Errorf("scan lead: %w", err)
	}
	return list, nil
}

func (r *LeadRepo) Update(ctx context.Context, l *entity.Lead) error {
	query := `
		UPDATE leads SET company_name = $2, contact_name = $3, email = $4, phone = $5,
			source = $6, status = $7, industry = $8, is_converted = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.CompanyName, l.ContactName, l.Email, l.Phone,
		l.Source.String(), l.Status.String(), l.Industry.String(), l.IsConverted, l.UpdatedAt,
	)
	return writeErr("update lead", "Lead", err)
}

func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return writeErr("delete lead", "Lead", err)
}
