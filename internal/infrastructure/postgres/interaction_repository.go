package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.InteractionRepository = (*InteractionRepo)(nil)

type InteractionRepo struct {
	q Querier
}

func NewInteractionRepository(q Querier) *InteractionRepo {
	return &InteractionRepo{q: q}
}

const interactionColumns = `id, customer_id, type, content, interaction_date, created_at, updated_at`

func scanInteraction(row rowScanner) (*entity.Interaction, error) {
	var i entity.Interaction
	var typ string
	if err := row.Scan(&i.ID, &i.CustomerID, &typ, &i.Content, &i.InteractionDate, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	if err := parseEnum(&i.Type, typ, entity.ParseInteractionType); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InteractionRepo) Create(ctx context.Context, i *entity.Interaction) error {
	query := `
		INSERT INTO interactions (` + interactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.CustomerID, i.Type.String(), i.Content, i.InteractionDate, i.CreatedAt, i.UpdatedAt,
	)
	return writeErr("insert interaction", "Interaction", err)
}

func (r *InteractionRepo) GetByID(ctx context.Context, id string) (*entity.Interaction, error) {
	if !validID(id) {
		return nil, nil
	}
	i, err := scanInteraction(r.q.QueryRow(ctx, `SELECT `+interactionColumns+` FROM interactions WHERE id = $1`, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get interaction: %w", err)
	}
	return i, nil
}

func (r *InteractionRepo) List(ctx context.Context) ([]*entity.Interaction, error) {
	return r.list(ctx, `SELECT `+interactionColumns+` FROM interactions ORDER BY interaction_date DESC`)
}

func (r *InteractionRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Interaction, error) {
	if !validID(customerID) {
		return []*entity.Interaction{}, nil
	}
	return r.list(ctx, `SELECT `+interactionColumns+` FROM interactions
		WHERE customer_id = $1 ORDER BY interaction_date DESC`, customerID)
}

func (r *InteractionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Interaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	list, err := collect(rows, scanInteraction)
	if err != nil {
		return nil, fmt.Errorf("scan interaction: %w", err)
	}
	return list, nil
}

func (r *InteractionRepo) Update(ctx context.Context, i *entity.Interaction) error {
	query := `
		UPDATE interactions SET customer_id = $2, type = $3, content = $4, interaction_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, i.ID, i.CustomerID, i.Type.String(), i.Content, i.InteractionDate, i.UpdatedAt)
	return writeErr("update interaction", "Interaction", err)
}

func (r *InteractionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM interactions WHERE id = $1`, id)
	return writeErr("delete interaction", "Interaction", err)
}
