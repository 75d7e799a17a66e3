package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

type TicketRepo struct {
	q Querier
}

func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketColumns = `id, user_id, description, ai_suggested_solution, final_solution, status,
	assigned_employee_id, created_at, updated_at`

func scanTicket(row rowScanner) (*entity.Ticket, error) {
	var t entity.Ticket
	var status string
	if err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.AISuggestedSolution, &t.FinalSolution,
		&status, &t.AssignedEmployeeID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if err := parseEnum(&t.Status, status, entity.ParseTicketStatus); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.UserID, t.Description, t.AISuggestedSolution, t.FinalSolution,
		t.Status.String(), t.AssignedEmployeeID, t.CreatedAt, t.UpdatedAt,
	)
	return writeErr("insert ticket", "Ticket", err)
}

func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	if !validID(id) {
		return nil, nil
	}
	t, err := scanTicket(r.q.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

func (r *TicketRepo) List(ctx context.Context) ([]*entity.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC`)
}

// ListByUser tickets abiertos por userID.
func (r *TicketRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Ticket, error) {
	if !validID(userID) {
		return []*entity.Ticket{}, nil
	}
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *TicketRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Ticket, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	list, err := collect(rows, scanTicket)
	if err != nil {
		return nil, fmt.Errorf("scan ticket: %w", err)
	}
	return list, nil
}

func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `
		UPDATE tickets SET description = $2, ai_suggested_solution = $3, final_solution = $4,
			status = $5, assigned_employee_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Description, t.AISuggestedSolution, t.FinalSolution,
		t.Status.String(), t.AssignedEmployeeID, t.UpdatedAt,
	)
	return writeErr("update ticket", "Ticket", err)
}

func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	return writeErr("delete ticket", "Ticket", err)
}
