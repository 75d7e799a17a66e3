package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para las tarjetas del dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountLeadsByStatus cantidad de prospectos por estado; los estados sin filas no aparecen.
func (r *DashboardRepo) CountLeadsByStatus(ctx context.Context) (map[entity.LeadStatus]int, error) {
	out := make(map[entity.LeadStatus]int)
	err := r.countBy(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`, func(name string, n int) error {
		var s entity.LeadStatus
		if err := parseEnum(&s, name, entity.ParseLeadStatus); err != nil {
			return err
		}
		out[s] = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard.CountLeadsByStatus: %w", err)
	}
	return out, nil
}

func (r *DashboardRepo) CountTicketsByStatus(ctx context.Context) (map[entity.TicketStatus]int, error) {
	out := make(map[entity.TicketStatus]int)
	err := r.countBy(ctx, `SELECT status, COUNT(*) FROM tickets GROUP BY status`, func(name string, n int) error {
		var s entity.TicketStatus
		if err := parseEnum(&s, name, entity.ParseTicketStatus); err != nil {
			return err
		}
		out[s] = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard.CountTicketsByStatus: %w", err)
	}
	return out, nil
}

func (r *DashboardRepo) countBy(ctx context.Context, query string, add func(name string, n int) error) error {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return err
		}
		if err := add(name, n); err != nil {
			return err
		}
	}
	return rows.Err()
}

// CountTasksDue tareas pendientes con vencimiento en [from, to).
func (r *DashboardRepo) CountTasksDue(ctx context.Context, from, to time.Time) (int, error) {
	const query = `
	SELECT COUNT(*) FROM tasks
	WHERE due_date >= $1 AND due_date < $2
	  AND status NOT IN ('Completed', 'Cancelled')`
	var n int
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountTasksDue: %w", err)
	}
	return n, nil
}

// GetSalesTotals cantidad y suma de final_amount en [from, to).
func (r *DashboardRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (repository.SalesTotals, error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(final_amount), 0)
	FROM sales
	WHERE sale_date >= $1 AND sale_date < $2`
	var t repository.SalesTotals
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&t.Count, &t.FinalAmount); err != nil {
		return repository.SalesTotals{}, fmt.Errorf("dashboard.GetSalesTotals: %w", err)
	}
	return t, nil
}

func (r *DashboardRepo) CountInteractionsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM interactions WHERE interaction_date >= $1`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountInteractionsSince: %w", err)
	}
	return n, nil
}
