package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// SalesTotals agregado de ventas de un período.
type SalesTotals struct {
	Count       int
	FinalAmount decimal.Decimal
}

// DashboardRepository consultas de solo lectura para las tarjetas del dashboard.
// Todas usan COALESCE: sin filas devuelven cero, nunca error.
type DashboardRepository interface {
	CountLeadsByStatus(ctx context.Context) (map[entity.LeadStatus]int, error)
	CountTicketsByStatus(ctx context.Context) (map[entity.TicketStatus]int, error)
	// CountTasksDue tareas no completadas ni canceladas con vencimiento en [from, to).
	CountTasksDue(ctx context.Context, from, to time.Time) (int, error)
	GetSalesTotals(ctx context.Context, from, to time.Time) (SalesTotals, error)
	CountInteractionsSince(ctx context.Context, since time.Time) (int, error)
}
