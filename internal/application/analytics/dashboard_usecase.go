// Package analytics contiene el resumen del dashboard del CRM.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// recentInteractionsWindow ventana de la tarjeta de interacciones recientes.
const recentInteractionsWindow = 7 * 24 * time.Hour

// DashboardUseCase genera las tarjetas del dashboard.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock reemplaza el reloj; útil en pruebas.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary lanza las cinco consultas en paralelo y espera a todas:
//  1. CountLeadsByStatus            → LeadsByStatus (todos los estados, también en cero)
//  2. CountTicketsByStatus          → OpenTickets (Open + AssignedToEmployee)
//  3. CountTasksDue(hoy)            → TasksDueToday
//  4. GetSalesTotals(mes)           → MonthlySalesCount + MonthlySalesAmount
//  5. CountInteractionsSince(7 días) → InteractionsLast7Days
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	type countResult struct {
		n   int
		err error
	}
	type leadsResult struct {
		byStatus map[entity.LeadStatus]int
		err      error
	}
	type ticketsResult struct {
		byStatus map[entity.TicketStatus]int
		err      error
	}
	type salesResult struct {
		totals repository.SalesTotals
		err    error
	}

	leadsCh := make(chan leadsResult, 1)
	ticketsCh := make(chan ticketsResult, 1)
	tasksCh := make(chan countResult, 1)
	salesCh := make(chan salesResult, 1)
	interactionsCh := make(chan countResult, 1)

	go func() {
		m, err := uc.repo.CountLeadsByStatus(ctx)
		leadsCh <- leadsResult{m, err}
	}()
	go func() {
		m, err := uc.repo.CountTicketsByStatus(ctx)
		ticketsCh <- ticketsResult{m, err}
	}()
	go func() {
		n, err := uc.repo.CountTasksDue(ctx, todayStart, tomorrow)
		tasksCh <- countResult{n, err}
	}()
	go func() {
		t, err := uc.repo.GetSalesTotals(ctx, monthStart, tomorrow)
		salesCh <- salesResult{t, err}
	}()
	go func() {
		n, err := uc.repo.CountInteractionsSince(ctx, now.Add(-recentInteractionsWindow))
		interactionsCh <- countResult{n, err}
	}()

	leads := <-leadsCh
	tickets := <-ticketsCh
	tasks := <-tasksCh
	sales := <-salesCh
	interactions := <-interactionsCh

	if leads.err != nil {
		return nil, fmt.Errorf("dashboard: prospectos por estado: %w", leads.err)
	}
	if tickets.err != nil {
		return nil, fmt.Errorf("dashboard: tickets por estado: %w", tickets.err)
	}
	if tasks.err != nil {
		return nil, fmt.Errorf("dashboard: tareas de hoy: %w", tasks.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", sales.err)
	}
	if interactions.err != nil {
		return nil, fmt.Errorf("dashboard: interacciones recientes: %w", interactions.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	byStatus := make([]dto.StatusCount, 0, len(entity.LeadStatuses()))
	for _, s := range entity.LeadStatuses() {
		byStatus = append(byStatus, dto.StatusCount{Status: s.String(), Count: leads.byStatus[s]})
	}

	return &dto.DashboardSummary{
		LeadsByStatus:         byStatus,
		OpenTickets:           tickets.byStatus[entity.TicketStatusOpen] + tickets.byStatus[entity.TicketStatusAssignedToEmployee],
		TasksDueToday:         tasks.n,
		MonthlySalesCount:     sales.totals.Count,
		MonthlySalesAmount:    sales.totals.FinalAmount.Round(2),
		InteractionsLast7Days: interactions.n,
		PeriodLabel:           now.Format("January 2006"),
	}, nil
}
