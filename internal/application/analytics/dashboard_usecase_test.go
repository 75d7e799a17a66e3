package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/domain/repository/repotest"
)

var fixedNow = time.Date(2026, 10, 17, 14, 30, 0, 0, time.UTC)

func TestGetSummary_TarjetasDelDashboard(t *testing.T) {
	store := repotest.New()
	r := store.Repos()
	ctx := context.Background()

	for i, st := range []entity.LeadStatus{entity.LeadStatusNew, entity.LeadStatusNew, entity.LeadStatusLost} {
		require.NoError(t, r.Leads.Create(ctx, &entity.Lead{ID: string(rune('a' + i)), Status: st, CreatedAt: fixedNow}))
	}
	for i, st := range []entity.TicketStatus{entity.TicketStatusOpen, entity.TicketStatusAssignedToEmployee, entity.TicketStatusClosed, entity.TicketStatusResolvedByAI} {
		require.NoError(t, r.Tickets.Create(ctx, &entity.Ticket{ID: string(rune('a' + i)), Status: st, CreatedAt: fixedNow}))
	}
	tasks := []entity.Task{
		{ID: "hoy", DueDate: fixedNow.Add(2 * time.Hour), Status: entity.TaskStatusTodo},
		{ID: "hoy-cerrada", DueDate: fixedNow, Status: entity.TaskStatusCompleted},
		{ID: "manana", DueDate: fixedNow.Add(24 * time.Hour), Status: entity.TaskStatusTodo},
	}
	for i := range tasks {
		require.NoError(t, r.Tasks.Create(ctx, &tasks[i]))
	}
	sales := []entity.Sale{
		{ID: "s1", SaleDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), FinalAmount: decimal.RequireFromString("100.10")},
		{ID: "s2", SaleDate: fixedNow, FinalAmount: decimal.RequireFromString("50.005")},
		{ID: "s3", SaleDate: time.Date(2026, 9, 30, 23, 0, 0, 0, time.UTC), FinalAmount: decimal.NewFromInt(999)},
	}
	for i := range sales {
		require.NoError(t, r.Sales.Create(ctx, &sales[i]))
	}
	for i, d := range []time.Time{fixedNow.Add(-24 * time.Hour), fixedNow.Add(-8 * 24 * time.Hour)} {
		require.NoError(t, r.Interactions.Create(ctx, &entity.Interaction{ID: string(rune('a' + i)), InteractionDate: d}))
	}

	got, err := analytics.NewDashboardUseCase(r.Dashboard).WithClock(func() time.Time { return fixedNow }).GetSummary(ctx)
	require.NoError(t, err)

	require.Len(t, got.LeadsByStatus, len(entity.LeadStatuses()))
	assert.Equal(t, dto.StatusCount{Status: "New", Count: 2}, got.LeadsByStatus[0])
	assert.Equal(t, dto.StatusCount{Status: "InProgress", Count: 0}, got.LeadsByStatus[1])
	assert.Equal(t, 2, got.OpenTickets)
	assert.Equal(t, 1, got.TasksDueToday)
	assert.Equal(t, 2, got.MonthlySalesCount)
	assert.Equal(t, "150.11", got.MonthlySalesAmount.StringFixed(2))
	assert.Equal(t, 1, got.InteractionsLast7Days)
	assert.Equal(t, "October 2026", got.PeriodLabel)
}

func TestGetSummary_SinDatos(t *testing.T) {
	got, err := analytics.NewDashboardUseCase(repotest.New().Repos().Dashboard).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.OpenTickets)
	assert.True(t, got.MonthlySalesAmount.IsZero())
	for _, sc := range got.LeadsByStatus {
		assert.Zero(t, sc.Count)
	}
}

// failingDashboard falla solo en la consulta de ventas.
type failingDashboard struct {
	repository.DashboardRepository
}

func (failingDashboard) GetSalesTotals(context.Context, time.Time, time.Time) (repository.SalesTotals, error) {
	return repository.SalesTotals{}, errors.New("conexión cerrada")
}

func TestGetSummary_PropagaError(t *testing.T) {
	repo := failingDashboard{repotest.New().Repos().Dashboard}
	_, err := analytics.NewDashboardUseCase(repo).GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard: ventas del mes")
}
