package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository/repotest"
)

func taskRequest(employeeID string) dto.TaskRequest {
	return dto.TaskRequest{
		AssignedEmployeeID: employeeID,
		Title:              "Llamar al cliente",
		DueDate:            time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
		Priority:           entity.TaskPriorityHigh,
		Type:               entity.TaskTypeCall,
	}
}

func TestTask_CreateYGetByID(t *testing.T) {
	store := repotest.New()
	u := seedUser(t, store, "emp@crm.test")
	emp := seedEmployee(t, store, u.ID)
	c := seedCustomer(t, store)
	uc := usecase.NewTaskUseCase(store)

	in := taskRequest(emp.ID)
	in.CustomerID = &c.ID
	task, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusTodo, task.Status)

	got, err := uc.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Llamar al cliente", got.Title)
	assert.Equal(t, entity.TaskPriorityHigh, got.Priority)
	require.NotNil(t, got.CustomerID)
	assert.Equal(t, c.ID, *got.CustomerID)
}

func TestTask_EmpleadoInexistente(t *testing.T) {
	store := repotest.New()
	_, err := usecase.NewTaskUseCase(store).Create(context.Background(), taskRequest(missingID))

	de := requireKind(t, err, domain.KindNotFound)
	assert.Contains(t, de.Message, "Employee")
}

func TestTask_UpdateEstado(t *testing.T) {
	store := repotest.New()
	u := seedUser(t, store, "emp@crm.test")
	emp := seedEmployee(t, store, u.ID)
	uc := usecase.NewTaskUseCase(store)
	ctx := context.Background()
	task, err := uc.Create(ctx, taskRequest(emp.ID))
	require.NoError(t, err)

	in := taskRequest(emp.ID)
	in.Status = entity.TaskStatusCompleted
	updated, err := uc.Update(ctx, task.ID, in)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusCompleted, updated.Status)

	_, err = uc.Update(ctx, missingID, in)
	requireKind(t, err, domain.KindNotFound)
}

func TestTask_PrioridadFueraDeRango(t *testing.T) {
	in := taskRequest("x")
	in.Priority = entity.TaskPriority(9)
	_, err := usecase.NewTaskUseCase(repotest.New()).Create(context.Background(), in)

	de := requireKind(t, err, domain.KindValidation)
	assert.Contains(t, de.Fields, "Priority")
}
