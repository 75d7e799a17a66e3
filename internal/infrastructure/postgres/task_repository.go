package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

type TaskRepo struct {
	q Querier
}

func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, assigned_employee_id, customer_id, title, description, due_date,
	priority, status, type, created_at, updated_at`

func scanTask(row rowScanner) (*entity.Task, error) {
	var t entity.Task
	var priority, status, typ string
	if err := row.Scan(&t.ID, &t.AssignedEmployeeID, &t.CustomerID, &t.Title, &t.Description,
		&t.DueDate, &priority, &status, &typ, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if err := parseEnum(&t.Priority, priority, entity.ParseTaskPriority); err != nil {
		return nil, err
	}
	if err := parseEnum(&t.Status, status, entity.ParseTaskStatus); err != nil {
		return nil, err
	}
	if err := parseEnum(&t.Type, typ, entity.ParseTaskType); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.AssignedEmployeeID, t.CustomerID, t.Title, t.Description, t.DueDate,
		t.Priority.String(), t.Status.String(), t.Type.String(), t.CreatedAt, t.UpdatedAt,
	)
	return writeErr("insert task", "Task", err)
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	if !validID(id) {
		return nil, nil
	}
	t, err := scanTask(r.q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List tareas por fecha de vencimiento.
func (r *TaskRepo) List(ctx context.Context) ([]*entity.Task, error) {
	rows, err := r.q.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY due_date`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	list, err := collect(rows, scanTask)
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return list, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	query := `
		UPDATE tasks SET assigned_employee_id = $2, customer_id = $3, title = $4, description = $5,
			due_date = $6, priority = $7, status = $8, type = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.AssignedEmployeeID, t.CustomerID, t.Title, t.Description, t.DueDate,
		t.Priority.String(), t.Status.String(), t.Type.String(), t.UpdatedAt,
	)
	return writeErr("update task", "Task", err)
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return writeErr("delete task", "Task", err)
}
