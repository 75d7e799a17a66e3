package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo ficha laboral; user_id es único (un empleado por usuario).
type EmployeeRepo struct {
	q Querier
}

func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, user_id, employee_number, hire_date, salary, work_phone, work_email,
	annual_leave_days, used_leave_days, performance_score, emergency_contact, emergency_phone,
	bank_account, tax_number, created_at, updated_at`

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var e entity.Employee
	if err := row.Scan(&e.ID, &e.UserID, &e.EmployeeNumber, &e.HireDate, &e.Salary, &e.WorkPhone,
		&e.WorkEmail, &e.AnnualLeaveDays, &e.UsedLeaveDays, &e.PerformanceScore, &e.EmergencyContact,
		&e.EmergencyPhone, &e.BankAccount, &e.TaxNumber, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.UserID, e.EmployeeNumber, e.HireDate, e.Salary, e.WorkPhone, e.WorkEmail,
		e.AnnualLeaveDays, e.UsedLeaveDays, e.PerformanceScore, e.EmergencyContact, e.EmergencyPhone,
		e.BankAccount, e.TaxNumber, e.CreatedAt, e.UpdatedAt,
	)
	return writeErr("insert employee", "Employee", err)
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

func (r *EmployeeRepo) GetByUserID(ctx context.Context, userID string) (*entity.Employee, error) {
	if !validID(userID) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE user_id = $1`, userID)
}

func (r *EmployeeRepo) getOne(ctx context.Context, query, arg string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY employee_number`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	list, err := collect(rows, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("scan employee: %w", err)
	}
	return list, nil
}

// Update no toca user_id ni employee_number.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET hire_date = $2, salary = $3, work_phone = $4, work_email = $5,
			annual_leave_days = $6, used_leave_days = $7, performance_score = $8,
			emergency_contact = $9, emergency_phone = $10, bank_account = $11, tax_number = $12,
			updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.HireDate, e.Salary, e.WorkPhone, e.WorkEmail, e.AnnualLeaveDays, e.UsedLeaveDays,
		e.PerformanceScore, e.EmergencyContact, e.EmergencyPhone, e.BankAccount, e.TaxNumber, e.UpdatedAt,
	)
	return writeErr("update employee", "Employee", err)
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return writeErr("delete employee", "Employee", err)
}
