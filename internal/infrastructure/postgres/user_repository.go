package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var (
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.RoleRepository = (*RoleRepo)(nil)
)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, email, first_name, last_name, password_hash, reset_token,
	reset_token_expires_at, created_at, updated_at, deleted_at`

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.ResetToken,
		&u.ResetTokenExpiresAt, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. Email duplicado (índice sobre lower(email)) -> Conflict.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.ResetToken,
		u.ResetTokenExpiresAt, u.CreatedAt, u.UpdatedAt, u.DeletedAt,
	)
	return writeErr("insert user", "User", err)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query, arg string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	list, err := collect(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return list, nil
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET email = $2, first_name = $3, last_name = $4, password_hash = $5,
			reset_token = $6, reset_token_expires_at = $7, updated_at = $8, deleted_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.ResetToken,
		u.ResetTokenExpiresAt, u.UpdatedAt, u.DeletedAt,
	)
	return writeErr("update user", "User", err)
}

// Delete borrado físico; user_roles cae por cascada.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return writeErr("delete user", "User", err)
}

// RoleRepo roles y tabla puente user_roles.
type RoleRepo struct {
	q Querier
}

func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	if role.ID == "" {
		role.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `INSERT INTO roles (id, name) VALUES ($1, $2)`, role.ID, role.Name)
	return writeErr("insert role", "Role", err)
}

func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx, `SELECT id, name FROM roles WHERE lower(name) = lower($1)`, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	list, err := collect(rows, func(row rowScanner) (*entity.Role, error) {
		var role entity.Role
		return &role, row.Scan(&role.ID, &role.Name)
	})
	if err != nil {
		return nil, fmt.Errorf("scan role: %w", err)
	}
	return list, nil
}

func (r *RoleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	return writeErr("delete role", "Role", err)
}

// RolesOf nombres de los roles del usuario, ordenados.
func (r *RoleRepo) RolesOf(ctx context.Context, userID string) ([]string, error) {
	if !validID(userID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT ro.name FROM roles ro
		JOIN user_roles ur ON ur.role_id = ro.id
		WHERE ur.user_id = $1 ORDER BY ro.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("roles of user: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan role name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// AddUserToRole idempotente.
func (r *RoleRepo) AddUserToRole(ctx context.Context, userID, roleID string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, userID, roleID)
	if err != nil {
		return fmt.Errorf("add user to role: %w", err)
	}
	return nil
}

func (r *RoleRepo) RemoveUserFromRoles(ctx context.Context, userID string, roleNames []string) error {
	_, err := r.q.Exec(ctx, `
		DELETE FROM user_roles ur USING roles ro
		WHERE ur.role_id = ro.id AND ur.user_id = $1 AND ro.name = ANY($2)`, userID, roleNames)
	if err != nil {
		return fmt.Errorf("remove user from roles: %w", err)
	}
	return nil
}

func (r *RoleRepo) UsersInRole(ctx context.Context, roleName string) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+prefixed("u", userColumns)+` FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		JOIN roles ro ON ro.id = ur.role_id
		WHERE lower(ro.name) = lower($1) ORDER BY u.email`, roleName)
	if err != nil {
		return nil, fmt.Errorf("users in role: %w", err)
	}
	list, err := collect(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return list, nil
}
