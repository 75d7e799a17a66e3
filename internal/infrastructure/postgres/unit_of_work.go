package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork ejecuta callbacks dentro de una transacción PostgreSQL.
type UnitOfWork struct {
	pool *pgxpool.Pool
}

// NewUnitOfWork construye la unidad de trabajo con el pool.
func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

// Repos repositorios sobre el pool, para lecturas fuera de transacción.
func (u *UnitOfWork) Repos() repository.Repos {
	return newRepos(u.pool)
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (u *UnitOfWork) Run(ctx context.Context, fn func(r repository.Repos) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(newRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func newRepos(q Querier) repository.Repos {
	return repository.Repos{
		Customers:    NewCustomerRepository(q),
		Leads:        NewLeadRepository(q),
		Products:     NewProductRepository(q),
		Sales:        NewSaleRepository(q),
		Tickets:      NewTicketRepository(q),
		Tasks:        NewTaskRepository(q),
		Notes:        NewNoteRepository(q),
		Interactions: NewInteractionRepository(q),
		Employees:    NewEmployeeRepository(q),
		Users:        NewUserRepository(q),
		Roles:        NewRoleRepository(q),
		Dashboard:    NewDashboardRepository(q),
	}
}
