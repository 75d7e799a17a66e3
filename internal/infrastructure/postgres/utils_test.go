package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// countingQuerier cuenta las sentencias enviadas; toda fila consultada está ausente.
type countingQuerier struct {
	calls int
}

func (q *countingQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	q.calls++
	return pgconn.CommandTag{}, nil
}

func (q *countingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	q.calls++
	return nil, errors.New("sin filas de prueba")
}

func (q *countingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	q.calls++
	return noRow{}
}

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }

const validUUID = "9f1c2d3e-4b5a-4c6d-8e7f-0a1b2c3d4e5f"

// Un id mal formado no llega a Postgres: dentro de una transacción el error 22P02
// dejaría abortadas las sentencias siguientes.
func TestRepos_IDMalFormadoNoConsulta(t *testing.T) {
	ctx := context.Background()
	q := &countingQuerier{}

	p, err := NewProductRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, p)

	c, err := NewCustomerRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, c)

	s, err := NewSaleRepository(q).GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, s)

	u, err := NewUserRepository(q).GetByID(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, u)

	e, err := NewEmployeeRepository(q).GetByUserID(ctx, "no-uuid")
	require.NoError(t, err)
	assert.Nil(t, e)

	notes, err := NewNoteRepository(q).ListByParent(ctx, entity.LeadParent("abc"))
	require.NoError(t, err)
	assert.Empty(t, notes)

	interactions, err := NewInteractionRepository(q).ListByCustomer(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, interactions)

	tickets, err := NewTicketRepository(q).ListByUser(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, tickets)

	roles, err := NewRoleRepository(q).RolesOf(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, roles)

	assert.Zero(t, q.calls)
}

func TestRepos_IDValidoConsulta(t *testing.T) {
	q := &countingQuerier{}

	p, err := NewProductRepository(q).GetByID(context.Background(), validUUID)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, 1, q.calls)
}

func TestWriteErr_CodigosDePostgres(t *testing.T) {
	assert.NoError(t, writeErr("insert product", "Product", nil))

	dup := writeErr("insert product", "Product", &pgconn.PgError{Code: "23505"})
	var de *domain.Error
	require.ErrorAs(t, dup, &de)
	assert.Equal(t, domain.KindConflict, de.Kind)
	assert.Equal(t, "Product already exists", de.Message)

	fk := writeErr("insert sale line", "SaleLine", &pgconn.PgError{Code: "23503"})
	require.ErrorAs(t, fk, &de)
	assert.Equal(t, domain.KindConflict, de.Kind)

	other := writeErr("insert sale", "Sale", &pgconn.PgError{Code: "25P02"})
	assert.False(t, errors.As(other, &de))
	assert.Contains(t, other.Error(), "insert sale")
}
