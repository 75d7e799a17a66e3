// Package usecase contiene los casos de uso CRUD de los agregados del CRM.
// Cada método valida la entrada, resuelve la entidad por id y escribe dentro
// de una unidad de trabajo.
package usecase

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// base colaboradores comunes a todos los casos de uso.
type base struct {
	uow repository.UnitOfWork
	now func() time.Time
}

func newBase(uow repository.UnitOfWork) base {
	return base{uow: uow, now: func() time.Time { return time.Now().UTC() }}
}

// mapAll convierte entidades a DTOs; nunca devuelve nil.
func mapAll[E any, D any](in []*E, f func(*E) D) []D {
	out := make([]D, 0, len(in))
	for _, e := range in {
		out = append(out, f(e))
	}
	return out
}

func ptrTime(t time.Time) *time.Time { return &t }
