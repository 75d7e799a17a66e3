package repository

import "context"

// Repos agrupa los repositorios de todos los agregados, ligados a la misma
// conexión (pool) o a la misma transacción.
type Repos struct {
	Customers    CustomerRepository
	Leads        LeadRepository
	Products     ProductRepository
	Sales        SaleRepository
	Tickets      TicketRepository
	Tasks        TaskRepository
	Notes        NoteRepository
	Interactions InteractionRepository
	Employees    EmployeeRepository
	Users        UserRepository
	Roles        RoleRepository
	Dashboard    DashboardRepository
}

// UnitOfWork es el límite de atomicidad de una petición.
// Run ejecuta fn con repos atados a una transacción: commit si fn devuelve nil,
// rollback en cualquier otro caso. Repos devuelve los repos fuera de transacción
// para lecturas.
type UnitOfWork interface {
	Repos() Repos
	Run(ctx context.Context, fn func(r Repos) error) error
}
