// Package repotest implementa repository.UnitOfWork en memoria para tests de
// casos de uso y handlers. Cada Run toma una instantánea y la restaura si fn falla.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.UnitOfWork = (*Store)(nil)

type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[string]T{}}
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{rows: make(map[string]T, len(t.rows)), order: append([]string(nil), t.order...)}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) del(id string) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, k := range t.order {
		if k == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.rows[k])
	}
	return out
}

type tables struct {
	customers    *table[entity.Customer]
	leads        *table[entity.Lead]
	products     *table[entity.Product]
	sales        *table[entity.Sale]
	tickets      *table[entity.Ticket]
	tasks        *table[entity.Task]
	notes        *table[entity.Note]
	interactions *table[entity.Interaction]
	employees    *table[entity.Employee]
	users        *table[entity.User]
	roles        *table[entity.Role]
	userRoles    map[string][]string // userID -> roleIDs
}

func (t tables) clone() tables {
	ur := make(map[string][]string, len(t.userRoles))
	for k, v := range t.userRoles {
		ur[k] = append([]string(nil), v...)
	}
	return tables{
		customers:    t.customers.clone(),
		leads:        t.leads.clone(),
		products:     t.products.clone(),
		sales:        t.sales.clone(),
		tickets:      t.tickets.clone(),
		tasks:        t.tasks.clone(),
		notes:        t.notes.clone(),
		interactions: t.interactions.clone(),
		employees:    t.employees.clone(),
		users:        t.users.clone(),
		roles:        t.roles.clone(),
		userRoles:    ur,
	}
}

// Store almacén en memoria. Writes cuenta inserciones, actualizaciones y borrados.
type Store struct {
	mu     sync.Mutex
	t      tables
	writes int
	// FailOn hace fallar la escritura cuyo nombre coincida (ej. "notes.create").
	FailOn string
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{t: tables{
		customers:    newTable[entity.Customer](),
		leads:        newTable[entity.Lead](),
		products:     newTable[entity.Product](),
		sales:        newTable[entity.Sale](),
		tickets:      newTable[entity.Ticket](),
		tasks:        newTable[entity.Task](),
		notes:        newTable[entity.Note](),
		interactions: newTable[entity.Interaction](),
		employees:    newTable[entity.Employee](),
		users:        newTable[entity.User](),
		roles:        newTable[entity.Role](),
		userRoles:    map[string][]string{},
	}}
}

// Writes número de escrituras realizadas (incluidas las revertidas).
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *Store) Repos() repository.Repos {
	return repository.Repos{
		Customers:    customerRepo{s},
		Leads:        leadRepo{s},
		Products:     productRepo{s},
		Sales:        saleRepo{s},
		Tickets:      ticketRepo{s},
		Tasks:        taskRepo{s},
		Notes:        noteRepo{s},
		Interactions: interactionRepo{s},
		Employees:    employeeRepo{s},
		Users:        userRepo{s},
		Roles:        roleRepo{s},
		Dashboard:    dashboardRepo{s},
	}
}

// Run restaura la instantánea previa si fn devuelve error.
func (s *Store) Run(ctx context.Context, fn func(r repository.Repos) error) error {
	s.mu.Lock()
	snapshot := s.t.clone()
	s.mu.Unlock()
	if err := fn(s.Repos()); err != nil {
		s.mu.Lock()
		s.t = snapshot
		s.mu.Unlock()
		return err
	}
	return ctx.Err()
}

func (s *Store) write(op string) error {
	s.writes++
	if s.FailOn != "" && s.FailOn == op {
		return domain.Internal(errFailOn(op))
	}
	return nil
}

type errFailOn string

func (e errFailOn) Error() string { return "repotest: fallo forzado en " + string(e) }

// ── customers ────────────────────────────────────────────────────────────────

type customerRepo struct{ s *Store }

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("customers.create"); err != nil {
		return err
	}
	r.s.t.customers.put(c.ID, *c)
	return nil
}

func (r customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.t.customers.get(id); ok {
		return &c, nil
	}
	return nil, nil
}

func (r customerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.customers.all()), nil
}

func (r customerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("customers.update"); err != nil {
		return err
	}
	r.s.t.customers.put(c.ID, *c)
	return nil
}

func (r customerRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("customers.delete"); err != nil {
		return err
	}
	r.s.t.customers.del(id)
	return nil
}

// ── leads ────────────────────────────────────────────────────────────────────

type leadRepo struct{ s *Store }

func (r leadRepo) Create(_ context.Context, l *entity.Lead) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("leads.create"); err != nil {
		return err
	}
	r.s.t.leads.put(l.ID, *l)
	return nil
}

func (r leadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l, ok := r.s.t.leads.get(id); ok {
		return &l, nil
	}
	return nil, nil
}

func (r leadRepo) List(_ context.Context) ([]*entity.Lead, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.leads.all()), nil
}

func (r leadRepo) Update(_ context.Context, l *entity.Lead) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("leads.update"); err != nil {
		return err
	}
	r.s.t.leads.put(l.ID, *l)
	return nil
}

func (r leadRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("leads.delete"); err != nil {
		return err
	}
	r.s.t.leads.del(id)
	return nil
}

// ── products ─────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("products.create"); err != nil {
		return err
	}
	r.s.t.products.put(p.ID, *p)
	return nil
}

func (r productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.t.products.get(id); ok {
		return &p, nil
	}
	return nil, nil
}

func (r productRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.products.all()), nil
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("products.update"); err != nil {
		return err
	}
	r.s.t.products.put(p.ID, *p)
	return nil
}

func (r productRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("products.delete"); err != nil {
		return err
	}
	r.s.t.products.del(id)
	return nil
}

// ── sales ────────────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func copySale(s entity.Sale) entity.Sale {
	s.Lines = append([]entity.SaleLine(nil), s.Lines...)
	return s
}

func (r saleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("sales.create"); err != nil {
		return err
	}
	r.s.t.sales.put(s.ID, copySale(*s))
	return nil
}

func (r saleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if s, ok := r.s.t.sales.get(id); ok {
		c := copySale(s)
		return &c, nil
	}
	return nil, nil
}

func (r saleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := r.s.t.sales.all()
	for i := range all {
		all[i] = copySale(all[i])
	}
	return ptrs(all), nil
}

func (r saleRepo) Update(_ context.Context, s *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("sales.update"); err != nil {
		return err
	}
	r.s.t.sales.put(s.ID, copySale(*s))
	return nil
}

func (r saleRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("sales.delete"); err != nil {
		return err
	}
	r.s.t.sales.del(id)
	return nil
}

// ── tickets ──────────────────────────────────────────────────────────────────

type ticketRepo struct{ s *Store }

func (r ticketRepo) Create(_ context.Context, t *entity.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("tickets.create"); err != nil {
		return err
	}
	r.s.t.tickets.put(t.ID, *t)
	return nil
}

func (r ticketRepo) GetByID(_ context.Context, id string) (*entity.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.t.tickets.get(id); ok {
		return &t, nil
	}
	return nil, nil
}

func (r ticketRepo) List(_ context.Context) ([]*entity.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.tickets.all()), nil
}

func (r ticketRepo) ListByUser(_ context.Context, userID string) ([]*entity.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return filter(r.s.t.tickets.all(), func(t entity.Ticket) bool { return t.UserID == userID }), nil
}

func (r ticketRepo) Update(_ context.Context, t *entity.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("tickets.update"); err != nil {
		return err
	}
	r.s.t.tickets.put(t.ID, *t)
	return nil
}

func (r ticketRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("tickets.delete"); err != nil {
		return err
	}
	r.s.t.tickets.del(id)
	return nil
}

// ── tasks ────────────────────────────────────────────────────────────────────

type taskRepo struct{ s *Store }

func (r taskRepo) Create(_ context.Context, t *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("tasks.create"); err != nil {
		return err
	}
	r.s.t.tasks.put(t.ID, *t)
	return nil
}

func (r taskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.t.tasks.get(id); ok {
		return &t, nil
	}
	return nil, nil
}

func (r taskRepo) List(_ context.Context) ([]*entity.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.tasks.all()), nil
}

func (r taskRepo) Update(_ context.Context, t *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("tasks.update"); err != nil {
		return err
	}
	r.s.t.tasks.put(t.ID, *t)
	return nil
}

func (r taskRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("tasks.delete"); err != nil {
		return err
	}
	r.s.t.tasks.del(id)
	return nil
}

// ── notes ────────────────────────────────────────────────────────────────────

type noteRepo struct{ s *Store }

func (r noteRepo) Create(_ context.Context, n *entity.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("notes.create"); err != nil {
		return err
	}
	r.s.t.notes.put(n.ID, *n)
	return nil
}

func (r noteRepo) GetByID(_ context.Context, id string) (*entity.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n, ok := r.s.t.notes.get(id); ok {
		return &n, nil
	}
	return nil, nil
}

func (r noteRepo) List(_ context.Context) ([]*entity.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.notes.all()), nil
}

func (r noteRepo) ListByParent(_ context.Context, parent entity.ParentRef) ([]*entity.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return filter(r.s.t.notes.all(), func(n entity.Note) bool { return n.Parent == parent }), nil
}

func (r noteRepo) Update(_ context.Context, n *entity.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("notes.update"); err != nil {
		return err
	}
	r.s.t.notes.put(n.ID, *n)
	return nil
}

func (r noteRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("notes.delete"); err != nil {
		return err
	}
	r.s.t.notes.del(id)
	return nil
}

// ── interactions ─────────────────────────────────────────────────────────────

type interactionRepo struct{ s *Store }

func (r interactionRepo) Create(_ context.Context, i *entity.Interaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("interactions.create"); err != nil {
		return err
	}
	r.s.t.interactions.put(i.ID, *i)
	return nil
}

func (r interactionRepo) GetByID(_ context.Context, id string) (*entity.Interaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i, ok := r.s.t.interactions.get(id); ok {
		return &i, nil
	}
	return nil, nil
}

func (r interactionRepo) List(_ context.Context) ([]*entity.Interaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.interactions.all()), nil
}

func (r interactionRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Interaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return filter(r.s.t.interactions.all(), func(i entity.Interaction) bool { return i.CustomerID == customerID }), nil
}

func (r interactionRepo) Update(_ context.Context, i *entity.Interaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("interactions.update"); err != nil {
		return err
	}
	r.s.t.interactions.put(i.ID, *i)
	return nil
}

func (r interactionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("interactions.delete"); err != nil {
		return err
	}
	r.s.t.interactions.del(id)
	return nil
}

// ── employees ────────────────────────────────────────────────────────────────

type employeeRepo struct{ s *Store }

func (r employeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.t.employees.all() {
		if other.UserID == e.UserID {
			return domain.Duplicate("Employee")
		}
	}
	if err := r.s.write("employees.create"); err != nil {
		return err
	}
	r.s.t.employees.put(e.ID, *e)
	return nil
}

func (r employeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e, ok := r.s.t.employees.get(id); ok {
		return &e, nil
	}
	return nil, nil
}

func (r employeeRepo) GetByUserID(_ context.Context, userID string) (*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.t.employees.all() {
		if e.UserID == userID {
			return &e, nil
		}
	}
	return nil, nil
}

func (r employeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.employees.all()), nil
}

func (r employeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("employees.update"); err != nil {
		return err
	}
	r.s.t.employees.put(e.ID, *e)
	return nil
}

func (r employeeRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("employees.delete"); err != nil {
		return err
	}
	r.s.t.employees.del(id)
	return nil
}

// ── users ────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.t.users.all() {
		if strings.EqualFold(other.Email, u.Email) {
			return domain.Duplicate("User")
		}
	}
	if err := r.s.write("users.create"); err != nil {
		return err
	}
	r.s.t.users.put(u.ID, *u)
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.t.users.get(id); ok {
		return &u, nil
	}
	return nil, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.t.users.all() {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.users.all()), nil
}

func (r userRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("users.update"); err != nil {
		return err
	}
	r.s.t.users.put(u.ID, *u)
	return nil
}

func (r userRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("users.delete"); err != nil {
		return err
	}
	r.s.t.users.del(id)
	delete(r.s.t.userRoles, id)
	return nil
}

// ── roles ────────────────────────────────────────────────────────────────────

type roleRepo struct{ s *Store }

func (r roleRepo) Create(_ context.Context, role *entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.t.roles.all() {
		if strings.EqualFold(other.Name, role.Name) {
			return domain.Duplicate("Role")
		}
	}
	if err := r.s.write("roles.create"); err != nil {
		return err
	}
	r.s.t.roles.put(role.ID, *role)
	return nil
}

func (r roleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.byName(name), nil
}

func (r roleRepo) byName(name string) *entity.Role {
	for _, role := range r.s.t.roles.all() {
		if strings.EqualFold(role.Name, name) {
			return &role
		}
	}
	return nil
}

func (r roleRepo) List(_ context.Context) ([]*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return ptrs(r.s.t.roles.all()), nil
}

func (r roleRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("roles.delete"); err != nil {
		return err
	}
	r.s.t.roles.del(id)
	for uid, ids := range r.s.t.userRoles {
		r.s.t.userRoles[uid] = without(ids, id)
	}
	return nil
}

func (r roleRepo) RolesOf(_ context.Context, userID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var names []string
	for _, id := range r.s.t.userRoles[userID] {
		if role, ok := r.s.t.roles.get(id); ok {
			names = append(names, role.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r roleRepo) AddUserToRole(_ context.Context, userID, roleID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range r.s.t.userRoles[userID] {
		if id == roleID {
			return nil
		}
	}
	if err := r.s.write("user_roles.create"); err != nil {
		return err
	}
	r.s.t.userRoles[userID] = append(r.s.t.userRoles[userID], roleID)
	return nil
}

func (r roleRepo) RemoveUserFromRoles(_ context.Context, userID string, roleNames []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.write("user_roles.delete"); err != nil {
		return err
	}
	for _, name := range roleNames {
		if role := r.byName(name); role != nil {
			r.s.t.userRoles[userID] = without(r.s.t.userRoles[userID], role.ID)
		}
	}
	return nil
}

func (r roleRepo) UsersInRole(_ context.Context, roleName string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role := r.byName(roleName)
	if role == nil {
		return nil, nil
	}
	var out []*entity.User
	for _, u := range r.s.t.users.all() {
		for _, id := range r.s.t.userRoles[u.ID] {
			if id == role.ID {
				u := u
				out = append(out, &u)
				break
			}
		}
	}
	return out, nil
}

// ── dashboard ────────────────────────────────────────────────────────────────

type dashboardRepo struct{ s *Store }

func (r dashboardRepo) CountLeadsByStatus(_ context.Context) (map[entity.LeadStatus]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[entity.LeadStatus]int{}
	for _, l := range r.s.t.leads.all() {
		out[l.Status]++
	}
	return out, nil
}

func (r dashboardRepo) CountTicketsByStatus(_ context.Context) (map[entity.TicketStatus]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[entity.TicketStatus]int{}
	for _, t := range r.s.t.tickets.all() {
		out[t.Status]++
	}
	return out, nil
}

func (r dashboardRepo) CountTasksDue(_ context.Context, from, to time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, t := range r.s.t.tasks.all() {
		open := t.Status != entity.TaskStatusCompleted && t.Status != entity.TaskStatusCancelled
		if open && !t.DueDate.Before(from) && t.DueDate.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r dashboardRepo) GetSalesTotals(_ context.Context, from, to time.Time) (repository.SalesTotals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := repository.SalesTotals{FinalAmount: decimal.Zero}
	for _, s := range r.s.t.sales.all() {
		if !s.SaleDate.Before(from) && s.SaleDate.Before(to) {
			out.Count++
			out.FinalAmount = out.FinalAmount.Add(s.FinalAmount)
		}
	}
	return out, nil
}

func (r dashboardRepo) CountInteractionsSince(_ context.Context, since time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, i := range r.s.t.interactions.all() {
		if !i.InteractionDate.Before(since) {
			n++
		}
	}
	return n, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func ptrs[T any](in []T) []*T {
	out := make([]*T, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}

func filter[T any](in []T, keep func(T) bool) []*T {
	var out []*T
	for i := range in {
		if keep(in[i]) {
			out = append(out, &in[i])
		}
	}
	return out
}

func without(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
