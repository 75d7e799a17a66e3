package entity

import "time"

// TicketStatus ciclo de vida: Open → ResolvedByAI → AssignedToEmployee → Closed.
type TicketStatus int

const (
	TicketStatusOpen TicketStatus = iota + 1
	TicketStatusResolvedByAI
	TicketStatusAssignedToEmployee
	TicketStatusClosed
)

var ticketStatuses = enumSet[TicketStatus]{label: "ticket status", names: []string{
	"Open", "ResolvedByAI", "AssignedToEmployee", "Closed",
}}

func (s TicketStatus) String() string { return ticketStatuses.name(s) }
func (s TicketStatus) Valid() bool { return ticketStatuses.valid(s) }
func (s TicketStatus) MarshalJSON() ([]byte, error) { return ticketStatuses.marshal(s) }
func (s *TicketStatus) UnmarshalJSON(b []byte) (err error) {
	*s, err = ticketStatuses.unmarshal(b)
	return err
}
func ParseTicketStatus(s string) (TicketStatus, error) { return ticketStatuses.parse(s) }

// Ticket solicitud de soporte abierta por un usuario.
type Ticket struct {
	ID                  string
	UserID              string
	Description         string
	AISuggestedSolution *string
	FinalSolution       *string
	Status              TicketStatus
	AssignedEmployeeID  *string
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// AssignTo asigna el ticket a un empleado.
func (t *Ticket) AssignTo(employeeID string) {
	t.AssignedEmployeeID = &employeeID
	t.Status = TicketStatusAssignedToEmployee
}

func (t *Ticket) IsAssigned() bool {
	return t.AssignedEmployeeID != nil && *t.AssignedEmployeeID != ""
}
