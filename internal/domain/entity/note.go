package entity

import (
	"fmt"
	"strings"
	"time"
)

// ParentKind entidad a la que se adjunta una nota.
type ParentKind int

const (
	ParentCustomer ParentKind = iota + 1
	ParentLead
	ParentTicket
	ParentSale
	ParentTask
)

var parentKinds = enumSet[ParentKind]{label: "note parent", names: []string{
	"Customer", "Lead", "Ticket", "Sale", "Task",
}}

func (k ParentKind) String() string { return parentKinds.name(k) }
func (k ParentKind) Valid() bool { return parentKinds.valid(k) }
func (k ParentKind) MarshalJSON() ([]byte, error) { return parentKinds.marshal(k) }
func (k *ParentKind) UnmarshalJSON(b []byte) (err error) {
	*k, err = parentKinds.unmarshal(b)
	return err
}
func ParseParentKind(s string) (ParentKind, error) { return parentKinds.parse(s) }

// ParentKinds todos los tipos de padre, en orden.
func ParentKinds() []ParentKind { return parentKinds.values() }

// Slug segmento de ruta del tipo de padre ("customer", "lead", ...).
func (k ParentKind) Slug() string { return strings.ToLower(k.String()) }

// ParentRef referencia al único padre de una nota. Los campos son privados:
// solo se construye con NewParentRef o los atajos, nunca con dos padres.
type ParentRef struct {
	kind ParentKind
	id   string
}

// NewParentRef valida tipo e id.
func NewParentRef(kind ParentKind, id string) (ParentRef, error) {
	if !kind.Valid() {
		return ParentRef{}, fmt.Errorf("note parent: tipo inválido %d", kind)
	}
	if id == "" {
		return ParentRef{}, fmt.Errorf("note parent: id vacío")
	}
	return ParentRef{kind: kind, id: id}, nil
}

func CustomerParent(id string) ParentRef { return ParentRef{kind: ParentCustomer, id: id} }
func LeadParent(id string) ParentRef { return ParentRef{kind: ParentLead, id: id} }
func TicketParent(id string) ParentRef { return ParentRef{kind: ParentTicket, id: id} }
func SaleParent(id string) ParentRef { return ParentRef{kind: ParentSale, id: id} }
func TaskParent(id string) ParentRef { return ParentRef{kind: ParentTask, id: id} }

func (p ParentRef) Kind() ParentKind { return p.kind }
func (p ParentRef) ID() string { return p.id }
func (p ParentRef) IsZero() bool { return p.kind == 0 && p.id == "" }

func (p ParentRef) String() string {
	return p.kind.String() + "(" + p.id + ")"
}

// Note nota libre adjunta a exactamente un padre.
type Note struct {
	ID        string
	Content   string
	Parent    ParentRef
	CreatedAt time.Time
	UpdatedAt *time.Time
}
