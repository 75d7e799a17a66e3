package entity

import "time"

type InteractionType int

const (
	InteractionTypeCall InteractionType = iota + 1
	InteractionTypeEmail
	InteractionTypeMeeting
	InteractionTypeMessage
	InteractionTypeOther
)

var interactionTypes = enumSet[InteractionType]{label: "interaction type", names: []string{
	"Call", "Email", "Meeting", "Message", "Other",
}}

func (t InteractionType) String() string { return interactionTypes.name(t) }
func (t InteractionType) Valid() bool { return interactionTypes.valid(t) }
func (t InteractionType) MarshalJSON() ([]byte, error) { return interactionTypes.marshal(t) }
func (t *InteractionType) UnmarshalJSON(b []byte) (err error) {
	*t, err = interactionTypes.unmarshal(b)
	return err
}
func ParseInteractionType(s string) (InteractionType, error) { return interactionTypes.parse(s) }

// Interaction contacto registrado con un cliente.
type Interaction struct {
	ID              string
	CustomerID      string
	Type            InteractionType
	Content         string
	InteractionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
