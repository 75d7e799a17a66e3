package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind clasifica un error de dominio; la capa HTTP lo traduce a un status.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindUnauthorized
	KindForbidden
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindValidation:
		return "VALIDATION"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

// Mensajes expuestos al cliente.
const (
	MsgValidation   = "One or more validation errors occurred."
	MsgUnauthorized = "You are not authorized to perform this action"
	MsgForbidden    = "You do not have permission to perform this action"
	MsgInternal     = "An unexpected error occurred"
)

// Error es el único tipo de error que los casos de uso devuelven hacia la capa HTTP.
// Fields solo se usa con KindValidation (campo -> mensajes).
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if len(e.Fields) > 0 {
		return e.Message + " " + e.fieldSummary()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrUnauthorized) comparando por Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func (e *Error) fieldSummary() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Sentinelas por tipo, útiles con errors.Is.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrConflict     = &Error{Kind: KindConflict}
)

// NotFound construye el error de entidad inexistente.
func NotFound(entity string, key any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Entity %q (%v) was not found.", entity, key),
	}
}

// Validation construye un error con el mapa campo -> mensajes.
func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: MsgValidation, Fields: fields}
}

// ValidationField atajo para un único campo.
func ValidationField(field, msg string) *Error {
	return Validation(map[string][]string{field: {msg}})
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: MsgUnauthorized}
}

func Forbidden(msg string) *Error {
	if msg == "" {
		msg = MsgForbidden
	}
	return &Error{Kind: KindForbidden, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Duplicate violación de unicidad detectada por el almacenamiento.
func Duplicate(entity string) *Error {
	return &Error{Kind: KindConflict, Message: entity + " already exists"}
}

// Internal envuelve un fallo de infraestructura; el mensaje al cliente es genérico.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: err}
}

// KindOf devuelve el Kind de err; KindInternal si no es un *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
