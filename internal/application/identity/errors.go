package identity

import (
	"errors"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain"
)

// Code código estructurado de un fallo de identidad.
type Code string

const (
	CodeDuplicateEmail    Code = "DuplicateEmail"
	CodeInvalidEmail      Code = "InvalidEmail"
	CodePasswordTooShort  Code = "PasswordTooShort"
	CodeInvalidToken      Code = "InvalidToken"
	CodeUserNotFound      Code = "UserNotFound"
	CodeRoleNotFound      Code = "RoleNotFound"
	CodeDuplicateRoleName Code = "DuplicateRoleName"
)

// Error fallo de una operación de identidad; Field es el campo de entrada afectado.
type Error struct {
	Code        Code
	Field       string
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("identity %s: %s", e.Code, e.Description)
}

// AsValidation traduce un *Error a un error Validation del dominio, indexado por Field.
// Cualquier otro error se devuelve sin cambios.
func AsValidation(err error) error {
	var ie *Error
	if !errors.As(err, &ie) {
		return err
	}
	field := ie.Field
	if field == "" {
		field = string(ie.Code)
	}
	return domain.ValidationField(field, ie.Description)
}
