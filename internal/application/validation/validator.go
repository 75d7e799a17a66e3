// Package validation evalúa las etiquetas `validate:` de los DTO con
// go-playground/validator y devuelve *domain.Error de tipo Validation.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/crm-api/internal/domain"
)

// enum lo cumplen todos los enums cerrados de entity.
type enum interface {
	Valid() bool
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(enum)
			return ok && e.Valid()
		})
		instance = v
	})
	return instance
}

// Struct valida s. Devuelve nil o un error Validation con campo -> mensajes.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Internal(fmt.Errorf("validación: %w", err))
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe)
		fields[name] = append(fields[name], message(fe))
	}
	return domain.Validation(fields)
}

// fieldName ruta del campo sin el nombre del struct raíz (ej. Products[0].Quantity).
func fieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.StructField()
}

func message(fe validator.FieldError) string {
	field := fe.StructField()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' must not be empty.", field)
	case "email":
		return fmt.Sprintf("'%s' is not a valid email address.", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("'%s' must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("'%s' must be greater than or equal to %s.", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("'%s' must be %s characters or fewer.", field, fe.Param())
		}
		return fmt.Sprintf("'%s' must be less than or equal to %s.", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("'%s' is not a valid identifier.", field)
	case "enum", "oneof":
		return fmt.Sprintf("'%s' has a value that is not allowed.", field)
	default:
		return fmt.Sprintf("'%s' is invalid (%s).", field, fe.Tag())
	}
}
