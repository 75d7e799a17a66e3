package dto

import (
	"encoding/json"
	"reflect"
)

// Mensajes por defecto del sobre de respuesta.
const (
	DefaultSuccessMessage = "Operation completed successfully"
	DefaultEmptyMessage   = "No content"
)

// Response sobre uniforme de todas las respuestas de la API.
type Response[T any] struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Data         T      `json:"data,omitempty"`
	ErrorDetails string `json:"errorDetails,omitempty"`
}

// MarshalJSON omite data solo cuando es nil: una lista vacía sigue saliendo como [].
func (r Response[T]) MarshalJSON() ([]byte, error) {
	type wire struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		Data         any    `json:"data,omitempty"`
		ErrorDetails string `json:"errorDetails,omitempty"`
	}
	w := wire{Success: r.Success, Message: r.Message, ErrorDetails: r.ErrorDetails}
	if !isNil(r.Data) {
		w.Data = r.Data
	}
	return json.Marshal(w)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Success sobre con success=true; message opcional.
func Success[T any](data T, message ...string) Response[T] {
	return Response[T]{Success: true, Message: pick(message, DefaultSuccessMessage), Data: data}
}

// Error sobre de fallo sin datos.
func Error(message string) Response[any] {
	return Response[any]{Success: false, Message: message}
}

// ErrorWithDetails sobre de fallo con detalle.
func ErrorWithDetails(message, details string) Response[any] {
	return Response[any]{Success: false, Message: message, ErrorDetails: details}
}

// Empty sobre con success=true y sin datos ("no encontrado, pero no es error").
func Empty(message ...string) Response[any] {
	return Response[any]{Success: true, Message: pick(message, DefaultEmptyMessage)}
}

func pick(message []string, def string) string {
	if len(message) > 0 && message[0] != "" {
		return message[0]
	}
	return def
}
