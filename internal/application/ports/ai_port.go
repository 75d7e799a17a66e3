package ports

import (
	"context"
	"encoding/json"
	"io"
)

// AIAssistant puerto de salida hacia el servicio de IA que sugiere soluciones de
// tickets y mantiene la base de conocimiento. Las llamadas deben recibir un ctx con timeout.
type AIAssistant interface {
	// SuggestSolution devuelve una solución propuesta para la descripción del ticket.
	SuggestSolution(ctx context.Context, description string) (string, error)
	UploadDocument(ctx context.Context, fileName string, content io.Reader) error
	// ListDocuments devuelve el JSON tal cual lo entrega el servicio.
	ListDocuments(ctx context.Context) (json.RawMessage, error)
	DeleteDocument(ctx context.Context, fileName string) error
}
