package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jhoicas/crm-api/internal/application/ports"
	"github.com/jhoicas/crm-api/internal/domain"
)

// AIDocumentUseCase administra los documentos de la base de conocimiento del servicio de IA.
type AIDocumentUseCase struct {
	ai ports.AIAssistant
}

// NewAIDocumentUseCase construye el caso de uso inyectando el puerto AIAssistant.
func NewAIDocumentUseCase(ai ports.AIAssistant) *AIDocumentUseCase {
	return &AIDocumentUseCase{ai: ai}
}

// Upload envía el archivo tal cual; solo se conserva el nombre base.
func (uc *AIDocumentUseCase) Upload(ctx context.Context, fileName string, content io.Reader) error {
	name := filepath.Base(strings.TrimSpace(fileName))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return domain.ValidationField("File", "A file is required.")
	}
	if err := uc.ai.UploadDocument(ctx, name, content); err != nil {
		return fmt.Errorf("subir documento: %w", err)
	}
	return nil
}

// List devuelve la respuesta del servicio sin reinterpretarla.
func (uc *AIDocumentUseCase) List(ctx context.Context) (json.RawMessage, error) {
	docs, err := uc.ai.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar documentos: %w", err)
	}
	return docs, nil
}

func (uc *AIDocumentUseCase) Delete(ctx context.Context, fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return domain.ValidationField("FileName", "'FileName' must not be empty.")
	}
	if err := uc.ai.DeleteDocument(ctx, fileName); err != nil {
		return fmt.Errorf("borrar documento: %w", err)
	}
	return nil
}
