package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

// recordingAI guarda el último documento subido.
type recordingAI struct {
	fakeAI
	uploaded string
	content  string
	deleted  string
	err      error
}

func (r *recordingAI) UploadDocument(_ context.Context, name string, content io.Reader) error {
	b, _ := io.ReadAll(content)
	r.uploaded, r.content = name, string(b)
	return r.err
}

func (r *recordingAI) DeleteDocument(_ context.Context, name string) error {
	r.deleted = name
	return r.err
}

func TestAIDocument_UploadUsaNombreBase(t *testing.T) {
	ai := &recordingAI{}
	uc := usecase.NewAIDocumentUseCase(ai)

	require.NoError(t, uc.Upload(context.Background(), "../../manual.pdf", strings.NewReader("contenido")))
	assert.Equal(t, "manual.pdf", ai.uploaded)
	assert.Equal(t, "contenido", ai.content)
}

func TestAIDocument_UploadSinArchivo(t *testing.T) {
	err := usecase.NewAIDocumentUseCase(&recordingAI{}).Upload(context.Background(), "  ", strings.NewReader(""))
	requireKind(t, err, domain.KindValidation)
}

func TestAIDocument_ListYDelete(t *testing.T) {
	ai := &recordingAI{}
	uc := usecase.NewAIDocumentUseCase(ai)

	docs, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(docs))
	assert.True(t, json.Valid(docs))

	require.NoError(t, uc.Delete(context.Background(), "manual.pdf"))
	assert.Equal(t, "manual.pdf", ai.deleted)

	ai.err = domain.NotFound("Document", "x.pdf")
	err = uc.Delete(context.Background(), "x.pdf")
	requireKind(t, err, domain.KindNotFound)
}
