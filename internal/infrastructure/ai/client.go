// Package ai implementa el puerto AIAssistant contra el servicio HTTP de IA
// (sugerencias de solución y base de conocimiento).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/crm-api/internal/application/ports"
	"github.com/jhoicas/crm-api/internal/domain"
)

var _ ports.AIAssistant = (*Client)(nil)

const (
	DefaultTimeout = 10 * time.Second
	maxBody        = 1 << 20
)

// Client adaptador HTTP del servicio de IA. Cada llamada aplica su propio timeout
// además del ctx recibido.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient baseURL sin barra final, ej. http://localhost:8000.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Suggestion string `json:"suggestion"`
}

// SuggestSolution POST /predict.
func (c *Client) SuggestSolution(ctx context.Context, description string) (string, error) {
	body, err := json.Marshal(predictRequest{Text: description})
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, "/predict", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	var out predictResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta: %w", err)
	}
	if strings.TrimSpace(out.Suggestion) == "" {
		return "", fmt.Errorf("AI: respuesta sin sugerencia")
	}
	return out.Suggestion, nil
}

// UploadDocument POST /upload con el archivo en el campo multipart "file".
func (c *Client) UploadDocument(ctx context.Context, fileName string, content io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("AI: crear multipart: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("AI: copiar archivo: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("AI: cerrar multipart: %w", err)
	}
	_, err = c.do(ctx, http.MethodPost, "/upload", w.FormDataContentType(), &buf)
	return err
}

// ListDocuments GET /documents. Si el servicio no responde JSON, el texto se
// devuelve como string JSON.
func (c *Client) ListDocuments(ctx context.Context) (json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodGet, "/documents", "", nil)
	if err != nil {
		return nil, err
	}
	if json.Valid(raw) {
		return json.RawMessage(raw), nil
	}
	quoted, err := json.Marshal(string(raw))
	if err != nil {
		return nil, fmt.Errorf("AI: serializar listado: %w", err)
	}
	return quoted, nil
}

// DeleteDocument DELETE /documents/{fileName}; 404 del servicio -> NotFound.
func (c *Client) DeleteDocument(ctx context.Context, fileName string) error {
	_, err := c.do(ctx, http.MethodDelete, "/documents/"+url.PathEscape(fileName), "", nil)
	var se *statusError
	if errors.As(err, &se) && se.code == http.StatusNotFound {
		return domain.NotFound("Document", fileName)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{op: method + " " + path, code: resp.StatusCode, body: string(raw)}
	}
	return raw, nil
}

// statusError respuesta no 2xx del servicio.
type statusError struct {
	op   string
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("AI: %s HTTP %d: %s", e.op, e.code, e.body)
}
