package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/billing"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/identity"
	"github.com/jhoicas/crm-api/internal/application/ports"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository/repotest"
	apphttp "github.com/jhoicas/crm-api/internal/interfaces/http"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func init() {
	identity.HashCost = bcrypt.MinCost
}

const missingID = "00000000-0000-0000-0000-0000000000ff"

type stubAI struct{}

func (stubAI) SuggestSolution(context.Context, string) (string, error) { return "", nil }
func (stubAI) UploadDocument(context.Context, string, io.Reader) error { return nil }
func (stubAI) ListDocuments(context.Context) (json.RawMessage, error) { return json.RawMessage(`[]`), nil }
func (stubAI) DeleteDocument(context.Context, string) error { return nil }

type stubPDF struct{}

func (stubPDF) GenerateSaleInvoice(context.Context, ports.SaleInvoice) ([]byte, error) {
	return []byte("%PDF-1.4 test"), nil
}

// newTestApp arma la API completa sobre el store en memoria.
func newTestApp(t *testing.T) (*fiber.App, *repotest.Store) {
	t.Helper()
	store := repotest.New()
	_, err := identity.New(store.Repos()).EnsureRoles(context.Background(),
		append([]string{entity.RoleCustomer}, entity.SeedRoles...)...)
	require.NoError(t, err)

	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(store, testJWT),
		CustomerUC:    usecase.NewCustomerUseCase(store),
		LeadUC:        usecase.NewLeadUseCase(store),
		ProductUC:     usecase.NewProductUseCase(store),
		SaleUC:        usecase.NewSaleUseCase(store),
		TaskUC:        usecase.NewTaskUseCase(store),
		NoteUC:        usecase.NewNoteUseCase(store),
		InteractionUC: usecase.NewInteractionUseCase(store),
		EmployeeUC:    usecase.NewEmployeeUseCase(store),
		TicketUC:      usecase.NewTicketUseCase(store, stubAI{}, log),
		AIDocumentUC:  usecase.NewAIDocumentUseCase(stubAI{}),
		DashboardUC:   analytics.NewDashboardUseCase(store.Repos().Dashboard),
		InvoicePDF:    billing.NewPDFUseCase(store, stubPDF{}),
		JWT:           testJWT,
	})
	return app, store
}

func call(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas públicas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_EnumsSonPublicos(t *testing.T) {
	app, _ := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/enums/lead-status", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decode(t, resp)
	assert.True(t, env.Success)

	var opts []entity.EnumOption
	require.NoError(t, json.Unmarshal(env.Data, &opts))
	require.NotEmpty(t, opts)
	assert.Equal(t, 1, opts[0].Value)
}

func TestRouter_EnumDesconocido_Retorna404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/enums/colores", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, decode(t, resp).Success)
}

func TestRouter_RegistroYLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "nuevo@crm.test", Password: "secreto123", FirstName: "Nuevo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &user))
	assert.Equal(t, []string{entity.RoleCustomer}, user.Roles)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "nuevo@crm.test", Password: "secreto123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &login))
	require.NotEmpty(t, login.Token)

	// el token emitido abre las rutas protegidas
	resp = call(t, app, http.MethodGet, "/api/customers", "Bearer "+login.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_LoginFallido_Retorna400ConCampoLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "nadie@crm.test", Password: "secreto123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var fields map[string][]string
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &fields))
	assert.Contains(t, fields, "Login")
}

// ──────────────────────────────────────────────────────────────────────────────
// Envelope y mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_SinToken_Retorna401(t *testing.T) {
	app, _ := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_ListaVacia_MensajeNoFound(t *testing.T) {
	app, _ := newTestApp(t)

	env := decode(t, call(t, app, http.MethodGet, "/api/customers", tokenFor(t, "SalesPerson"), nil))
	assert.True(t, env.Success)
	assert.Equal(t, "No customers found.", env.Message)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestRouter_CrearYObtenerCliente(t *testing.T) {
	app, _ := newTestApp(t)
	tok := tokenFor(t, "SalesPerson")

	resp := call(t, app, http.MethodPost, "/api/customers", tok, map[string]any{
		"firstName": "Ana", "lastName": "Ruiz", "email": "ana@cliente.test", "type": "Person",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CustomerResponse
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &created))
	require.NotEmpty(t, created.ID)

	resp = call(t, app, http.MethodGet, "/api/customers/"+created.ID, tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.CustomerResponse
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &got))
	assert.Equal(t, "Ana", got.FirstName)
	assert.Equal(t, "ana@cliente.test", got.Email)

	env := decode(t, call(t, app, http.MethodGet, "/api/customers", tok, nil))
	assert.Equal(t, "Customers retrieved successfully", env.Message)
}

func TestRouter_ValidacionDevuelveMapaDeCampos(t *testing.T) {
	app, _ := newTestApp(t)

	resp := call(t, app, http.MethodPost, "/api/customers", tokenFor(t, "SalesPerson"), map[string]any{
		"email": "no-es-email",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decode(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "One or more validation errors occurred.", env.Message)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "FirstName")
	assert.Contains(t, fields, "Email")
}

func TestRouter_CuerpoIlegible_Retorna400(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader([]byte("{")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, tokenFor(t, "SalesPerson"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Inexistente_Retorna404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/leads/"+missingID, tokenFor(t, "SalesPerson"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, decode(t, resp).Success)
}

func TestRouter_BorrarDevuelveTrue(t *testing.T) {
	app, store := newTestApp(t)
	c, err := usecase.NewCustomerUseCase(store).Create(context.Background(), dto.CustomerRequest{
		FirstName: "Ana", Type: entity.CustomerTypePerson,
	})
	require.NoError(t, err)

	env := decode(t, call(t, app, http.MethodDelete, "/api/customers/"+c.ID, tokenFor(t, "Admin"), nil))
	assert.True(t, env.Success)
	assert.Equal(t, "Customer deleted successfully", env.Message)
	assert.JSONEq(t, `true`, string(env.Data))
}

// ──────────────────────────────────────────────────────────────────────────────
// RBAC
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_EmpleadosSoloAdminOManager(t *testing.T) {
	app, _ := newTestApp(t)

	resp := call(t, app, http.MethodGet, "/api/employees", tokenFor(t, "SalesPerson"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/employees", tokenFor(t, "Manager"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_RolesYDocumentosSoloAdmin(t *testing.T) {
	app, _ := newTestApp(t)
	manager := tokenFor(t, "Manager")

	resp := call(t, app, http.MethodPost, "/api/auth/roles", manager, dto.RoleRequest{Name: "Auditor"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/auth/roles", manager, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/auth/roles", tokenFor(t, "Customer"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/ai/documents", manager, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin := tokenFor(t, "Admin")
	env := decode(t, call(t, app, http.MethodPost, "/api/auth/roles", admin, dto.RoleRequest{Name: "Auditor"}))
	assert.JSONEq(t, `true`, string(env.Data))
	env = decode(t, call(t, app, http.MethodPost, "/api/auth/roles", admin, dto.RoleRequest{Name: "Auditor"}))
	assert.JSONEq(t, `false`, string(env.Data))
	env = decode(t, call(t, app, http.MethodGet, "/api/auth/roles", admin, nil))
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"Auditor"`)

	resp = call(t, app, http.MethodGet, "/api/ai/documents", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_AsignacionAleatoriaRequiereSoporte(t *testing.T) {
	app, _ := newTestApp(t)

	resp := call(t, app, http.MethodPost, "/api/tickets/"+missingID+"/assign-random-employee", tokenFor(t, "Customer"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/tickets/"+missingID+"/assign-random-employee", tokenFor(t, "Support"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas especiales
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_NotasPorPadre(t *testing.T) {
	app, store := newTestApp(t)
	ctx := context.Background()
	c, err := usecase.NewCustomerUseCase(store).Create(ctx, dto.CustomerRequest{FirstName: "Ana", Type: entity.CustomerTypePerson})
	require.NoError(t, err)
	_, err = usecase.NewNoteUseCase(store).Create(ctx, dto.CreateNoteRequest{
		Content: "Llamar el lunes", ParentType: entity.ParentCustomer, ParentID: c.ID,
	})
	require.NoError(t, err)

	resp := call(t, app, http.MethodGet, "/api/notes/customer/"+c.ID, tokenFor(t, "SalesPerson"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notes []dto.NoteResponse
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Llamar el lunes", notes[0].Content)
}

func TestRouter_FacturaPDF(t *testing.T) {
	app, store := newTestApp(t)
	ctx := context.Background()
	c, err := usecase.NewCustomerUseCase(store).Create(ctx, dto.CustomerRequest{FirstName: "Ana", Type: entity.CustomerTypePerson})
	require.NoError(t, err)
	s, err := usecase.NewSaleUseCase(store).Create(ctx, testUserID, dto.SaleRequest{
		CustomerID: c.ID, InvoiceNumber: "INV-42",
	})
	require.NoError(t, err)

	resp := call(t, app, http.MethodGet, "/api/sales/"+s.ID+"/invoice.pdf", tokenFor(t, "SalesPerson"), nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "factura_INV-42.pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(body))
}
