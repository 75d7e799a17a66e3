package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/billing"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *usecase.CustomerUseCase
	LeadUC        *usecase.LeadUseCase
	ProductUC     *usecase.ProductUseCase
	SaleUC        *usecase.SaleUseCase
	TaskUC        *usecase.TaskUseCase
	NoteUC        *usecase.NoteUseCase
	InteractionUC *usecase.InteractionUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	TicketUC      *usecase.TicketUseCase
	AIDocumentUC  *usecase.AIDocumentUseCase
	DashboardUC   *analytics.DashboardUseCase
	InvoicePDF    *billing.PDFUseCase
	JWT           jwt.Config
}

// crudHandler lo cumplen los handlers de entidades con CRUD completo.
type crudHandler interface {
	List(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func mountCRUD(r fiber.Router, h crudHandler) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWT)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: register y login públicos
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/roles", authn, adminOnly, authHandler.GetRoles)
	authGroup.Post("/roles", authn, adminOnly, authHandler.CreateRole)
	authGroup.Delete("/roles/:name", authn, adminOnly, authHandler.DeleteRole)
	authGroup.Get("/users", authn, authHandler.GetUsers)
	authGroup.Put("/users/:id", authn, adminOnly, authHandler.UpdateUser)
	authGroup.Delete("/users/:id", authn, adminOnly, authHandler.DeleteUser)
	authGroup.Post("/admin-reset-password", authn, adminOnly, authHandler.AdminResetPassword)

	// Enums (público)
	api.Get("/enums/:slug", NewEnumHandler().Get)

	mountCRUD(api.Group("/customers", authn), NewCustomerHandler(deps.CustomerUC))
	mountCRUD(api.Group("/leads", authn), NewLeadHandler(deps.LeadUC))
	mountCRUD(api.Group("/products", authn), NewProductHandler(deps.ProductUC))
	mountCRUD(api.Group("/tasks", authn), NewTaskHandler(deps.TaskUC))

	sales := api.Group("/sales", authn)
	sales.Get("/:id/invoice.pdf", NewInvoiceHandler(deps.InvoicePDF).DownloadPDF)
	mountCRUD(sales, NewSaleHandler(deps.SaleUC))

	notes := api.Group("/notes", authn)
	noteHandler := NewNoteHandler(deps.NoteUC)
	for _, kind := range entity.ParentKinds() {
		notes.Get("/"+kind.Slug()+"/:id", noteHandler.ListFor(kind))
	}
	mountCRUD(notes, noteHandler)

	interactions := api.Group("/interactions", authn)
	interactionHandler := NewInteractionHandler(deps.InteractionUC)
	interactions.Get("/by-customer/:customerId", interactionHandler.ListByCustomer)
	mountCRUD(interactions, interactionHandler)

	mountCRUD(api.Group("/employees", authn, RequireRole(entity.RoleAdmin, entity.RoleManager)),
		NewEmployeeHandler(deps.EmployeeUC))

	tickets := api.Group("/tickets", authn)
	ticketHandler := NewTicketHandler(deps.TicketUC)
	assigners := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleSupport)
	tickets.Get("/by-customer/:customerId", ticketHandler.ListByCustomer)
	tickets.Put("/:id/assign", assigners, ticketHandler.Assign)
	tickets.Post("/:id/assign-random-employee", assigners, ticketHandler.AssignRandom)
	tickets.Patch("/:id/status", ticketHandler.ChangeStatus)
	mountCRUD(tickets, ticketHandler)

	api.Get("/dashboard/summary", authn, NewDashboardHandler(deps.DashboardUC).GetSummary)

	ai := api.Group("/ai/documents", authn, adminOnly)
	aiHandler := NewAIHandler(deps.AIDocumentUC)
	ai.Post("/", aiHandler.Upload)
	ai.Get("/", aiHandler.List)
	ai.Delete("/:fileName", aiHandler.Delete)
}
