package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"golang.org/x/text/language"

	_ "github.com/jhoicas/crm-api/docs"
	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/billing"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/cli"
	infraai "github.com/jhoicas/crm-api/internal/infrastructure/ai"
	"github.com/jhoicas/crm-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/crm-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/crm-api/internal/interfaces/http"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/jwt"
	"github.com/jhoicas/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	migrator, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	applied, err := migrator.Up()
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if err := migrator.Close(); err != nil {
		log.Warn().Err(err).Msg("cerrar migrador")
	}
	log.Info().Bool("applied", applied).Msg("esquema al día")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uow := postgres.NewUnitOfWork(pool)

	created, err := cli.SeedRoles(ctx, uow)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar roles")
	}
	if len(created) > 0 {
		log.Info().Strs("roles", created).Msg("roles sembrados")
	}

	jwtCfg := jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		Expiration: time.Duration(cfg.JWT.Expiration) * time.Minute,
	}

	aiClient := infraai.NewClient(cfg.AI.BaseURL, cfg.AI.Timeout)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(language.Spanish)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	if cfg.Metrics.Enabled {
		m := metrics.New()
		app.Use(m.Middleware())
		app.Get("/metrics", m.Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(uow, jwtCfg),
		CustomerUC:    usecase.NewCustomerUseCase(uow),
		LeadUC:        usecase.NewLeadUseCase(uow),
		ProductUC:     usecase.NewProductUseCase(uow),
		SaleUC:        usecase.NewSaleUseCase(uow),
		TaskUC:        usecase.NewTaskUseCase(uow),
		NoteUC:        usecase.NewNoteUseCase(uow),
		InteractionUC: usecase.NewInteractionUseCase(uow),
		EmployeeUC:    usecase.NewEmployeeUseCase(uow),
		TicketUC:      usecase.NewTicketUseCase(uow, aiClient, log),
		AIDocumentUC:  usecase.NewAIDocumentUseCase(aiClient),
		DashboardUC:   analytics.NewDashboardUseCase(uow.Repos().Dashboard),
		InvoicePDF:    billing.NewPDFUseCase(uow, pdfGenerator),
		JWT:           jwtCfg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
