package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	appanalytics "github.com/jhoicas/panol-api/internal/application/analytics"
	"github.com/jhoicas/panol-api/internal/application/auth"
	"github.com/jhoicas/panol-api/internal/application/inventory"
	"github.com/jhoicas/panol-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/panol-api/internal/infrastructure/pdf"
	"github.com/jhoicas/panol-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/panol-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/panol-api/internal/interfaces/http"
	"github.com/jhoicas/panol-api/pkg/config"
	"github.com/jhoicas/panol-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Ledger.DefaultShift, log.Component("auth"))
	itemUC := usecase.NewItemUseCase(itemRepo, warehouseRepo, locationRepo, cfg.Ledger.MaxPage)
	catalogUC := usecase.NewCatalogUseCase(warehouseRepo, locationRepo, supplierRepo, cfg.Ledger.MaxPage, log.Component("catalog"))
	userUC := usecase.NewUserUseCase(userRepo)

	ledgerLog := log.Component("ledger")
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, cfg.Ledger.DefaultShift, ledgerLog)
	ledgerUC := inventory.NewLedgerUseCase(movementRepo, cfg.Ledger.MaxPage)
	importUC := inventory.NewImportUseCase(txRunner, ledgerLog)

	dashboardUC := appanalytics.NewDashboardUseCase(itemRepo, movementRepo)
	alertsUC := appanalytics.NewAlertsUseCase(itemRepo)
	reconcileUC := appanalytics.NewReconcileUseCase(itemRepo, movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Pañol API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ItemUC:           itemUC,
		CatalogUC:        catalogUC,
		UserUC:           userUC,
		RegisterMovement: registerMovementUC,
		Ledger:           ledgerUC,
		Import:           importUC,
		Dashboard:        dashboardUC,
		Alerts:           alertsUC,
		Reconcile:        reconcileUC,
		AlertsSheet:      infraxlsx.NewAlertsWriter(),
		AlertsReport:     infrapdf.NewAlertsReport("Pañol: artículos bajo stock mínimo"),
		JWTSecret:        cfg.JWT.Secret,
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
