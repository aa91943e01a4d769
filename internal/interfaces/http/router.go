package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panol-api/internal/application/analytics"
	"github.com/jhoicas/panol-api/internal/application/auth"
	"github.com/jhoicas/panol-api/internal/application/inventory"
	"github.com/jhoicas/panol-api/internal/application/usecase"
	"github.com/jhoicas/panol-api/internal/infrastructure/pdf"
	"github.com/jhoicas/panol-api/internal/infrastructure/xlsx"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ItemUC           *usecase.ItemUseCase
	CatalogUC        *usecase.CatalogUseCase
	UserUC           *usecase.UserUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Ledger           *inventory.LedgerUseCase
	Import           *inventory.ImportUseCase
	Dashboard        *analytics.DashboardUseCase
	Alerts           *analytics.AlertsUseCase
	Reconcile        *analytics.ReconcileUseCase
	AlertsSheet      *xlsx.AlertsWriter
	AlertsReport     *pdf.AlertsReport
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authHandler := NewAuthHandler(deps.AuthUC)

	// Auth (público)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	keyUser := RequirePrivileged()

	protected.Post("/auth/shift", authHandler.ChangeShift)

	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.Search)
	items.Post("/", itemHandler.Create)
	items.Get("/:material", itemHandler.GetByMaterial)
	items.Put("/:material", itemHandler.Update)

	// Inventory (motor + libro)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Ledger, deps.Import, deps.Reconcile)
	inv.Post("/receipts", inventoryHandler.Receipt)
	inv.Post("/issues", inventoryHandler.Issue)
	inv.Post("/returns", inventoryHandler.Return)
	inv.Post("/adjustments", keyUser, inventoryHandler.Adjust)
	inv.Get("/movements", inventoryHandler.ListMovements)
	inv.Get("/reconciliation", keyUser, inventoryHandler.Reconcile)
	inv.Post("/import", inventoryHandler.Import)

	// Alerts
	alerts := protected.Group("/alerts")
	alertsHandler := NewAlertsHandler(deps.Alerts, deps.AlertsSheet, deps.AlertsReport)
	alerts.Get("/", alertsHandler.List)
	alerts.Get("/export.xlsx", alertsHandler.ExportXLSX)
	alerts.Get("/export.pdf", alertsHandler.ExportPDF)

	// Config
	cfg := protected.Group("/config")
	configHandler := NewConfigHandler(deps.CatalogUC, deps.UserUC)
	cfg.Get("/warehouses", configHandler.ListWarehouses)
	cfg.Post("/warehouses", keyUser, configHandler.CreateWarehouse)
	cfg.Get("/locations", configHandler.ListLocations)
	cfg.Post("/locations", keyUser, configHandler.CreateLocation)
	cfg.Get("/suppliers", configHandler.ListSuppliers)
	cfg.Get("/users", keyUser, configHandler.ListUsers)
	cfg.Post("/users", keyUser, configHandler.CreateUser)
}
