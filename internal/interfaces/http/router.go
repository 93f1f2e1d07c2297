package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-local/internal/application/auth"
	"github.com/jhoicas/Inventario-local/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store    *inventory.Store
	ReportUC *inventory.ReportUseCase
	AuthUC   *auth.AuthUseCase
	// JWTSecret vacío: rutas de inventario sin autenticación (modo local de un solo operador).
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	invGroup := api.Group("/inventory")
	if deps.JWTSecret != "" {
		invGroup.Use(AuthMiddleware(deps.JWTSecret))
	}

	inventoryHandler := NewInventoryHandler(deps.Store)
	invGroup.Get("/", inventoryHandler.Get)
	invGroup.Delete("/", inventoryHandler.Reset)
	invGroup.Post("/stock", inventoryHandler.UpdateStock)

	items := invGroup.Group("/items")
	items.Post("/import", inventoryHandler.ImportItems)
	items.Post("/", inventoryHandler.CreateItem)
	items.Put("/:id", inventoryHandler.UpdateItem)
	items.Delete("/:id", inventoryHandler.DeleteItem)

	invGroup.Post("/locations", inventoryHandler.AddLocation)
	invGroup.Post("/categories", inventoryHandler.AddCategory)

	invGroup.Get("/audit-logs", inventoryHandler.ListAuditLogs)
	invGroup.Get("/audit-logs/last-import", inventoryHandler.LastImport)

	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		invGroup.Get("/reports/stock.pdf", reportHandler.StockPDF)
	}
}
