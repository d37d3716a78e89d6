package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/medstock/medstock-api/internal/application/analytics"
	"github.com/medstock/medstock-api/internal/application/auth"
	appinv "github.com/medstock/medstock-api/internal/application/inventory"
	"github.com/medstock/medstock-api/internal/application/reports"
	"github.com/medstock/medstock-api/internal/application/usecase"
	"github.com/medstock/medstock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ItemUC      *usecase.ItemUseCase
	SiteUC      *usecase.SiteUseCase
	StockAreaUC *usecase.StockAreaUseCase
	InventoryUC *appinv.UseCase
	AnalyticsUC *appanalytics.UseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportsUC   *reports.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Métricas Prometheus (sin auth; se asume red interna)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Los borrados de catálogo y ubicaciones son solo para ADMIN.
	adminOnly := RequireRole(entity.RoleAdmin)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/stats", itemHandler.Stats)
	items.Get("/safety", itemHandler.SafetyMedications)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Sites (protegido)
	sites := protected.Group("/sites")
	siteHandler := NewSiteHandler(deps.SiteUC)
	sites.Post("/", siteHandler.Create)
	sites.Get("/", siteHandler.List)
	sites.Get("/:id", siteHandler.GetByID)
	sites.Put("/:id", siteHandler.Update)
	sites.Delete("/:id", adminOnly, siteHandler.Delete)

	// Stock areas (protegido)
	areas := protected.Group("/stock-areas")
	areaHandler := NewStockAreaHandler(deps.StockAreaUC)
	areas.Post("/", areaHandler.Create)
	areas.Get("/", areaHandler.List)
	areas.Get("/:id", areaHandler.GetByID)
	areas.Put("/:id", areaHandler.Update)
	areas.Delete("/:id", adminOnly, areaHandler.Delete)

	// Inventory (protegido)
	inv := protected.Group("/inventory")
	invHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/", invHandler.Create)
	inv.Get("/", invHandler.List)
	inv.Get("/low-stock", invHandler.ListLowStock)
	inv.Get("/:id", invHandler.GetByID)
	inv.Put("/:id", invHandler.Update)
	inv.Post("/:id/adjust", invHandler.Adjust)
	inv.Delete("/:id", invHandler.Delete)

	// Analytics (protegido, read-only)
	analytics := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics.Get("/stats", analyticsHandler.Stats)
	analytics.Get("/usage", analyticsHandler.Usage)
	analytics.Get("/compliance", analyticsHandler.Compliance)
	analytics.Get("/sites", analyticsHandler.Sites)
	analytics.Get("/alerts", analyticsHandler.PredictiveAlerts)
	analytics.Get("/trends", analyticsHandler.Trends)
	analytics.Get("/movements", analyticsHandler.Movements)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/low-stock", reportHandler.LowStockPDF)
}
