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
	"github.com/joho/godotenv"

	appanalytics "github.com/medstock/medstock-api/internal/application/analytics"
	"github.com/medstock/medstock-api/internal/application/auth"
	appinv "github.com/medstock/medstock-api/internal/application/inventory"
	"github.com/medstock/medstock-api/internal/application/reports"
	"github.com/medstock/medstock-api/internal/application/usecase"
	infrapdf "github.com/medstock/medstock-api/internal/infrastructure/pdf"
	"github.com/medstock/medstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/medstock/medstock-api/internal/interfaces/http"
	"github.com/medstock/medstock-api/pkg/config"
	"github.com/medstock/medstock-api/pkg/logger"
)

func main() {
	_ = godotenv.Load() // .env local opcional; en producción manda el entorno

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	siteRepo := postgres.NewSiteRepository(pool)
	areaRepo := postgres.NewStockAreaRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	registrationTx := postgres.NewRegistrationTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, registrationTx, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := usecase.NewItemUseCase(itemRepo, inventoryRepo)
	siteUC := usecase.NewSiteUseCase(siteRepo, areaRepo)
	areaUC := usecase.NewStockAreaUseCase(areaRepo, siteRepo, inventoryRepo)
	inventoryUC := appinv.NewUseCase(txRunner, inventoryRepo, itemRepo, areaRepo)
	analyticsUC := appanalytics.NewUseCase(analyticsRepo, movementRepo, itemRepo, siteRepo, areaRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsUC, itemRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportsUC := reports.NewUseCase(inventoryRepo, companyRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./api/swagger.json",
		Path:     "docs",
		Title:    "MedStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ItemUC:      itemUC,
		SiteUC:      siteUC,
		StockAreaUC: areaUC,
		InventoryUC: inventoryUC,
		AnalyticsUC: analyticsUC,
		DashboardUC: dashboardUC,
		ReportsUC:   reportsUC,
		JWTSecret:   cfg.JWT.Secret,
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
