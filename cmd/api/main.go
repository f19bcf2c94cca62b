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

	appanalytics "github.com/felipe798/gestion-facturas-api/internal/application/analytics"
	appbilling "github.com/felipe798/gestion-facturas-api/internal/application/billing"
	"github.com/felipe798/gestion-facturas-api/internal/application/usecase"
	infraexcel "github.com/felipe798/gestion-facturas-api/internal/infrastructure/excel"
	infrapdf "github.com/felipe798/gestion-facturas-api/internal/infrastructure/pdf"
	"github.com/felipe798/gestion-facturas-api/internal/infrastructure/postgres"
	httpRouter "github.com/felipe798/gestion-facturas-api/internal/interfaces/http"
	"github.com/felipe798/gestion-facturas-api/pkg/config"
	"github.com/felipe798/gestion-facturas-api/pkg/logger"
)

func main() {
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

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	counterpartRepo := postgres.NewCounterpartRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xlsxGenerator := infraexcel.NewExcelizeGenerator()

	invoiceUC := appbilling.NewInvoiceUseCase(invoiceRepo, counterpartRepo, nil)
	exportUC := appbilling.NewExportUseCase(invoiceUC, invoiceRepo, pdfGenerator, xlsxGenerator, nil)
	importUC := appbilling.NewImportUseCase(txRunner, nil)
	counterpartUC := appbilling.NewCounterpartUseCase(counterpartRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, nil)
	userUC := usecase.NewUserUseCase(userRepo, nil)

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
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión de Facturas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:     invoiceUC,
		ExportUC:      exportUC,
		ImportUC:      importUC,
		CounterpartUC: counterpartUC,
		DashboardUC:   dashboardUC,
		UserUC:        userUC,
		JWTSecret:     cfg.JWT.Secret,
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
