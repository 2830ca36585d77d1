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

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/infrastructure/csvstore"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/infrastructure/excel"
	httpRouter "github.com/CarlosJTLogistics/bin-helper-api/internal/interfaces/http"
	"github.com/CarlosJTLogistics/bin-helper-api/pkg/config"
	"github.com/CarlosJTLogistics/bin-helper-api/pkg/logger"
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
		Str("inventory_url", cfg.Sheets.InventoryURL).
		Msg("iniciando aplicación")

	source := excel.NewSheetSource(cfg.Sheets.InventoryURL, cfg.Sheets.MasterURL, log)
	snapshots := usecase.NewSnapshotService(source, time.Duration(cfg.Sheets.TTLSeconds)*time.Second)

	trendRepo, err := csvstore.NewTrendRepository(cfg.Store.LogDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir histórico de tendencias")
	}
	fixLogRepo, err := csvstore.NewFixLogRepository(cfg.Store.LogDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir fix log")
	}

	rules := bins.BulkRules(cfg.Bulk.Capacity)
	trendUC := usecase.NewTrendUseCase(trendRepo, time.Duration(cfg.Store.TrendIntervalMinutes)*time.Minute)
	dashboardUC := usecase.NewDashboardUseCase(snapshots, trendUC, rules)
	binsUC := usecase.NewBinsUseCase(snapshots)
	discrepancyUC := usecase.NewDiscrepancyUseCase(snapshots, rules)
	fixLogUC := usecase.NewFixLogUseCase(fixLogRepo)
	askUC := usecase.NewAskUseCase(snapshots, rules)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bin Helper API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:   dashboardUC,
		BinsUC:        binsUC,
		DiscrepancyUC: discrepancyUC,
		TrendUC:       trendUC,
		FixLogUC:      fixLogUC,
		AskUC:         askUC,
		Snapshots:     snapshots,
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
