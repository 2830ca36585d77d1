package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC   *usecase.DashboardUseCase
	BinsUC        *usecase.BinsUseCase
	DiscrepancyUC *usecase.DiscrepancyUseCase
	TrendUC       *usecase.TrendUseCase
	FixLogUC      *usecase.FixLogUseCase
	AskUC         *usecase.AskUseCase
	Snapshots     *usecase.SnapshotService
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Tablero
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Snapshots)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Post("/refresh", dashboardHandler.Refresh)
	api.Get("/zones/summary", dashboardHandler.GetZones)
	api.Post("/refresh", dashboardHandler.Refresh)

	// Listas por categoría
	binsHandler := NewBinsHandler(deps.BinsUC)
	api.Get("/bins/:kind", binsHandler.List)

	// Discrepancias y piso
	discrepancyHandler := NewDiscrepancyHandler(deps.DiscrepancyUC)
	discrepancies := api.Group("/discrepancies")
	discrepancies.Get("/", discrepancyHandler.Report)
	discrepancies.Get("/bulk", discrepancyHandler.Bulk)
	discrepancies.Get("/duplicates", discrepancyHandler.Duplicates)
	api.Get("/bulk/locations", discrepancyHandler.BulkLocations)
	api.Get("/bulk/empty", discrepancyHandler.BulkEmpty)

	// Histórico de KPIs
	trendHandler := NewTrendHandler(deps.TrendUC, deps.DashboardUC)
	api.Get("/trends", trendHandler.History)
	api.Post("/trends/snapshot", trendHandler.Snapshot)

	// Fix log
	fixLogHandler := NewFixLogHandler(deps.FixLogUC)
	api.Post("/fixlog", fixLogHandler.LogBatch)
	api.Get("/fixlog", fixLogHandler.List)

	// Consultas en lenguaje natural
	askHandler := NewAskHandler(deps.AskUC)
	api.Post("/ask", askHandler.Ask)
}
