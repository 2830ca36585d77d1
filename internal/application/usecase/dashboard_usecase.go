package usecase

import (
	"context"
	"time"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

const hotspotTopN = 10

// DashboardUseCase arma el resumen del tablero: corre el pipeline completo
// (clasificación → discrepancias → agregación por zona) sobre el snapshot vigente y
// enriquece los KPIs con deltas contra el historial de tendencias.
type DashboardUseCase struct {
	snapshots *SnapshotService
	trends    *TrendUseCase
	rules     bins.BulkRules
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(snapshots *SnapshotService, trends *TrendUseCase, rules bins.BulkRules) *DashboardUseCase {
	return &DashboardUseCase{snapshots: snapshots, trends: trends, rules: rules}
}

// ZonesSummary agrega Qty y PalletCount por zona A..I sobre el snapshot vigente.
func (uc *DashboardUseCase) ZonesSummary(ctx context.Context) ([]dto.ZoneSummaryDTO, error) {
	snap, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	cls := bins.Classify(snap.Inventory, snap.MasterLocations)
	zones := bins.SummarizeZones(cls.FilteredInventory)
	out := make([]dto.ZoneSummaryDTO, 0, len(zones))
	for _, z := range zones {
		out = append(out, dto.ZoneSummaryDTO{
			Zone:      z.Zone,
			QtySum:    z.QtySum.IntPart(),
			PalletSum: z.PalletSum.IntPart(),
		})
	}
	return out, nil
}

// RecordSnapshot registra un punto de tendencia ahora, sin mirar el intervalo.
func (uc *DashboardUseCase) RecordSnapshot(ctx context.Context) error {
	snap, err := uc.snapshots.Current(ctx)
	if err != nil {
		return err
	}
	cls := bins.Classify(snap.Inventory, snap.MasterLocations)
	comp := bins.Compose(snap.Inventory, uc.rules)
	bulkAll, _ := bins.BuildBulkViews(cls.FilteredInventory, uc.rules)
	used, empty := bins.BulkTotals(bulkAll)
	point := repository.TrendPoint{
		Timestamp:        time.Now(),
		EmptyBins:        cls.EmptyBinsKPI(),
		EmptyPartialBins: len(cls.EmptyPartialBins),
		PartialBins:      len(cls.PartialBins),
		FullPalletBins:   len(cls.FullPalletBins),
		Damages:          cls.DamagedQtySum(),
		Missing:          len(cls.Missing),
		RackCount:        comp.Rack,
		BulkCount:        comp.Bulk,
		SpecialCount:     comp.Special,
		BulkUsed:         used,
		BulkEmpty:        empty,
		SourceChecksum:   snap.SourceChecksum,
	}
	return uc.trends.Record(ctx, point)
}

// GetSummary calcula el resumen completo del tablero. Dispara además el auto-snapshot
// de tendencias si el último quedó más viejo que el intervalo configurado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}

	// 1) Pipeline puro sobre el snapshot inmutable
	cls := bins.Classify(snap.Inventory, snap.MasterLocations)
	zones := bins.SummarizeZones(cls.FilteredInventory)
	comp := bins.Compose(snap.Inventory, uc.rules)
	bulkAll, _ := bins.BuildBulkViews(cls.FilteredInventory, uc.rules)
	used, empty := bins.BulkTotals(bulkAll)
	hotspots := bins.RackHotspots(cls.FilteredInventory)
	if len(hotspots) > hotspotTopN {
		hotspots = hotspots[:hotspotTopN]
	}

	kpis := dto.KPISetDTO{
		EmptyBins:        cls.EmptyBinsKPI(),
		EmptyBinsListed:  len(cls.EmptyBins),
		EmptyPartialBins: len(cls.EmptyPartialBins),
		PartialBins:      len(cls.PartialBins),
		FullPalletBins:   len(cls.FullPalletBins),
		Damages:          cls.DamagedQtySum(),
		Missing:          len(cls.Missing),
	}

	point := repository.TrendPoint{
		Timestamp:        time.Now(),
		EmptyBins:        kpis.EmptyBins,
		EmptyPartialBins: kpis.EmptyPartialBins,
		PartialBins:      kpis.PartialBins,
		FullPalletBins:   kpis.FullPalletBins,
		Damages:          kpis.Damages,
		Missing:          kpis.Missing,
		RackCount:        comp.Rack,
		BulkCount:        comp.Bulk,
		SpecialCount:     comp.Special,
		BulkUsed:         used,
		BulkEmpty:        empty,
		SourceChecksum:   snap.SourceChecksum,
	}

	// 2) Deltas contra el historial; después registrar el snapshot si toca
	deltas, err := uc.trends.Deltas(ctx, point)
	if err != nil {
		return nil, err
	}
	if err := uc.trends.RecordIfStale(ctx, point); err != nil {
		return nil, err
	}

	zoneDTOs := make([]dto.ZoneSummaryDTO, 0, len(zones))
	for _, z := range zones {
		zoneDTOs = append(zoneDTOs, dto.ZoneSummaryDTO{
			Zone:      z.Zone,
			QtySum:    z.QtySum.IntPart(),
			PalletSum: z.PalletSum.IntPart(),
		})
	}

	hotspotDTOs := make([]dto.RackHotspotDTO, 0, len(hotspots))
	for _, h := range hotspots {
		hotspotDTOs = append(hotspotDTOs, dto.RackHotspotDTO{
			LocationName:    h.LocationName,
			DistinctPallets: h.DistinctPallets,
		})
	}

	return &dto.DashboardSummaryDTO{
		KPIs:   kpis,
		Deltas: deltas,
		Zones:  zoneDTOs,
		Composition: dto.CompositionDTO{
			Rack:    comp.Rack,
			Bulk:    comp.Bulk,
			Special: comp.Special,
		},
		Bulk:     dto.BulkTotalsDTO{Used: used, Empty: empty},
		Hotspots: hotspotDTOs,
		Source: dto.SourceInfoDTO{
			Checksum:  snap.SourceChecksum,
			FetchedAt: snap.FetchedAt.Format(time.RFC3339),
		},
	}, nil
}
