package usecase

import (
	"context"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
)

// DiscrepancyUseCase corre el detector de discrepancias sobre el snapshot vigente.
type DiscrepancyUseCase struct {
	snapshots *SnapshotService
	rules     bins.BulkRules
}

// NewDiscrepancyUseCase construye el caso de uso.
func NewDiscrepancyUseCase(snapshots *SnapshotService, rules bins.BulkRules) *DiscrepancyUseCase {
	return &DiscrepancyUseCase{snapshots: snapshots, rules: rules}
}

// Report discrepancias de rack y parciales (GET /api/discrepancies).
func (uc *DiscrepancyUseCase) Report(ctx context.Context) (*dto.DiscrepancyReportDTO, error) {
	report, err := uc.detect(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DiscrepancyReportDTO{
		Partial: dto.FromDiscrepancyRows(report.Partial),
		Full:    dto.FromDiscrepancyRows(report.Full),
		Rack:    dto.FromDiscrepancyRows(report.Rack),
	}, nil
}

// Bulk ubicaciones de piso sobre capacidad (GET /api/discrepancies/bulk).
func (uc *DiscrepancyUseCase) Bulk(ctx context.Context) ([]dto.BulkDiscrepancyDTO, error) {
	report, err := uc.detect(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromBulkDiscrepancies(report.Bulk), nil
}

// Duplicates pallets repetidos en más de una ubicación (GET /api/discrepancies/duplicates).
func (uc *DiscrepancyUseCase) Duplicates(ctx context.Context) (*dto.DuplicatesDTO, error) {
	snap, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	cls := bins.Classify(snap.Inventory, snap.MasterLocations)
	summary, details := bins.FindDuplicatePallets(cls.FilteredInventory)

	sumDTOs := make([]dto.DuplicatePalletDTO, 0, len(summary))
	for _, s := range summary {
		sumDTOs = append(sumDTOs, dto.DuplicatePalletDTO{
			PalletID:          s.PalletID,
			DistinctLocations: s.DistinctLocations,
		})
	}
	return &dto.DuplicatesDTO{Summary: sumDTOs, Details: dto.FromRecords(details)}, nil
}

// BulkViews ocupación de todas las ubicaciones de piso y las que tienen espacio.
func (uc *DiscrepancyUseCase) BulkViews(ctx context.Context) (all, withSpace []dto.BulkLocationDTO, err error) {
	snap, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, nil, err
	}
	cls := bins.Classify(snap.Inventory, snap.MasterLocations)
	a, w := bins.BuildBulkViews(cls.FilteredInventory, uc.rules)
	return dto.FromBulkLocations(a), dto.FromBulkLocations(w), nil
}

func (uc *DiscrepancyUseCase) detect(ctx context.Context) (*bins.DiscrepancyReport, error) {
	snap, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	cls := bins.Classify(snap.Inventory, snap.MasterLocations)
	report := bins.Detect(cls.PartialBins, cls.FilteredInventory, uc.rules)
	return &report, nil
}
