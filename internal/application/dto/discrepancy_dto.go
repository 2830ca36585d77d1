package dto

import (
	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
)

// DiscrepancyRowDTO fila de inventario con el problema detectado.
type DiscrepancyRowDTO struct {
	InventoryRowDTO
	Issue string `json:"issue"`
}

// BulkDiscrepancyDTO ubicación de piso sobre capacidad.
type BulkDiscrepancyDTO struct {
	LocationName string          `json:"location_name"`
	Zone         string          `json:"zone"`
	PalletSum    decimal.Decimal `json:"pallet_sum"`
	MaxAllowed   int             `json:"max_allowed"`
	Issue        string          `json:"issue"`
}

// DiscrepancyReportDTO respuesta de GET /api/discrepancies.
type DiscrepancyReportDTO struct {
	Partial []DiscrepancyRowDTO `json:"partial"`
	Full    []DiscrepancyRowDTO `json:"full"`
	Rack    []DiscrepancyRowDTO `json:"rack"`
}

// DuplicatePalletDTO resumen de un pallet duplicado.
type DuplicatePalletDTO struct {
	PalletID          string `json:"pallet_id"`
	DistinctLocations int    `json:"distinct_locations"`
}

// DuplicatesDTO respuesta de GET /api/discrepancies/duplicates.
type DuplicatesDTO struct {
	Summary []DuplicatePalletDTO `json:"summary"`
	Details []InventoryRowDTO    `json:"details"`
}

// BulkLocationDTO ocupación de una ubicación de piso.
type BulkLocationDTO struct {
	LocationName string          `json:"location_name"`
	Zone         string          `json:"zone"`
	PalletCount  decimal.Decimal `json:"pallet_count"`
	MaxAllowed   int             `json:"max_allowed"`
	EmptySlots   decimal.Decimal `json:"empty_slots"`
}

// FromDiscrepancyRows proyecta filas de discrepancia del dominio.
func FromDiscrepancyRows(rows []bins.DiscrepancyRow) []DiscrepancyRowDTO {
	out := make([]DiscrepancyRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, DiscrepancyRowDTO{InventoryRowDTO: FromRecord(r.InventoryRecord), Issue: r.Issue})
	}
	return out
}

// FromBulkDiscrepancies proyecta las discrepancias de piso.
func FromBulkDiscrepancies(rows []bins.BulkDiscrepancy) []BulkDiscrepancyDTO {
	out := make([]BulkDiscrepancyDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, BulkDiscrepancyDTO{
			LocationName: r.LocationName,
			Zone:         r.Zone,
			PalletSum:    r.PalletSum,
			MaxAllowed:   r.MaxAllowed,
			Issue:        r.Issue,
		})
	}
	return out
}

// FromBulkLocations proyecta las vistas de ocupación de piso.
func FromBulkLocations(rows []bins.BulkLocation) []BulkLocationDTO {
	out := make([]BulkLocationDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, BulkLocationDTO{
			LocationName: r.LocationName,
			Zone:         r.Zone,
			PalletCount:  r.PalletCount,
			MaxAllowed:   r.MaxAllowed,
			EmptySlots:   r.EmptySlots,
		})
	}
	return out
}
