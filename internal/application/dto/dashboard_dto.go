package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Contiene los KPIs del tablero, los deltas contra el historial de tendencias, el
// resumen por zona y los widgets de composición y ocupación de piso.
type DashboardSummaryDTO struct {
	KPIs        KPISetDTO           `json:"kpis"`
	Deltas      map[string]KPIDelta `json:"deltas"`
	Zones       []ZoneSummaryDTO    `json:"zones"`
	Composition CompositionDTO      `json:"composition"`
	Bulk        BulkTotalsDTO       `json:"bulk"`
	Hotspots    []RackHotspotDTO    `json:"hotspots"`
	Source      SourceInfoDTO       `json:"source"`
}

// KPISetDTO los seis contadores del tablero.
// EmptyBins se calcula por resta aritmética (total − ocupadas), que puede divergir del
// largo de la lista de bins vacíos si el inventario trae ubicaciones fuera del maestro;
// EmptyBinsListed expone la cardinalidad real de la diferencia de conjuntos.
type KPISetDTO struct {
	EmptyBins        int             `json:"empty_bins"`
	EmptyBinsListed  int             `json:"empty_bins_listed"`
	EmptyPartialBins int             `json:"empty_partial_bins"`
	PartialBins      int             `json:"partial_bins"`
	FullPalletBins   int             `json:"full_pallet_bins"`
	Damages          decimal.Decimal `json:"damages"` // unidades dañadas (suma de Qty)
	Missing          int             `json:"missing"`
}

// KPIDelta variación de un KPI contra el historial.
type KPIDelta struct {
	VsLast *int `json:"vs_last,omitempty"` // contra el último snapshot
	Vs24h  *int `json:"vs_24h,omitempty"`  // contra el último snapshot de hace ≥24 h
}

// ZoneSummaryDTO fila del resumen por zona; las sumas van como enteros truncados para
// presentación (el agregador interno conserva los decimales).
type ZoneSummaryDTO struct {
	Zone      string `json:"zone"`
	QtySum    int64  `json:"qty_sum"`
	PalletSum int64  `json:"pallet_sum"`
}

// CompositionDTO composición del inventario completo por tipo de ubicación.
type CompositionDTO struct {
	Rack    int `json:"rack"`
	Bulk    int `json:"bulk"`
	Special int `json:"special"`
}

// BulkTotalsDTO ocupación global del piso.
type BulkTotalsDTO struct {
	Used  decimal.Decimal `json:"used"`
	Empty decimal.Decimal `json:"empty"`
}

// RackHotspotDTO ubicación de rack con múltiples pallets (top 10 del tablero).
type RackHotspotDTO struct {
	LocationName    string `json:"location_name"`
	DistinctPallets int    `json:"distinct_pallets"`
}

// SourceInfoDTO metadatos del snapshot que alimentó la respuesta.
type SourceInfoDTO struct {
	Checksum  string `json:"checksum"`
	FetchedAt string `json:"fetched_at"` // RFC 3339
}
