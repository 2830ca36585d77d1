package dto

import "github.com/shopspring/decimal"

// TrendPointDTO snapshot histórico de KPIs.
type TrendPointDTO struct {
	Timestamp        string          `json:"timestamp"` // RFC 3339
	EmptyBins        int             `json:"empty_bins"`
	EmptyPartialBins int             `json:"empty_partial_bins"`
	PartialBins      int             `json:"partial_bins"`
	FullPalletBins   int             `json:"full_pallet_bins"`
	Damages          decimal.Decimal `json:"damages"`
	Missing          int             `json:"missing"`
	RackCount        int             `json:"rack_count"`
	BulkCount        int             `json:"bulk_count"`
	SpecialCount     int             `json:"special_count"`
	BulkUsed         decimal.Decimal `json:"bulk_used"`
	BulkEmpty        decimal.Decimal `json:"bulk_empty"`
	SourceChecksum   string          `json:"source_checksum"`
}

// TrendHistoryDTO respuesta de GET /api/trends.
type TrendHistoryDTO struct {
	Points []TrendPointDTO `json:"points"`
}
