package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TrendPoint snapshot puntual de los KPIs del tablero, persistido para series de tiempo.
type TrendPoint struct {
	Timestamp        time.Time
	EmptyBins        int
	EmptyPartialBins int
	PartialBins      int
	FullPalletBins   int
	Damages          decimal.Decimal // unidades dañadas (suma de Qty)
	Missing          int
	RackCount        int
	BulkCount        int
	SpecialCount     int
	BulkUsed         decimal.Decimal
	BulkEmpty        decimal.Decimal
	SourceChecksum   string
}

// TrendRepository historial append-only de snapshots de KPIs.
type TrendRepository interface {
	Append(ctx context.Context, point TrendPoint) error
	List(ctx context.Context) ([]TrendPoint, error)
	// Last devuelve el snapshot más reciente, o nil si el historial está vacío.
	Last(ctx context.Context) (*TrendPoint, error)
}
