package repository

import (
	"context"
	"time"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// FixAction una acción registrada sobre una fila de discrepancia (resolver/descartar).
type FixAction struct {
	Timestamp       time.Time
	Action          string // RESOLVE | DISMISS
	BatchID         string
	DiscrepancyType string
	RowKey          string
	Record          entity.InventoryRecord
	Issue           string
	Note            string
	SelectedLot     string
	Reason          string
}

// FixLogFilter filtros de lectura del fix log; los campos vacíos no filtran.
type FixLogFilter struct {
	DiscrepancyType string
	From, To        time.Time
	Text            string // búsqueda en ubicación, pallet, SKU, lote, issue, nota y batch
}

// FixLogRepository bitácora append-only de acciones de corrección.
type FixLogRepository interface {
	Append(ctx context.Context, actions []FixAction) error
	List(ctx context.Context, filter FixLogFilter) ([]FixAction, error)
}
