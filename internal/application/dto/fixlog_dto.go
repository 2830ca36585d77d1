package dto

import "github.com/shopspring/decimal"

// FixActionRequest una fila a registrar en el fix log.
type FixActionRequest struct {
	DiscrepancyType      string          `json:"discrepancy_type"`
	LocationName         string          `json:"location_name"`
	PalletID             string          `json:"pallet_id"`
	WarehouseSku         string          `json:"warehouse_sku"`
	CustomerLotReference string          `json:"customer_lot_reference"`
	Qty                  decimal.Decimal `json:"qty"`
	Issue                string          `json:"issue"`
}

// FixBatchRequest cuerpo de POST /api/fixlog: un lote de filas con la misma acción.
type FixBatchRequest struct {
	Action      string             `json:"action"` // RESOLVE | DISMISS
	Note        string             `json:"note"`
	Reason      string             `json:"reason"`
	SelectedLot string             `json:"selected_lot"`
	Rows        []FixActionRequest `json:"rows"`
}

// FixBatchResponse confirma el lote registrado.
type FixBatchResponse struct {
	BatchID string `json:"batch_id"`
	Logged  int    `json:"logged"`
}

// FixActionDTO fila del fix log para lectura.
type FixActionDTO struct {
	Timestamp            string          `json:"timestamp"` // RFC 3339
	Action               string          `json:"action"`
	BatchID              string          `json:"batch_id"`
	DiscrepancyType      string          `json:"discrepancy_type"`
	LocationName         string          `json:"location_name"`
	PalletID             string          `json:"pallet_id"`
	WarehouseSku         string          `json:"warehouse_sku"`
	CustomerLotReference string          `json:"customer_lot_reference"`
	Qty                  decimal.Decimal `json:"qty"`
	Issue                string          `json:"issue"`
	Note                 string          `json:"note"`
	SelectedLot          string          `json:"selected_lot"`
	Reason               string          `json:"reason"`
}

// FixLogDTO respuesta de GET /api/fixlog (más reciente primero).
type FixLogDTO struct {
	Actions []FixActionDTO `json:"actions"`
}
