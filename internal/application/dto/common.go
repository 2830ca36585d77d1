package dto

import (
	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InventoryRowDTO fila de inventario para listados (las columnas "core" del sistema).
type InventoryRowDTO struct {
	LocationName         string          `json:"location_name"`
	PalletID             string          `json:"pallet_id"`
	WarehouseSku         string          `json:"warehouse_sku"`
	CustomerLotReference string          `json:"customer_lot_reference"`
	Qty                  decimal.Decimal `json:"qty"`
	PalletCount          decimal.Decimal `json:"pallet_count"`
}

// FromRecord proyecta una entidad a DTO.
func FromRecord(r entity.InventoryRecord) InventoryRowDTO {
	return InventoryRowDTO{
		LocationName:         r.LocationName,
		PalletID:             r.PalletID,
		WarehouseSku:         r.WarehouseSku,
		CustomerLotReference: r.CustomerLotReference,
		Qty:                  r.Qty,
		PalletCount:          r.PalletCount,
	}
}

// FromRecords proyecta un slice completo (nunca nil, para JSON estable).
func FromRecords(recs []entity.InventoryRecord) []InventoryRowDTO {
	out := make([]InventoryRowDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromRecord(r))
	}
	return out
}
