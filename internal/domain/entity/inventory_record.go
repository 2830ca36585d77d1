package entity

import "github.com/shopspring/decimal"

// InventoryRecord una fila del export de inventario en mano: un pallet (o resto de
// pallet) estibado en una ubicación. Qty y PalletCount llegan ya coaccionados a número
// por el loader (celdas malformadas = 0).
type InventoryRecord struct {
	LocationName         string
	PalletID             string
	WarehouseSku         string
	CustomerLotReference string
	Qty                  decimal.Decimal
	PalletCount          decimal.Decimal
}

// Zone primera letra del código de ubicación; solo es significativa para A..I.
func (r InventoryRecord) Zone() string {
	if r.LocationName == "" {
		return ""
	}
	return r.LocationName[:1]
}
