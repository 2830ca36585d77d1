package bins

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// ZoneSummary sumas de cantidad y pallets para una zona A..I.
// Las sumas se llevan en decimal sin pérdida; el redondeo a entero es asunto de la
// capa de presentación.
type ZoneSummary struct {
	Zone      string
	QtySum    decimal.Decimal
	PalletSum decimal.Decimal
}

// SummarizeZones agrupa el inventario filtrado por la letra inicial de la ubicación
// (solo A..I mayúscula, comparación exacta, sin normalizar) y suma Qty y PalletCount.
// Salida ordenada por zona ascendente.
func SummarizeZones(filtered []entity.InventoryRecord) []ZoneSummary {
	type acc struct{ qty, pallets decimal.Decimal }
	byZone := make(map[string]*acc)

	for _, rec := range filtered {
		if rec.LocationName == "" {
			continue
		}
		first := rec.LocationName[0]
		if first < 'A' || first > 'I' {
			continue
		}
		zone := string(first)
		a, ok := byZone[zone]
		if !ok {
			a = &acc{qty: decimal.Zero, pallets: decimal.Zero}
			byZone[zone] = a
		}
		a.qty = a.qty.Add(rec.Qty)
		a.pallets = a.pallets.Add(rec.PalletCount)
	}

	out := make([]ZoneSummary, 0, len(byZone))
	for zone, a := range byZone {
		out = append(out, ZoneSummary{Zone: zone, QtySum: a.qty, PalletSum: a.pallets})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Zone < out[j].Zone })
	return out
}
