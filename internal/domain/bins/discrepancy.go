package bins

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// Umbrales de discrepancia: estrictos (>) para conteos, banda [6,15] inclusiva para racks.
var (
	partialQtyMax = decimal.NewFromInt(5)
	onePallet     = decimal.NewFromInt(1)
)

// DiscrepancyRow fila de inventario con la descripción del problema detectado.
type DiscrepancyRow struct {
	entity.InventoryRecord
	Issue string
}

// BulkDiscrepancy ubicación de piso cuyo total de pallets supera la capacidad de su zona.
type BulkDiscrepancy struct {
	LocationName string
	Zone         string
	PalletSum    decimal.Decimal
	MaxAllowed   int
	Issue        string
}

// DiscrepancyReport las cuatro familias de discrepancias de una corrida.
type DiscrepancyReport struct {
	Partial []DiscrepancyRow
	Full    []DiscrepancyRow
	Rack    []DiscrepancyRow
	Bulk    []BulkDiscrepancy
}

// Detect evalúa las reglas de negocio sobre los bins parciales y el inventario filtrado.
// No hay efectos secundarios; con columnas numéricas bien formadas (garantizado por el
// loader) esta etapa nunca falla.
func Detect(partialBins, filtered []entity.InventoryRecord, rules BulkRules) DiscrepancyReport {
	var report DiscrepancyReport

	// Parciales: más de 5 unidades o más de un pallet en un bin de picking.
	for _, rec := range partialBins {
		switch {
		case rec.Qty.GreaterThan(partialQtyMax):
			report.Partial = append(report.Partial, DiscrepancyRow{rec, "Qty too high for partial bin"})
		case rec.PalletCount.GreaterThan(onePallet):
			report.Partial = append(report.Partial, DiscrepancyRow{rec, "Multiple pallets in partial bin"})
		}
	}

	// Racks "111": Qty fuera de la banda [6,15] o múltiples pallets.
	for _, rec := range filtered {
		if !strings.HasPrefix(rec.LocationName, "111") {
			continue
		}
		if rec.Qty.LessThan(fullBandLow) || rec.Qty.GreaterThan(fullBandHigh) {
			report.Full = append(report.Full, DiscrepancyRow{rec, "Partial Pallet needs to be moved to Partial Location"})
		}
		if rec.PalletCount.GreaterThan(onePallet) {
			report.Rack = append(report.Rack, DiscrepancyRow{rec, "Multiple pallets in rack location"})
		}
	}

	report.Bulk = detectBulk(filtered, rules)
	return report
}

// detectBulk agrupa el inventario de piso por ubicación, suma PalletCount y reporta cada
// ubicación que excede la capacidad de su zona. La lista resultante es plana (todas las
// zonas) y ordenada por ubicación.
func detectBulk(filtered []entity.InventoryRecord, rules BulkRules) []BulkDiscrepancy {
	sums := make(map[string]decimal.Decimal)
	for _, rec := range filtered {
		zone := strings.ToUpper(rec.Zone())
		if _, ok := rules[zone]; !ok {
			continue
		}
		sums[rec.LocationName] = sums[rec.LocationName].Add(rec.PalletCount)
	}

	var out []BulkDiscrepancy
	for loc, sum := range sums {
		zone := strings.ToUpper(loc[:1])
		limit := rules[zone]
		if sum.GreaterThan(decimal.NewFromInt(int64(limit))) {
			out = append(out, BulkDiscrepancy{
				LocationName: loc,
				Zone:         zone,
				PalletSum:    sum,
				MaxAllowed:   limit,
				Issue:        fmt.Sprintf("Exceeds max allowed: %s > %d", sum.String(), limit),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocationName < out[j].LocationName })
	return out
}
