package bins

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// Banda [6,15] de un rack de pallet completo; inclusiva en ambos extremos.
var (
	fullBandLow  = decimal.NewFromInt(6)
	fullBandHigh = decimal.NewFromInt(15)
)

// Classification resultado de particionar el inventario y el listado maestro en las
// categorías operativas. Los slices de ubicaciones vacías salen ordenados para que el
// resultado sea determinista.
type Classification struct {
	// FilteredInventory inventario sin DAMAGE/IBDAMAGE/MISSING ni ubicaciones IB*.
	FilteredInventory []entity.InventoryRecord
	// Occupied ubicaciones únicas del inventario filtrado (comparación exacta).
	Occupied map[string]struct{}
	// MasterCount total de ubicaciones maestras deduplicadas.
	MasterCount int

	EmptyBins        []string // maestro − ocupadas (diferencia de conjuntos, ordenada)
	EmptyPartialBins []string // candidatas a parcial del maestro, no ocupadas (ordenada)

	PartialBins    []entity.InventoryRecord
	FullPalletBins []entity.InventoryRecord
	Damaged        []entity.InventoryRecord // del inventario SIN filtrar
	Missing        []entity.InventoryRecord // del inventario SIN filtrar
}

// isExcludedLocation DAMAGE, IBDAMAGE, MISSING o prefijo IB, sobre el nombre en mayúsculas.
// Las ubicaciones así excluidas nunca cuentan como "ocupadas", pero siguen visibles en
// los reportes de daños/faltantes que parten del inventario sin filtrar.
func isExcludedLocation(name string) bool {
	up := strings.ToUpper(name)
	switch up {
	case "DAMAGE", "IBDAMAGE", "MISSING":
		return true
	}
	return strings.HasPrefix(up, "IB")
}

// isPartialCandidate sufijo "01", sin prefijo "111" y sin prefijo TUN (este último
// case-insensitive). La política de mayúsculas difiere adrede entre predicados; no
// normalizar globalmente.
func isPartialCandidate(name string) bool {
	return strings.HasSuffix(name, "01") &&
		!strings.HasPrefix(name, "111") &&
		!strings.HasPrefix(strings.ToUpper(name), "TUN")
}

// isFullPalletBin rack "111" con Qty dentro de la banda [6,15].
func isFullPalletBin(name string, qty decimal.Decimal) bool {
	return strings.HasPrefix(name, "111") &&
		qty.GreaterThanOrEqual(fullBandLow) && qty.LessThanOrEqual(fullBandHigh)
}

// Classify particiona el inventario y el maestro en las categorías operativas.
// Función pura: no muta los argumentos y dos corridas sobre el mismo input producen
// exactamente el mismo resultado.
func Classify(inventory []entity.InventoryRecord, master []string) Classification {
	filtered := make([]entity.InventoryRecord, 0, len(inventory))
	for _, rec := range inventory {
		if !isExcludedLocation(rec.LocationName) {
			filtered = append(filtered, rec)
		}
	}

	occupied := make(map[string]struct{}, len(filtered))
	for _, rec := range filtered {
		occupied[rec.LocationName] = struct{}{}
	}

	masterSet := make(map[string]struct{}, len(master))
	for _, loc := range master {
		if loc != "" {
			masterSet[loc] = struct{}{}
		}
	}

	var empty, emptyPartial []string
	for loc := range masterSet {
		if _, ok := occupied[loc]; ok {
			continue
		}
		empty = append(empty, loc)
		if isPartialCandidate(loc) {
			emptyPartial = append(emptyPartial, loc)
		}
	}
	sort.Strings(empty)
	sort.Strings(emptyPartial)

	var partial, full []entity.InventoryRecord
	for _, rec := range filtered {
		if isPartialCandidate(rec.LocationName) {
			partial = append(partial, rec)
		}
		if isFullPalletBin(rec.LocationName, rec.Qty) {
			full = append(full, rec)
		}
	}

	var damaged, missing []entity.InventoryRecord
	for _, rec := range inventory {
		switch strings.ToUpper(rec.LocationName) {
		case "DAMAGE", "IBDAMAGE":
			damaged = append(damaged, rec)
		case "MISSING":
			missing = append(missing, rec)
		}
	}

	return Classification{
		FilteredInventory: filtered,
		Occupied:          occupied,
		MasterCount:       len(masterSet),
		EmptyBins:         empty,
		EmptyPartialBins:  emptyPartial,
		PartialBins:       partial,
		FullPalletBins:    full,
		Damaged:           damaged,
		Missing:           missing,
	}
}

// EmptyBinsKPI el KPI "Empty Bins" del tablero se calcula por resta aritmética
// (total − ocupadas) y NO por cardinalidad de la diferencia de conjuntos. Si el
// inventario trae una ubicación ocupada que no existe en el maestro, ambos números
// divergen; es una inconsistencia conocida del sistema que se preserva a propósito.
func (c Classification) EmptyBinsKPI() int {
	return c.MasterCount - len(c.Occupied)
}

// DamagedQtySum suma de Qty sobre las filas dañadas (el KPI de daños reporta unidades,
// no filas).
func (c Classification) DamagedQtySum() decimal.Decimal {
	sum := decimal.Zero
	for _, rec := range c.Damaged {
		sum = sum.Add(rec.Qty)
	}
	return sum
}
