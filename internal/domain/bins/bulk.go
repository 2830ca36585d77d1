package bins

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// BulkLocation ocupación de una ubicación de piso frente a la capacidad de su zona.
type BulkLocation struct {
	LocationName string
	Zone         string
	PalletCount  decimal.Decimal // suma de PalletCount de las filas estibadas ahí
	MaxAllowed   int
	EmptySlots   decimal.Decimal // max(0, capacidad − usados)
}

// BuildBulkViews calcula la ocupación de cada ubicación de piso y la sublista de las que
// aún tienen espacio. Ambas salen ordenadas por zona y ubicación.
func BuildBulkViews(filtered []entity.InventoryRecord, rules BulkRules) (all, withSpace []BulkLocation) {
	sums := make(map[string]decimal.Decimal)
	for _, rec := range filtered {
		zone := strings.ToUpper(rec.Zone())
		if _, ok := rules[zone]; !ok {
			continue
		}
		sums[rec.LocationName] = sums[rec.LocationName].Add(rec.PalletCount)
	}

	all = make([]BulkLocation, 0, len(sums))
	for loc, used := range sums {
		zone := strings.ToUpper(loc[:1])
		max := rules[zone]
		empty := decimal.NewFromInt(int64(max)).Sub(used)
		if empty.IsNegative() {
			empty = decimal.Zero
		}
		bl := BulkLocation{
			LocationName: loc,
			Zone:         zone,
			PalletCount:  used,
			MaxAllowed:   max,
			EmptySlots:   empty,
		}
		all = append(all, bl)
		if empty.IsPositive() {
			withSpace = append(withSpace, bl)
		}
	}

	less := func(s []BulkLocation) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].Zone != s[j].Zone {
				return s[i].Zone < s[j].Zone
			}
			return s[i].LocationName < s[j].LocationName
		}
	}
	sort.Slice(all, less(all))
	sort.Slice(withSpace, less(withSpace))
	return all, withSpace
}

// BulkTotals sumas globales de pallets usados y espacios libres sobre las vistas de piso.
func BulkTotals(all []BulkLocation) (used, empty decimal.Decimal) {
	used, empty = decimal.Zero, decimal.Zero
	for _, bl := range all {
		used = used.Add(bl.PalletCount)
		empty = empty.Add(bl.EmptySlots)
	}
	return used, empty
}
