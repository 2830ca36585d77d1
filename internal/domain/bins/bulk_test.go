package bins_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// TestBuildBulkViews_OcupacionYHuecos suma los pallets por ubicación de piso y
// calcula los huecos contra la capacidad de la zona; los huecos nunca son negativos.
func TestBuildBulkViews_OcupacionYHuecos(t *testing.T) {
	filtered := []entity.InventoryRecord{
		rec("A101", 10, 3),
		rec("A101", 5, 1), // misma ubicación: se suma
		rec("B201", 8, 6), // sobre capacidad: hueco 0, no −2
		rec("1110101", 9, 1),
	}

	all, withSpace := bins.BuildBulkViews(filtered, bins.DefaultBulkRules())

	require.Len(t, all, 2, "el rack 1110101 no es piso")
	assert.Equal(t, "A101", all[0].LocationName)
	assert.True(t, all[0].PalletCount.Equal(decimal.NewFromInt(4)))
	assert.True(t, all[0].EmptySlots.Equal(decimal.NewFromInt(1)), "capacidad 5 − 4 usados")
	assert.True(t, all[1].EmptySlots.IsZero(), "B201 está pasada de capacidad")

	require.Len(t, withSpace, 1)
	assert.Equal(t, "A101", withSpace[0].LocationName)
}

// TestBulkTotals usados y huecos agregados de todo el piso.
func TestBulkTotals(t *testing.T) {
	filtered := []entity.InventoryRecord{
		rec("A101", 10, 2), // 3 huecos
		rec("B201", 8, 4),  // 0 huecos
	}

	all, _ := bins.BuildBulkViews(filtered, bins.DefaultBulkRules())
	used, empty := bins.BulkTotals(all)

	assert.True(t, used.Equal(decimal.NewFromInt(6)))
	assert.True(t, empty.Equal(decimal.NewFromInt(3)))
}
