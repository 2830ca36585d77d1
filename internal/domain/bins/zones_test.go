package bins_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// TestSummarizeZones_AgrupaYOrdena las zonas A-I se agrupan por la primera letra y
// salen ordenadas alfabéticamente con las sumas de Qty y PalletCount.
func TestSummarizeZones_AgrupaYOrdena(t *testing.T) {
	filtered := []entity.InventoryRecord{
		rec("B201", 5, 1),
		rec("A101", 4, 1),
		rec("A102", 6, 1),
	}

	zones := bins.SummarizeZones(filtered)

	require.Len(t, zones, 2)
	assert.Equal(t, "A", zones[0].Zone)
	assert.True(t, zones[0].QtySum.Equal(decimal.NewFromInt(10)))
	assert.True(t, zones[0].PalletSum.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "B", zones[1].Zone)
	assert.True(t, zones[1].QtySum.Equal(decimal.NewFromInt(5)))
	assert.True(t, zones[1].PalletSum.Equal(decimal.NewFromInt(1)))
}

// TestSummarizeZones_SoloMayusculasAI el corte de zona es sensible a mayúsculas:
// "a101" y las letras fuera de A-I no aportan a ningún grupo.
func TestSummarizeZones_SoloMayusculasAI(t *testing.T) {
	filtered := []entity.InventoryRecord{
		rec("a101", 4, 1),
		rec("J101", 4, 1),
		rec("1110101", 8, 1),
		rec("I900", 2, 1),
	}

	zones := bins.SummarizeZones(filtered)

	require.Len(t, zones, 1)
	assert.Equal(t, "I", zones[0].Zone)
}

// TestSummarizeZones_Vacio sin inventario no hay zonas.
func TestSummarizeZones_Vacio(t *testing.T) {
	assert.Empty(t, bins.SummarizeZones(nil))
}
