package bins_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

func rec(loc string, qty, pallets int64) entity.InventoryRecord {
	return entity.InventoryRecord{
		LocationName: loc,
		Qty:          decimal.NewFromInt(qty),
		PalletCount:  decimal.NewFromInt(pallets),
	}
}

// TestClassify_ExcluyeUbicacionesEspeciales verifica que DAMAGE, IBDAMAGE, MISSING
// y los prefijos IB quedan fuera del inventario filtrado pero siguen visibles en
// los listados de daños y faltantes.
func TestClassify_ExcluyeUbicacionesEspeciales(t *testing.T) {
	inventory := []entity.InventoryRecord{
		rec("A101", 3, 1),
		rec("DAMAGE", 2, 1),
		rec("damage", 4, 1), // la comparación se hace en mayúsculas
		rec("IBDAMAGE", 1, 1),
		rec("MISSING", 5, 1),
		rec("IB-STAGE", 7, 1),
	}

	cls := bins.Classify(inventory, nil)

	require.Len(t, cls.FilteredInventory, 1, "solo A101 debe sobrevivir el filtro")
	assert.Equal(t, "A101", cls.FilteredInventory[0].LocationName)

	assert.Len(t, cls.Damaged, 3, "DAMAGE, damage e IBDAMAGE cuentan como daño")
	assert.Len(t, cls.Missing, 1)
	assert.True(t, cls.DamagedQtySum().Equal(decimal.NewFromInt(7)),
		"el KPI de daños suma unidades, no filas")
}

// TestClassify_ParticionDeVaciosYParcialesVacios cubre las cuatro condiciones de un
// parcial vacío: termina en 01, no empieza con 111, no empieza con TUN y no está ocupado.
func TestClassify_ParticionDeVaciosYParcialesVacios(t *testing.T) {
	master := []string{"A101", "B201", "11101", "TUN01", "tun01", "C105", "A101"}
	inventory := []entity.InventoryRecord{rec("B201", 2, 1)}

	cls := bins.Classify(inventory, master)

	assert.Equal(t, 6, cls.MasterCount, "el maestro se deduplica antes de contar")
	assert.Equal(t, []string{"11101", "A101", "C105", "TUN01", "tun01"}, cls.EmptyBins,
		"todo lo del maestro que no está ocupado es vacío, ordenado")
	assert.Equal(t, []string{"A101"}, cls.EmptyPartialBins,
		"11101 cae por prefijo 111, TUN01/tun01 por prefijo TUN, C105 por sufijo, B201 por ocupado")
}

// TestClassify_BandaDePalletCompleto verifica los bordes inclusivos [6,15].
func TestClassify_BandaDePalletCompleto(t *testing.T) {
	inventory := []entity.InventoryRecord{
		rec("1110101", 5, 1),  // debajo de la banda
		rec("1110102", 6, 1),  // borde inferior: dentro
		rec("1110103", 15, 1), // borde superior: dentro
		rec("1110104", 16, 1), // encima de la banda
		rec("2220101", 10, 1), // sin prefijo 111
	}

	cls := bins.Classify(inventory, nil)

	locs := make([]string, 0, len(cls.FullPalletBins))
	for _, r := range cls.FullPalletBins {
		locs = append(locs, r.LocationName)
	}
	assert.Equal(t, []string{"1110102", "1110103"}, locs)
}

// TestClassify_ParcialesOcupados un bin parcial ocupado aparece con sus filas de
// inventario, incluso si hay varias filas en la misma ubicación.
func TestClassify_ParcialesOcupados(t *testing.T) {
	inventory := []entity.InventoryRecord{
		rec("A10101", 2, 1),
		rec("A10101", 1, 1),
		rec("1110101", 3, 1), // prefijo 111 nunca es parcial
		rec("TUN0101", 3, 1), // prefijo TUN tampoco
		rec("A10102", 3, 1),  // no termina en 01
	}

	cls := bins.Classify(inventory, nil)

	require.Len(t, cls.PartialBins, 2)
	assert.Equal(t, "A10101", cls.PartialBins[0].LocationName)
	assert.Equal(t, "A10101", cls.PartialBins[1].LocationName)
}

// TestClassify_KPIDeVaciosDiverge el KPI por resta aritmética difiere de la
// cardinalidad de la diferencia de conjuntos cuando el inventario trae una
// ubicación que no existe en el maestro.
func TestClassify_KPIDeVaciosDiverge(t *testing.T) {
	master := []string{"A101", "B201", "C301"}
	inventory := []entity.InventoryRecord{
		rec("B201", 2, 1),
		rec("X999", 1, 1), // ocupada pero ausente del maestro
	}

	cls := bins.Classify(inventory, master)

	assert.Equal(t, 1, cls.EmptyBinsKPI(), "3 maestras − 2 ocupadas = 1")
	assert.Len(t, cls.EmptyBins, 2, "la diferencia de conjuntos da 2: A101 y C301")
}

// TestClassify_EntradasVacias inventario o maestro vacíos producen resultados
// vacíos, nunca un pánico.
func TestClassify_EntradasVacias(t *testing.T) {
	cls := bins.Classify(nil, nil)

	assert.Empty(t, cls.FilteredInventory)
	assert.Empty(t, cls.EmptyBins)
	assert.Empty(t, cls.EmptyPartialBins)
	assert.Empty(t, cls.PartialBins)
	assert.Empty(t, cls.FullPalletBins)
	assert.Zero(t, cls.EmptyBinsKPI())
}

// TestClassify_Determinista dos corridas sobre el mismo input producen exactamente
// el mismo resultado.
func TestClassify_Determinista(t *testing.T) {
	master := []string{"C105", "A101", "B201"}
	inventory := []entity.InventoryRecord{
		rec("B201", 2, 1),
		rec("1110102", 8, 1),
		rec("DAMAGE", 1, 1),
	}

	first := bins.Classify(inventory, master)
	second := bins.Classify(inventory, master)

	assert.Equal(t, first.EmptyBins, second.EmptyBins)
	assert.Equal(t, first.EmptyPartialBins, second.EmptyPartialBins)
	assert.Equal(t, first.PartialBins, second.PartialBins)
	assert.Equal(t, first.FullPalletBins, second.FullPalletBins)
	assert.Equal(t, first.MasterCount, second.MasterCount)
}
