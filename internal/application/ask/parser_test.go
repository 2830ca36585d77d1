package ask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/ask"
)

// TestParseComparator las cuatro formas de comparar: rango, techo, piso e igualdad;
// un número suelto cuenta como igualdad.
func TestParseComparator(t *testing.T) {
	cases := []struct {
		query string
		want  ask.Comparator
	}{
		{"between 2 and 5", ask.Comparator{Op: ask.OpBetween, Low: 2, High: 5}},
		{"between 5 and 2", ask.Comparator{Op: ask.OpBetween, Low: 2, High: 5}},
		{"5 pallets or less", ask.Comparator{Op: ask.OpLE, Low: 5}},
		{"at most 3", ask.Comparator{Op: ask.OpLE, Low: 3}},
		{"at least 1 empty slot", ask.Comparator{Op: ask.OpGE, Low: 1}},
		{"2 or more", ask.Comparator{Op: ask.OpGE, Low: 2}},
		{"exactly 4", ask.Comparator{Op: ask.OpEQ, Low: 4}},
		{"with 3 pallets", ask.Comparator{Op: ask.OpEQ, Low: 3}},
		{"no numbers here", ask.Comparator{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ask.ParseComparator(tc.query), "consulta: %q", tc.query)
	}
}

// TestComparatorMatches sin operador acepta cualquier valor.
func TestComparatorMatches(t *testing.T) {
	assert.True(t, ask.Comparator{Op: ask.OpBetween, Low: 2, High: 5}.Matches(3))
	assert.False(t, ask.Comparator{Op: ask.OpBetween, Low: 2, High: 5}.Matches(6))
	assert.True(t, ask.Comparator{Op: ask.OpLE, Low: 5}.Matches(5))
	assert.False(t, ask.Comparator{Op: ask.OpGE, Low: 2}.Matches(1))
	assert.True(t, ask.Comparator{Op: ask.OpEQ, Low: 4}.Matches(4))
	assert.True(t, ask.Comparator{}.Matches(999))
}

// TestParse_Dominios el orden de resolución: bulk gana sobre duplicados y estos
// sobre parciales; las búsquedas puntuales van al final.
func TestParse_Dominios(t *testing.T) {
	q := ask.Parse("show me bulk locations with 5 pallets or less")
	assert.Equal(t, ask.KindBulkPallets, q.Kind)
	assert.Equal(t, ask.OpLE, q.Cmp.Op)

	q = ask.Parse("bulk locations with at least 1 empty slot")
	assert.Equal(t, ask.KindBulkEmptySlots, q.Kind)
	assert.Equal(t, ask.OpGE, q.Cmp.Op)

	q = ask.Parse("duplicates for pallet JTL00496")
	assert.Equal(t, ask.KindDuplicateByID, q.Kind)
	assert.Equal(t, "JTL00496", q.Arg)

	q = ask.Parse("show duplicates")
	assert.Equal(t, ask.KindDuplicates, q.Kind)

	q = ask.Parse("partial bins in aisle 114")
	assert.Equal(t, ask.KindPartialBins, q.Kind)
	assert.Equal(t, "114", q.Arg)

	q = ask.Parse("show partial bins")
	assert.Equal(t, ask.KindPartialBins, q.Kind)
	assert.Empty(t, q.Arg)

	assert.Equal(t, ask.KindFullBins, ask.Parse("full pallet bins").Kind)
	assert.Equal(t, ask.KindRackMulti, ask.Parse("rack locations with multiple pallets").Kind)
	assert.Equal(t, ask.KindDamaged, ask.Parse("damaged pallets").Kind)
	assert.Equal(t, ask.KindMissing, ask.Parse("missing pallets").Kind)
}

// TestParse_Busquedas pallet, lote, sku y fragmento de ubicación.
func TestParse_Busquedas(t *testing.T) {
	q := ask.Parse("find pallet JTL00496")
	assert.Equal(t, ask.KindPalletLookup, q.Kind)
	assert.Equal(t, "JTL00496", q.Arg)

	q = ask.Parse("pallet id JTL00496")
	assert.Equal(t, ask.KindPalletLookup, q.Kind)
	assert.Equal(t, "JTL00496", q.Arg, "la variante 'pallet id' no debe capturar la palabra 'id'")

	q = ask.Parse("lot number 0012345")
	assert.Equal(t, ask.KindLotLookup, q.Kind)
	assert.Equal(t, "0012345", q.Arg)

	q = ask.Parse("sku ABC-9")
	assert.Equal(t, ask.KindSkuLookup, q.Kind)
	assert.Equal(t, "ABC-9", q.Arg)

	q = ask.Parse("location contains A10")
	assert.Equal(t, ask.KindLocationLookup, q.Kind)
	assert.Equal(t, "A10", q.Arg)

	q = ask.Parse("JTL00496")
	assert.Equal(t, ask.KindFallback, q.Kind)
	assert.Equal(t, "JTL00496", q.Arg)
}

// TestParse_ConsultaVacia cadena vacía o solo espacios pide ayuda.
func TestParse_ConsultaVacia(t *testing.T) {
	assert.Equal(t, ask.KindHelp, ask.Parse("").Kind)
	assert.Equal(t, ask.KindHelp, ask.Parse("   ").Kind)
}
