package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

func binsFixture() *usecase.BinsUseCase {
	src := &fakeSource{
		master: []string{"A10101", "B20101", "C30102"},
		inventory: []entity.InventoryRecord{
			record("A10101", 3, 1),
			record("1110101", 8, 1),
			record("DAMAGE", 2, 1),
			record("MISSING", 1, 1),
		},
	}
	return usecase.NewBinsUseCase(usecase.NewSnapshotService(src, time.Minute))
}

// TestBinsList_Categorias cada categoría devuelve ubicaciones o filas según su tipo.
func TestBinsList_Categorias(t *testing.T) {
	uc := binsFixture()
	ctx := context.Background()

	empty, err := uc.List(ctx, usecase.BinKindEmpty)
	require.NoError(t, err)
	assert.Equal(t, []string{"B20101", "C30102"}, empty.Locations)
	assert.Equal(t, 2, empty.Total)

	emptyPartial, err := uc.List(ctx, usecase.BinKindEmptyPartial)
	require.NoError(t, err)
	assert.Equal(t, []string{"B20101"}, emptyPartial.Locations, "C30102 no termina en 01")

	partial, err := uc.List(ctx, usecase.BinKindPartial)
	require.NoError(t, err)
	require.Len(t, partial.Rows, 1)
	assert.Equal(t, "A10101", partial.Rows[0].LocationName)

	full, err := uc.List(ctx, usecase.BinKindFull)
	require.NoError(t, err)
	require.Len(t, full.Rows, 1)
	assert.Equal(t, "1110101", full.Rows[0].LocationName)

	damaged, err := uc.List(ctx, usecase.BinKindDamaged)
	require.NoError(t, err)
	assert.Equal(t, 1, damaged.Total)

	missing, err := uc.List(ctx, usecase.BinKindMissing)
	require.NoError(t, err)
	assert.Equal(t, 1, missing.Total)
}

// TestBinsList_CategoriaDesconocida una categoría inválida es error del cliente.
func TestBinsList_CategoriaDesconocida(t *testing.T) {
	uc := binsFixture()

	out, err := uc.List(context.Background(), "bogus")
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domain.ErrUnknownBinKind))
}
