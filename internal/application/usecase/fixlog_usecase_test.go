package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

func batchRequest(action string) dto.FixBatchRequest {
	return dto.FixBatchRequest{
		Action: action,
		Note:   "revisado en piso",
		Reason: "conteo físico",
		Rows: []dto.FixActionRequest{
			{
				DiscrepancyType: "partial",
				LocationName:    "A10101",
				PalletID:        "JTL00496",
				WarehouseSku:    "SKU-1",
				Qty:             decimal.NewFromInt(7),
				Issue:           "Qty too high for partial bin",
			},
			{
				DiscrepancyType: "bulk",
				LocationName:    "B201",
				Qty:             decimal.NewFromInt(12),
				Issue:           "Exceeds max allowed: 5 > 4",
			},
		},
	}
}

// TestFixLog_LogBatch todas las filas del lote comparten batch id y acción; el
// RowKey identifica cada fila por sus campos visibles más el tipo.
func TestFixLog_LogBatch(t *testing.T) {
	repo := &memFixLogRepo{}
	uc := usecase.NewFixLogUseCase(repo)

	out, err := uc.LogBatch(context.Background(), batchRequest("resolve"))
	require.NoError(t, err)
	assert.Equal(t, 2, out.Logged)
	_, err = uuid.Parse(out.BatchID)
	assert.NoError(t, err, "el batch id debe ser un UUID")

	require.Len(t, repo.actions, 2)
	assert.Equal(t, "RESOLVE", repo.actions[0].Action, "la acción se normaliza a mayúsculas")
	assert.Equal(t, out.BatchID, repo.actions[0].BatchID)
	assert.Equal(t, out.BatchID, repo.actions[1].BatchID)

	key := strings.Split(repo.actions[0].RowKey, "\n")
	require.Len(t, key, 6)
	assert.Equal(t, "A10101", key[0])
	assert.Equal(t, "JTL00496", key[1])
	assert.Equal(t, "partial", key[5])
}

// TestFixLog_AccionInvalida solo RESOLVE y DISMISS son válidas.
func TestFixLog_AccionInvalida(t *testing.T) {
	uc := usecase.NewFixLogUseCase(&memFixLogRepo{})

	_, err := uc.LogBatch(context.Background(), batchRequest("DELETE"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// TestFixLog_LoteVacio un lote sin filas es error del cliente, no un no-op.
func TestFixLog_LoteVacio(t *testing.T) {
	uc := usecase.NewFixLogUseCase(&memFixLogRepo{})

	req := batchRequest("RESOLVE")
	req.Rows = nil
	_, err := uc.LogBatch(context.Background(), req)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// TestFixLog_ListMasRecientePrimero la lectura sale ordenada por timestamp
// descendente sin importar el orden del repositorio.
func TestFixLog_ListMasRecientePrimero(t *testing.T) {
	repo := &memFixLogRepo{}
	uc := usecase.NewFixLogUseCase(repo)

	first := batchRequest("RESOLVE")
	first.Rows = first.Rows[:1] // A10101
	_, err := uc.LogBatch(context.Background(), first)
	require.NoError(t, err)

	second := batchRequest("DISMISS")
	second.Rows = second.Rows[1:] // B201
	_, err = uc.LogBatch(context.Background(), second)
	require.NoError(t, err)

	// forzar timestamps bien separados entre los dos lotes
	repo.actions[0].Timestamp = repo.actions[1].Timestamp.Add(-time.Hour)

	out, err := uc.List(context.Background(), repository.FixLogFilter{})
	require.NoError(t, err)
	require.Len(t, out.Actions, 2)
	assert.Equal(t, "B201", out.Actions[0].LocationName, "el lote más nuevo sale primero")
	assert.Equal(t, "A10101", out.Actions[1].LocationName)
}
