package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/usecase"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

func dashboardFixture() (*usecase.DashboardUseCase, *memTrendRepo, *fakeSource) {
	src := &fakeSource{
		checksum: "md5-1",
		master:   []string{"A10101", "B20101", "C30101", "1110101"},
		inventory: []entity.InventoryRecord{
			record("A10101", 3, 1),  // parcial ocupado
			record("1110101", 8, 1), // pallet completo
			record("A102", 10, 4),   // piso zona A
			record("DAMAGE", 6, 1),
			record("MISSING", 1, 1),
		},
	}
	trendRepo := &memTrendRepo{}
	trends := usecase.NewTrendUseCase(trendRepo, time.Hour)
	uc := usecase.NewDashboardUseCase(
		usecase.NewSnapshotService(src, time.Minute), trends, bins.DefaultBulkRules())
	return uc, trendRepo, src
}

// TestDashboard_ResumenCompleto una corrida arma KPIs, zonas, composición y piso
// coherentes entre sí sobre el mismo snapshot.
func TestDashboard_ResumenCompleto(t *testing.T) {
	uc, trendRepo, _ := dashboardFixture()

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	// 4 maestras − 3 ocupadas (A10101, 1110101, A102); DAMAGE y MISSING no ocupan
	assert.Equal(t, 1, out.KPIs.EmptyBins)
	assert.Equal(t, 2, out.KPIs.EmptyBinsListed, "B20101 y C30101 están en el maestro y libres")
	assert.Equal(t, 2, out.KPIs.EmptyPartialBins)
	assert.Equal(t, 1, out.KPIs.PartialBins)
	assert.Equal(t, 1, out.KPIs.FullPalletBins)
	assert.True(t, out.KPIs.Damages.Equal(decimal.NewFromInt(6)), "daños en unidades")
	assert.Equal(t, 1, out.KPIs.Missing)

	require.Len(t, out.Zones, 1)
	assert.Equal(t, "A", out.Zones[0].Zone)
	assert.Equal(t, int64(13), out.Zones[0].QtySum)

	assert.Equal(t, 1, out.Composition.Rack)
	assert.Equal(t, 2, out.Composition.Bulk, "A10101 y A102 arrancan con letra de zona")
	assert.Equal(t, 2, out.Composition.Special)

	assert.True(t, out.Bulk.Used.Equal(decimal.NewFromInt(5)), "A10101: 1 + A102: 4")
	assert.Equal(t, "md5-1", out.Source.Checksum)

	require.Len(t, trendRepo.points, 1, "la primera corrida registra el snapshot de tendencias")
	assert.Equal(t, 1, trendRepo.points[0].EmptyBins)
}

// TestDashboard_ResumenDeZonas el agregado por zona se calcula sin armar el tablero.
func TestDashboard_ResumenDeZonas(t *testing.T) {
	uc, trendRepo, _ := dashboardFixture()

	zones, err := uc.ZonesSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, zones, 1)
	assert.Equal(t, "A", zones[0].Zone)
	assert.Equal(t, int64(13), zones[0].QtySum)
	assert.Empty(t, trendRepo.points, "el resumen por zona no toca el historial")
}

// TestDashboard_RegistrarSnapshot el disparo manual persiste un punto completo
// aunque el intervalo no haya vencido.
func TestDashboard_RegistrarSnapshot(t *testing.T) {
	uc, trendRepo, _ := dashboardFixture()

	trendRepo.points = append(trendRepo.points, repository.TrendPoint{
		Timestamp: time.Now().Add(-time.Minute),
		EmptyBins: 9,
	})

	require.NoError(t, uc.RecordSnapshot(context.Background()))

	require.Len(t, trendRepo.points, 2, "Record ignora el intervalo configurado")
	got := trendRepo.points[1]
	assert.Equal(t, 1, got.EmptyBins)
	assert.Equal(t, 1, got.RackCount)
	assert.True(t, got.BulkUsed.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "md5-1", got.SourceChecksum)
}

// TestDashboard_DeltasContraHistorial con historial previo, los deltas comparan
// contra el último punto y contra el de hace 24 horas o más.
func TestDashboard_DeltasContraHistorial(t *testing.T) {
	uc, trendRepo, _ := dashboardFixture()

	yesterday := repository.TrendPoint{
		Timestamp: time.Now().Add(-25 * time.Hour),
		EmptyBins: 10, EmptyPartialBins: 5, PartialBins: 3,
		FullPalletBins: 2, Damages: decimal.NewFromInt(1), Missing: 0,
	}
	recent := repository.TrendPoint{
		Timestamp: time.Now().Add(-30 * time.Minute),
		EmptyBins: 4, EmptyPartialBins: 2, PartialBins: 1,
		FullPalletBins: 1, Damages: decimal.NewFromInt(6), Missing: 1,
	}
	trendRepo.points = []repository.TrendPoint{yesterday, recent}

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	d, ok := out.Deltas["empty_bins"]
	require.True(t, ok)
	require.NotNil(t, d.VsLast)
	assert.Equal(t, -3, *d.VsLast, "1 actual − 4 del último punto")
	require.NotNil(t, d.Vs24h)
	assert.Equal(t, -9, *d.Vs24h, "1 actual − 10 de hace 25 horas")

	assert.Len(t, trendRepo.points, 2,
		"el último punto tiene 30 minutos y el intervalo es de una hora: no se registra otro")
}

// TestDashboard_PrimeraCorridaSinDeltas sin historial, el mapa de deltas sale vacío.
func TestDashboard_PrimeraCorridaSinDeltas(t *testing.T) {
	uc, _, _ := dashboardFixture()

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.Deltas)
}

// TestDashboard_ErrorDelOrigen el fallo de lectura sube como error, sin resumen
// parcial.
func TestDashboard_ErrorDelOrigen(t *testing.T) {
	src := &fakeSource{err: assert.AnError}
	trends := usecase.NewTrendUseCase(&memTrendRepo{}, time.Hour)
	uc := usecase.NewDashboardUseCase(
		usecase.NewSnapshotService(src, 0), trends, bins.DefaultBulkRules())

	out, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
	assert.Nil(t, out)
}
