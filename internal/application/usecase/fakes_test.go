package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

// fakeSource origen en memoria que cuenta las lecturas, para verificar el cache TTL.
type fakeSource struct {
	inventory []entity.InventoryRecord
	master    []string
	checksum  string
	err       error
	calls     int
}

func (f *fakeSource) FetchInventory(context.Context) ([]entity.InventoryRecord, string, error) {
	f.calls++
	if f.err != nil {
		return nil, "", f.err
	}
	return f.inventory, f.checksum, nil
}

func (f *fakeSource) FetchMasterLocations(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.master, nil
}

// memTrendRepo historial de tendencias en memoria.
type memTrendRepo struct {
	points []repository.TrendPoint
}

func (m *memTrendRepo) Append(_ context.Context, p repository.TrendPoint) error {
	m.points = append(m.points, p)
	return nil
}

func (m *memTrendRepo) List(context.Context) ([]repository.TrendPoint, error) {
	return append([]repository.TrendPoint{}, m.points...), nil
}

func (m *memTrendRepo) Last(context.Context) (*repository.TrendPoint, error) {
	if len(m.points) == 0 {
		return nil, nil
	}
	last := m.points[len(m.points)-1]
	return &last, nil
}

// memFixLogRepo bitácora en memoria.
type memFixLogRepo struct {
	actions []repository.FixAction
}

func (m *memFixLogRepo) Append(_ context.Context, actions []repository.FixAction) error {
	m.actions = append(m.actions, actions...)
	return nil
}

func (m *memFixLogRepo) List(_ context.Context, _ repository.FixLogFilter) ([]repository.FixAction, error) {
	return append([]repository.FixAction{}, m.actions...), nil
}

func record(loc string, qty, pallets int64) entity.InventoryRecord {
	return entity.InventoryRecord{
		LocationName: loc,
		Qty:          decimal.NewFromInt(qty),
		PalletCount:  decimal.NewFromInt(pallets),
	}
}
