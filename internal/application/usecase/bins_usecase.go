package usecase

import (
	"context"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
)

// BinKind categorías consultables por GET /api/bins/:kind.
const (
	BinKindEmpty        = "empty"
	BinKindEmptyPartial = "empty-partial"
	BinKindPartial      = "partial"
	BinKindFull         = "full"
	BinKindDamaged      = "damaged"
	BinKindMissing      = "missing"
)

// BinListDTO listado de una categoría: ubicaciones (categorías vacías) o filas de
// inventario (categorías ocupadas); solo uno de los dos campos viene poblado.
type BinListDTO struct {
	Kind      string                `json:"kind"`
	Locations []string              `json:"locations,omitempty"`
	Rows      []dto.InventoryRowDTO `json:"rows,omitempty"`
	Total     int                   `json:"total"`
}

// BinsUseCase lista las categorías de bins calculadas por el clasificador.
type BinsUseCase struct {
	snapshots *SnapshotService
}

// NewBinsUseCase construye el caso de uso.
func NewBinsUseCase(snapshots *SnapshotService) *BinsUseCase {
	return &BinsUseCase{snapshots: snapshots}
}

// List devuelve la categoría pedida. Las categorías "empty" salen como ubicaciones; el
// resto como filas de inventario.
func (uc *BinsUseCase) List(ctx context.Context, kind string) (*BinListDTO, error) {
	snap, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	cls := bins.Classify(snap.Inventory, snap.MasterLocations)

	out := &BinListDTO{Kind: kind}
	switch kind {
	case BinKindEmpty:
		out.Locations = append([]string{}, cls.EmptyBins...)
	case BinKindEmptyPartial:
		out.Locations = append([]string{}, cls.EmptyPartialBins...)
	case BinKindPartial:
		out.Rows = dto.FromRecords(cls.PartialBins)
	case BinKindFull:
		out.Rows = dto.FromRecords(cls.FullPalletBins)
	case BinKindDamaged:
		out.Rows = dto.FromRecords(cls.Damaged)
	case BinKindMissing:
		out.Rows = dto.FromRecords(cls.Missing)
	default:
		return nil, domain.ErrUnknownBinKind
	}

	if out.Locations != nil {
		out.Total = len(out.Locations)
	} else {
		out.Total = len(out.Rows)
	}
	return out, nil
}
