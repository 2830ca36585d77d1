package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

// FixLogUseCase registra y consulta las acciones de corrección sobre discrepancias.
type FixLogUseCase struct {
	repo repository.FixLogRepository
}

// NewFixLogUseCase construye el caso de uso.
func NewFixLogUseCase(repo repository.FixLogRepository) *FixLogUseCase {
	return &FixLogUseCase{repo: repo}
}

// LogBatch registra un lote de filas bajo un mismo batch id. La acción debe ser
// RESOLVE o DISMISS y el lote no puede venir vacío.
func (uc *FixLogUseCase) LogBatch(ctx context.Context, req dto.FixBatchRequest) (*dto.FixBatchResponse, error) {
	action := strings.ToUpper(strings.TrimSpace(req.Action))
	if action != "RESOLVE" && action != "DISMISS" {
		return nil, domain.ErrInvalidInput
	}
	if len(req.Rows) == 0 {
		return nil, domain.ErrInvalidInput
	}

	batchID := uuid.New().String()
	now := time.Now()
	actions := make([]repository.FixAction, 0, len(req.Rows))
	for _, row := range req.Rows {
		rec := entity.InventoryRecord{
			LocationName:         row.LocationName,
			PalletID:             row.PalletID,
			WarehouseSku:         row.WarehouseSku,
			CustomerLotReference: row.CustomerLotReference,
			Qty:                  row.Qty,
		}
		actions = append(actions, repository.FixAction{
			Timestamp:       now,
			Action:          action,
			BatchID:         batchID,
			DiscrepancyType: row.DiscrepancyType,
			RowKey:          rowKey(rec, row.DiscrepancyType),
			Record:          rec,
			Issue:           row.Issue,
			Note:            req.Note,
			SelectedLot:     req.SelectedLot,
			Reason:          req.Reason,
		})
	}

	if err := uc.repo.Append(ctx, actions); err != nil {
		return nil, err
	}
	return &dto.FixBatchResponse{BatchID: batchID, Logged: len(actions)}, nil
}

// List lee el fix log aplicando filtros, más reciente primero.
func (uc *FixLogUseCase) List(ctx context.Context, filter repository.FixLogFilter) (*dto.FixLogDTO, error) {
	actions, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i].Timestamp.After(actions[j].Timestamp) })

	out := make([]dto.FixActionDTO, 0, len(actions))
	for _, a := range actions {
		out = append(out, dto.FixActionDTO{
			Timestamp:            a.Timestamp.Format(time.RFC3339),
			Action:               a.Action,
			BatchID:              a.BatchID,
			DiscrepancyType:      a.DiscrepancyType,
			LocationName:         a.Record.LocationName,
			PalletID:             a.Record.PalletID,
			WarehouseSku:         a.Record.WarehouseSku,
			CustomerLotReference: a.Record.CustomerLotReference,
			Qty:                  a.Record.Qty,
			Issue:                a.Issue,
			Note:                 a.Note,
			SelectedLot:          a.SelectedLot,
			Reason:               a.Reason,
		})
	}
	return &dto.FixLogDTO{Actions: out}, nil
}

// rowKey identifica una fila de discrepancia de forma estable entre corridas: los
// campos visibles de la fila más el tipo de discrepancia.
func rowKey(rec entity.InventoryRecord, discrepancyType string) string {
	return strings.Join([]string{
		rec.LocationName, rec.PalletID, rec.WarehouseSku,
		rec.CustomerLotReference, rec.Qty.String(), discrepancyType,
	}, "\n")
}
