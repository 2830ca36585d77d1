package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/ask"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// AskUseCase responde consultas en lenguaje natural sobre el snapshot vigente.
type AskUseCase struct {
	snapshots *SnapshotService
	rules     bins.BulkRules
}

// NewAskUseCase construye el caso de uso.
func NewAskUseCase(snapshots *SnapshotService, rules bins.BulkRules) *AskUseCase {
	return &AskUseCase{snapshots: snapshots, rules: rules}
}

// Answer interpreta la consulta y arma la respuesta. Una consulta vacía es un
// error del cliente; una consulta sin coincidencias devuelve filas vacías, no error.
func (uc *AskUseCase) Answer(ctx context.Context, query string) (*dto.AskResponse, error) {
	q := ask.Parse(query)
	if q.Kind == ask.KindHelp {
		return nil, domain.ErrEmptyQuery
	}

	snap, err := uc.snapshots.Current(ctx)
	if err != nil {
		return nil, err
	}
	cls := bins.Classify(snap.Inventory, snap.MasterLocations)

	switch q.Kind {
	case ask.KindBulkPallets:
		return uc.answerBulkPallets(cls, q), nil
	case ask.KindBulkEmptySlots:
		return uc.answerBulkEmptySlots(cls, q), nil
	case ask.KindDuplicates, ask.KindDuplicateByID:
		return uc.answerDuplicates(cls, q), nil
	case ask.KindPartialBins:
		return uc.answerPartial(cls, q), nil
	case ask.KindFullBins:
		return respond(q, "Full pallet bins.", dto.FromRecords(cls.FullPalletBins)), nil
	case ask.KindRackMulti:
		return uc.answerRackMulti(cls, q), nil
	case ask.KindDamaged:
		return respond(q, "Damaged pallets.", dto.FromRecords(cls.Damaged)), nil
	case ask.KindMissing:
		return respond(q, "Missing pallets.", dto.FromRecords(cls.Missing)), nil
	case ask.KindPalletLookup:
		pid := bins.NormalizePalletID(q.Arg)
		rows := filterRecords(cls.FilteredInventory, func(r entity.InventoryRecord) bool {
			return strings.EqualFold(strings.TrimSpace(r.PalletID), strings.TrimSpace(pid))
		})
		return respond(q, fmt.Sprintf("Where is pallet %q?", pid), dto.FromRecords(rows)), nil
	case ask.KindLotLookup:
		lot := bins.NormalizeLotNumber(q.Arg)
		rows := filterRecords(cls.FilteredInventory, func(r entity.InventoryRecord) bool {
			return containsFold(r.CustomerLotReference, lot)
		})
		return respond(q, fmt.Sprintf("Rows for LOT number %q.", lot), dto.FromRecords(rows)), nil
	case ask.KindSkuLookup:
		rows := filterRecords(cls.FilteredInventory, func(r entity.InventoryRecord) bool {
			return containsFold(r.WarehouseSku, q.Arg)
		})
		return respond(q, fmt.Sprintf("Rows for SKU containing %q.", q.Arg), dto.FromRecords(rows)), nil
	case ask.KindLocationLookup:
		rows := filterRecords(cls.FilteredInventory, func(r entity.InventoryRecord) bool {
			return containsFold(r.LocationName, q.Arg)
		})
		return respond(q, fmt.Sprintf("Rows where location contains %q.", q.Arg), dto.FromRecords(rows)), nil
	default:
		return uc.answerFallback(cls, q), nil
	}
}

func (uc *AskUseCase) answerBulkPallets(cls bins.Classification, q ask.Query) *dto.AskResponse {
	all, _ := bins.BuildBulkViews(cls.FilteredInventory, uc.rules)
	rows := make([]bins.BulkLocation, 0, len(all))
	for _, loc := range all {
		if q.Cmp.Matches(int(loc.PalletCount.IntPart())) {
			rows = append(rows, loc)
		}
	}
	return respond(q, explainCmp("Bulk locations with pallet count", q.Cmp, "All bulk locations."),
		dto.FromBulkLocations(rows))
}

func (uc *AskUseCase) answerBulkEmptySlots(cls bins.Classification, q ask.Query) *dto.AskResponse {
	all, withSpace := bins.BuildBulkViews(cls.FilteredInventory, uc.rules)
	// Sin comparador, la pregunta implícita es "con espacio": al menos un hueco.
	if q.Cmp.Op == ask.OpNone {
		return respond(q, "Bulk locations with at least 1 empty slot.", dto.FromBulkLocations(withSpace))
	}
	rows := make([]bins.BulkLocation, 0, len(all))
	for _, loc := range all {
		if q.Cmp.Matches(int(loc.EmptySlots.IntPart())) {
			rows = append(rows, loc)
		}
	}
	return respond(q, explainCmp("Bulk locations with empty slots", q.Cmp, "All bulk locations."),
		dto.FromBulkLocations(rows))
}

func (uc *AskUseCase) answerDuplicates(cls bins.Classification, q ask.Query) *dto.AskResponse {
	summary, details := bins.FindDuplicatePallets(cls.FilteredInventory)
	if q.Kind == ask.KindDuplicateByID {
		rows := filterRecords(details, func(r entity.InventoryRecord) bool {
			return strings.ToUpper(strings.TrimSpace(r.PalletID)) == q.Arg
		})
		return respond(q, fmt.Sprintf("Duplicate detail for pallet id %s.", q.Arg), dto.FromRecords(rows))
	}
	out := make([]dto.DuplicatePalletDTO, 0, len(summary))
	for _, d := range summary {
		out = append(out, dto.DuplicatePalletDTO{PalletID: d.PalletID, DistinctLocations: d.DistinctLocations})
	}
	return respond(q, "Duplicate pallet summary (pallet id with distinct location count).", out)
}

func (uc *AskUseCase) answerPartial(cls bins.Classification, q ask.Query) *dto.AskResponse {
	rows := cls.PartialBins
	explanation := "All partial bins."
	if q.Arg != "" {
		rows = filterRecords(rows, func(r entity.InventoryRecord) bool {
			return strings.HasPrefix(r.LocationName, q.Arg)
		})
		explanation = fmt.Sprintf("Partial bins in aisle %s.", q.Arg)
	}
	return respond(q, explanation, dto.FromRecords(rows))
}

func (uc *AskUseCase) answerRackMulti(cls bins.Classification, q ask.Query) *dto.AskResponse {
	hotspots := bins.RackHotspots(cls.FilteredInventory)
	hot := make(map[string]struct{}, len(hotspots))
	for _, h := range hotspots {
		hot[h.LocationName] = struct{}{}
	}
	rows := filterRecords(cls.FilteredInventory, func(r entity.InventoryRecord) bool {
		_, ok := hot[r.LocationName]
		return ok
	})
	if len(rows) == 0 {
		return respond(q, "No rack locations with multiple pallets.", dto.FromRecords(nil))
	}
	return respond(q, "Rack locations with multiple pallets (detail).", dto.FromRecords(rows))
}

func (uc *AskUseCase) answerFallback(cls bins.Classification, q ask.Query) *dto.AskResponse {
	lot := bins.NormalizeLotNumber(q.Arg)
	rows := filterRecords(cls.FilteredInventory, func(r entity.InventoryRecord) bool {
		if containsFold(r.LocationName, q.Arg) ||
			containsFold(r.PalletID, q.Arg) ||
			containsFold(r.WarehouseSku, q.Arg) {
			return true
		}
		return lot != "" && containsFold(r.CustomerLotReference, lot)
	})
	return respond(q, fmt.Sprintf("Search across location, pallet id, SKU and LOT for %q.", q.Arg),
		dto.FromRecords(rows))
}

func respond(q ask.Query, explanation string, rows any) *dto.AskResponse {
	return &dto.AskResponse{Explanation: explanation, Kind: string(q.Kind), Rows: rows}
}

func explainCmp(prefix string, cmp ask.Comparator, fallback string) string {
	switch cmp.Op {
	case ask.OpBetween:
		return fmt.Sprintf("%s between %d and %d.", prefix, cmp.Low, cmp.High)
	case ask.OpLE:
		return fmt.Sprintf("%s <= %d.", prefix, cmp.Low)
	case ask.OpGE:
		return fmt.Sprintf("%s >= %d.", prefix, cmp.Low)
	case ask.OpEQ:
		return fmt.Sprintf("%s == %d.", prefix, cmp.Low)
	default:
		return fallback
	}
}

func filterRecords(in []entity.InventoryRecord, keep func(entity.InventoryRecord) bool) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, 0, len(in))
	for _, r := range in {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
