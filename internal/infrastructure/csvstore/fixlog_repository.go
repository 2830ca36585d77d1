package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

var _ repository.FixLogRepository = (*FixLogRepository)(nil)

const fixLogFile = "resolved_discrepancies.csv"

// Formato de timestamp heredado del sistema original (12 horas con AM/PM).
const timestampLayout = "2006-01-02 03:04:05 PM"

var fixLogHeader = []string{
	"Timestamp", "Action", "BatchId", "DiscrepancyType", "RowKey",
	"LocationName", "PalletId", "WarehouseSku", "CustomerLotReference",
	"Qty", "Issue", "Note", "SelectedLOT", "Reason",
}

// FixLogRepository bitácora CSV append-only de acciones de corrección.
// Las escrituras se serializan con un mutex; cada Append es un open/flush/close completo
// para que el archivo quede siempre legible por otras herramientas.
type FixLogRepository struct {
	mu   sync.Mutex
	path string
}

// NewFixLogRepository crea el repositorio dentro de dir (se crea si no existe).
func NewFixLogRepository(dir string) (*FixLogRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	return &FixLogRepository{path: filepath.Join(dir, fixLogFile)}, nil
}

// Append agrega las acciones al final del archivo, escribiendo el encabezado si es nuevo.
func (r *FixLogRepository) Append(_ context.Context, actions []repository.FixAction) error {
	if len(actions) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(fixLogHeader); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
		}
	}
	for _, a := range actions {
		row := []string{
			a.Timestamp.Format(timestampLayout),
			a.Action, a.BatchID, a.DiscrepancyType, a.RowKey,
			a.Record.LocationName, a.Record.PalletID, a.Record.WarehouseSku,
			a.Record.CustomerLotReference, a.Record.Qty.String(),
			a.Issue, a.Note, a.SelectedLot, a.Reason,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	return nil
}

// List lee el archivo completo aplicando los filtros; si no existe, lista vacía.
func (r *FixLogRepository) List(_ context.Context, filter repository.FixLogFilter) ([]repository.FixAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // tolerar archivos viejos con menos columnas

	var out []repository.FixAction
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first {
			first = false
			continue // encabezado
		}
		a := decodeFixRow(row)
		if matchesFilter(a, filter) {
			out = append(out, a)
		}
	}
	return out, nil
}

func decodeFixRow(row []string) repository.FixAction {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	ts, _ := time.ParseInLocation(timestampLayout, get(0), time.Local)
	qty, err := decimal.NewFromString(get(9))
	if err != nil {
		qty = decimal.Zero
	}
	return repository.FixAction{
		Timestamp:       ts,
		Action:          get(1),
		BatchID:         get(2),
		DiscrepancyType: get(3),
		RowKey:          get(4),
		Record: entity.InventoryRecord{
			LocationName:         get(5),
			PalletID:             get(6),
			WarehouseSku:         get(7),
			CustomerLotReference: get(8),
			Qty:                  qty,
		},
		Issue:       get(10),
		Note:        get(11),
		SelectedLot: get(12),
		Reason:      get(13),
	}
}

func matchesFilter(a repository.FixAction, f repository.FixLogFilter) bool {
	if f.DiscrepancyType != "" && a.DiscrepancyType != f.DiscrepancyType {
		return false
	}
	if !f.From.IsZero() && a.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && a.Timestamp.After(f.To) {
		return false
	}
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		haystack := strings.ToLower(strings.Join([]string{
			a.Record.LocationName, a.Record.PalletID, a.Record.WarehouseSku,
			a.Record.CustomerLotReference, a.Issue, a.Note, a.BatchID,
		}, "\n"))
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
