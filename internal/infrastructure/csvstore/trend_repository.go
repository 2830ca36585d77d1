package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

var _ repository.TrendRepository = (*TrendRepository)(nil)

const trendFile = "trend_history.csv"

var trendHeader = []string{
	"Timestamp",
	"EmptyBins", "EmptyPartialBins", "PartialBins", "FullPalletBins",
	"Damages", "Missing",
	"RackCount", "BulkCount", "SpecialCount",
	"BulkUsed", "BulkEmpty",
	"FileMD5",
}

// TrendRepository historial CSV append-only de snapshots de KPIs.
type TrendRepository struct {
	mu   sync.Mutex
	path string
}

// NewTrendRepository crea el repositorio dentro de dir (se crea si no existe).
func NewTrendRepository(dir string) (*TrendRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	return &TrendRepository{path: filepath.Join(dir, trendFile)}, nil
}

// Append agrega un snapshot al final del historial.
func (r *TrendRepository) Append(_ context.Context, p repository.TrendPoint) error {
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
		if err := w.Write(trendHeader); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
		}
	}
	row := []string{
		p.Timestamp.Format(timestampLayout),
		strconv.Itoa(p.EmptyBins), strconv.Itoa(p.EmptyPartialBins),
		strconv.Itoa(p.PartialBins), strconv.Itoa(p.FullPalletBins),
		p.Damages.String(), strconv.Itoa(p.Missing),
		strconv.Itoa(p.RackCount), strconv.Itoa(p.BulkCount), strconv.Itoa(p.SpecialCount),
		p.BulkUsed.String(), p.BulkEmpty.String(),
		p.SourceChecksum,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}
	return nil
}

// List devuelve el historial completo en orden de archivo (cronológico).
func (r *TrendRepository) List(_ context.Context) ([]repository.TrendPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}

// Last devuelve el snapshot más reciente, o nil si el historial está vacío.
func (r *TrendRepository) Last(_ context.Context) (*repository.TrendPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	points, err := r.readAll()
	if err != nil || len(points) == 0 {
		return nil, err
	}
	last := points[len(points)-1]
	return &last, nil
}

func (r *TrendRepository) readAll() ([]repository.TrendPoint, error) {
	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	var out []repository.TrendPoint
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
			continue
		}
		out = append(out, decodeTrendRow(row))
	}
	return out, nil
}

func decodeTrendRow(row []string) repository.TrendPoint {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	atoi := func(i int) int {
		n, _ := strconv.Atoi(get(i))
		return n
	}
	dec := func(i int) decimal.Decimal {
		d, err := decimal.NewFromString(get(i))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	ts, _ := time.ParseInLocation(timestampLayout, get(0), time.Local)
	return repository.TrendPoint{
		Timestamp:        ts,
		EmptyBins:        atoi(1),
		EmptyPartialBins: atoi(2),
		PartialBins:      atoi(3),
		FullPalletBins:   atoi(4),
		Damages:          dec(5),
		Missing:          atoi(6),
		RackCount:        atoi(7),
		BulkCount:        atoi(8),
		SpecialCount:     atoi(9),
		BulkUsed:         dec(10),
		BulkEmpty:        dec(11),
		SourceChecksum:   get(12),
	}
}
