package usecase

import (
	"context"
	"time"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/application/dto"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

// TrendUseCase administra el historial de snapshots de KPIs: registro manual,
// auto-registro por intervalo y cálculo de deltas para el tablero.
type TrendUseCase struct {
	repo     repository.TrendRepository
	interval time.Duration
}

// NewTrendUseCase construye el caso de uso. interval controla el auto-snapshot.
func NewTrendUseCase(repo repository.TrendRepository, interval time.Duration) *TrendUseCase {
	return &TrendUseCase{repo: repo, interval: interval}
}

// Record persiste un snapshot ahora, sin mirar el intervalo (disparo manual).
func (uc *TrendUseCase) Record(ctx context.Context, point repository.TrendPoint) error {
	return uc.repo.Append(ctx, point)
}

// RecordIfStale persiste el snapshot solo si no hay ninguno o el último quedó más
// viejo que el intervalo configurado.
func (uc *TrendUseCase) RecordIfStale(ctx context.Context, point repository.TrendPoint) error {
	last, err := uc.repo.Last(ctx)
	if err != nil {
		return err
	}
	if last != nil && point.Timestamp.Sub(last.Timestamp) < uc.interval {
		return nil
	}
	return uc.repo.Append(ctx, point)
}

// History devuelve el historial completo en orden cronológico.
func (uc *TrendUseCase) History(ctx context.Context) (*dto.TrendHistoryDTO, error) {
	points, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrendPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.TrendPointDTO{
			Timestamp:        p.Timestamp.Format(time.RFC3339),
			EmptyBins:        p.EmptyBins,
			EmptyPartialBins: p.EmptyPartialBins,
			PartialBins:      p.PartialBins,
			FullPalletBins:   p.FullPalletBins,
			Damages:          p.Damages,
			Missing:          p.Missing,
			RackCount:        p.RackCount,
			BulkCount:        p.BulkCount,
			SpecialCount:     p.SpecialCount,
			BulkUsed:         p.BulkUsed,
			BulkEmpty:        p.BulkEmpty,
			SourceChecksum:   p.SourceChecksum,
		})
	}
	return &dto.TrendHistoryDTO{Points: out}, nil
}

// Deltas compara los KPIs actuales contra el último snapshot y contra el último de hace
// al menos 24 horas. Un mapa vacío significa que aún no hay historial.
func (uc *TrendUseCase) Deltas(ctx context.Context, now repository.TrendPoint) (map[string]dto.KPIDelta, error) {
	points, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	deltas := make(map[string]dto.KPIDelta)
	if len(points) == 0 {
		return deltas, nil
	}

	last := points[len(points)-1]
	var dayAgo *repository.TrendPoint
	cutoff := now.Timestamp.Add(-24 * time.Hour)
	for i := len(points) - 1; i >= 0; i-- {
		if !points[i].Timestamp.After(cutoff) {
			p := points[i]
			dayAgo = &p
			break
		}
	}

	set := func(name string, current int, lastVal int, dayVal *int) {
		d := dto.KPIDelta{}
		vsLast := current - lastVal
		d.VsLast = &vsLast
		if dayVal != nil {
			vs24 := current - *dayVal
			d.Vs24h = &vs24
		}
		deltas[name] = d
	}

	pick := func(p repository.TrendPoint) (int, int, int, int, int, int) {
		return p.EmptyBins, p.EmptyPartialBins, p.PartialBins, p.FullPalletBins,
			int(p.Damages.IntPart()), p.Missing
	}

	le, lep, lp, lf, ld, lm := pick(last)
	var de, dep, dp, df, dd, dm *int
	if dayAgo != nil {
		e, ep, p, f, d, m := pick(*dayAgo)
		de, dep, dp, df, dd, dm = &e, &ep, &p, &f, &d, &m
	}

	set("empty_bins", now.EmptyBins, le, de)
	set("empty_partial_bins", now.EmptyPartialBins, lep, dep)
	set("partial_bins", now.PartialBins, lp, dp)
	set("full_pallet_bins", now.FullPalletBins, lf, df)
	set("damages", int(now.Damages.IntPart()), ld, dd)
	set("missing", now.Missing, lm, dm)
	return deltas, nil
}
