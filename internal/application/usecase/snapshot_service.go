package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
)

// SnapshotService sirve el snapshot vigente de los dos orígenes con un cache TTL.
// Un snapshot construido es inmutable y se comparte en solo-lectura entre peticiones;
// cada refresh lo reemplaza completo (nunca se muta en sitio).
type SnapshotService struct {
	source repository.SnapshotSource
	ttl    time.Duration

	mu     sync.Mutex
	cached *entity.Snapshot
}

// NewSnapshotService construye el servicio. ttl = 0 recarga en cada petición.
func NewSnapshotService(source repository.SnapshotSource, ttl time.Duration) *SnapshotService {
	return &SnapshotService{source: source, ttl: ttl}
}

// Current devuelve el snapshot cacheado si sigue vigente; si no, recarga ambos orígenes.
func (s *SnapshotService) Current(ctx context.Context) (*entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.ttl > 0 && time.Since(s.cached.FetchedAt) < s.ttl {
		return s.cached, nil
	}

	inventory, checksum, err := s.source.FetchInventory(ctx)
	if err != nil {
		return nil, err
	}
	master, err := s.source.FetchMasterLocations(ctx)
	if err != nil {
		return nil, err
	}

	s.cached = &entity.Snapshot{
		Inventory:       inventory,
		MasterLocations: master,
		SourceChecksum:  checksum,
		FetchedAt:       time.Now(),
	}
	return s.cached, nil
}

// Invalidate descarta el snapshot cacheado; la siguiente petición recarga.
func (s *SnapshotService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
