package repository

import (
	"context"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// SnapshotSource puerto del loader de datos: obtiene y parsea los dos exports xlsx.
// La implementación vive en infrastructure/excel.
type SnapshotSource interface {
	// FetchInventory descarga y parsea el export de inventario en mano.
	// Devuelve además el checksum MD5 del payload (fingerprint para tendencias).
	FetchInventory(ctx context.Context) ([]entity.InventoryRecord, string, error)

	// FetchMasterLocations descarga el listado maestro de ubicaciones, ya
	// deduplicado y sin la fila de encabezado.
	FetchMasterLocations(ctx context.Context) ([]string, error)
}
