package entity

import "time"

// Snapshot captura inmutable de los dos orígenes para una corrida del pipeline.
// Ninguna etapa posterior muta estos slices; toda tabla derivada es una proyección nueva.
type Snapshot struct {
	Inventory       []InventoryRecord
	MasterLocations []string // deduplicado, sin la fila de encabezado
	SourceChecksum  string   // MD5 del xlsx de inventario (de-dup de snapshots de tendencia)
	FetchedAt       time.Time
}
