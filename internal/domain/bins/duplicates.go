package bins

import (
	"sort"
	"strings"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// DuplicatePallet un PalletID (normalizado a mayúsculas) visto en más de una ubicación.
type DuplicatePallet struct {
	PalletID          string
	DistinctLocations int
}

// RackHotspot ubicación de rack con más de un pallet distinto estibado.
type RackHotspot struct {
	LocationName    string
	DistinctPallets int
}

// FindDuplicatePallets agrupa el inventario filtrado por PalletID (case-insensitive,
// ignorando IDs vacíos) y reporta los que aparecen en más de una ubicación distinta:
// resumen ordenado por cantidad de ubicaciones descendente y las filas de detalle.
func FindDuplicatePallets(filtered []entity.InventoryRecord) ([]DuplicatePallet, []entity.InventoryRecord) {
	locsByID := make(map[string]map[string]struct{})
	for _, rec := range filtered {
		id := strings.ToUpper(NormalizePalletID(rec.PalletID))
		if id == "" {
			continue
		}
		if locsByID[id] == nil {
			locsByID[id] = make(map[string]struct{})
		}
		locsByID[id][rec.LocationName] = struct{}{}
	}

	dupIDs := make(map[string]struct{})
	var summary []DuplicatePallet
	for id, locs := range locsByID {
		if len(locs) > 1 {
			dupIDs[id] = struct{}{}
			summary = append(summary, DuplicatePallet{PalletID: id, DistinctLocations: len(locs)})
		}
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].DistinctLocations != summary[j].DistinctLocations {
			return summary[i].DistinctLocations > summary[j].DistinctLocations
		}
		return summary[i].PalletID < summary[j].PalletID
	})

	var details []entity.InventoryRecord
	for _, rec := range filtered {
		id := strings.ToUpper(NormalizePalletID(rec.PalletID))
		if _, ok := dupIDs[id]; ok {
			details = append(details, rec)
		}
	}
	return summary, details
}

// RackHotspots ubicaciones "111" con más de un pallet distinto, ordenadas por cantidad
// de pallets descendente (el widget del tablero muestra el top N).
func RackHotspots(filtered []entity.InventoryRecord) []RackHotspot {
	palletsByLoc := make(map[string]map[string]struct{})
	for _, rec := range filtered {
		if !strings.HasPrefix(rec.LocationName, "111") {
			continue
		}
		id := strings.ToUpper(NormalizePalletID(rec.PalletID))
		if id == "" {
			continue
		}
		if palletsByLoc[rec.LocationName] == nil {
			palletsByLoc[rec.LocationName] = make(map[string]struct{})
		}
		palletsByLoc[rec.LocationName][id] = struct{}{}
	}

	var out []RackHotspot
	for loc, ids := range palletsByLoc {
		if len(ids) > 1 {
			out = append(out, RackHotspot{LocationName: loc, DistinctPallets: len(ids)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DistinctPallets != out[j].DistinctPallets {
			return out[i].DistinctPallets > out[j].DistinctPallets
		}
		return out[i].LocationName < out[j].LocationName
	})
	return out
}
