package excel

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/bins"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// Columnas lógicas del export de inventario; cualquier otra columna se ignora.
const (
	colLocation = "locationname"
	colQty      = "qty"
	colPallets  = "palletcount"
	colPalletID = "palletid"
	colSku      = "warehousesku"
	colLot      = "customerlotreference"
)

// parseInventoryRows convierte las filas crudas (encabezado incluido) en registros.
// Columnas Qty/PalletCount ausentes equivalen a una columna de ceros; celdas no
// numéricas se coaccionan a 0. Filas sin ubicación se descartan.
func parseInventoryRows(rows [][]string) []entity.InventoryRecord {
	if len(rows) == 0 {
		return nil
	}

	idx := make(map[string]int)
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx[colLocation]; !ok {
		return nil
	}

	out := make([]entity.InventoryRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		loc := strings.TrimSpace(cellAt(row, idx, colLocation))
		if loc == "" {
			continue
		}
		out = append(out, entity.InventoryRecord{
			LocationName:         loc,
			PalletID:             bins.NormalizePalletID(cellAt(row, idx, colPalletID)),
			WarehouseSku:         strings.TrimSpace(cellAt(row, idx, colSku)),
			CustomerLotReference: bins.NormalizeLotNumber(cellAt(row, idx, colLot)),
			Qty:                  coerceDecimal(cellAt(row, idx, colQty)),
			PalletCount:          coerceDecimal(cellAt(row, idx, colPallets)),
		})
	}
	return out
}

// parseMasterRows extrae la columna de ubicaciones del listado maestro: la columna cuyo
// encabezado contiene "location" (case-insensitive) o la 0, saltando la fila 0.
func parseMasterRows(rows [][]string) []string {
	if len(rows) < 2 {
		return nil
	}

	col := 0
	for i, h := range rows[0] {
		if strings.Contains(strings.ToLower(h), "location") {
			col = i
			break
		}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		loc := strings.TrimSpace(row[col])
		if loc == "" {
			continue
		}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	return out
}

// cellAt celda segura: "" si la columna no existe en el encabezado o la fila es corta.
func cellAt(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// coerceDecimal convierte una celda numérica-ish a decimal; lo malformado vale 0.
// Esta es la frontera donde se absorben los errores de coerción: de aquí en adelante
// las etapas del pipeline asumen columnas numéricas bien formadas.
func coerceDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
