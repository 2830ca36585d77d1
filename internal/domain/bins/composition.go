package bins

import (
	"strings"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
)

// Composition conteo de filas del inventario SIN filtrar por tipo de ubicación.
type Composition struct {
	Rack    int // código totalmente numérico (estantería)
	Bulk    int // letra inicial dentro de las zonas de piso
	Special int // DAMAGE, IBDAMAGE o MISSING
}

func isNumericLocation(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// Compose clasifica cada fila del inventario completo en rack, piso o especial.
// Una fila puede no caer en ninguna categoría (códigos fuera de convención).
func Compose(inventory []entity.InventoryRecord, rules BulkRules) Composition {
	var c Composition
	for _, rec := range inventory {
		name := rec.LocationName
		up := strings.ToUpper(name)
		switch {
		case up == "DAMAGE" || up == "IBDAMAGE" || up == "MISSING":
			c.Special++
		case isNumericLocation(name):
			c.Rack++
		default:
			if _, ok := rules[strings.ToUpper(rec.Zone())]; ok {
				c.Bulk++
			}
		}
	}
	return c
}
