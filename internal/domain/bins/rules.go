package bins

// BulkRules capacidad máxima de pallets por zona de piso (letra inicial de la ubicación).
type BulkRules map[string]int

// DefaultBulkRules reglas operativas del almacén: zona A admite 5 pallets, B..I admiten 4.
func DefaultBulkRules() BulkRules {
	return BulkRules{
		"A": 5, "B": 4, "C": 4, "D": 4, "E": 4, "F": 4, "G": 4, "H": 4, "I": 4,
	}
}
