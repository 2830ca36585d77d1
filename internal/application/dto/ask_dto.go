package dto

// AskRequest cuerpo de POST /api/ask.
type AskRequest struct {
	Query string `json:"query"`
}

// AskResponse resultado de la consulta en lenguaje natural: una explicación de cómo se
// entendió la pregunta y las filas encontradas. Kind indica la forma de Rows
// (inventory, bulk, duplicates).
type AskResponse struct {
	Explanation string `json:"explanation"`
	Kind        string `json:"kind"`
	Rows        any    `json:"rows"`
}
