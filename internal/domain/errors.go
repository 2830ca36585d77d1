package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrSourceFetch    = errors.New("no se pudo obtener el origen de datos")
	ErrSheetFormat    = errors.New("formato de hoja inesperado")
	ErrEmptyQuery     = errors.New("consulta vacía")
	ErrStoreWrite     = errors.New("no se pudo escribir el registro")
	ErrUnknownBinKind = errors.New("categoría de ubicación desconocida")
)
