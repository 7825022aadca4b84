package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Cada operación del catálogo
// termina en uno de estos sentinels; las capas externas los mapean a códigos
// HTTP con errors.Is.
var (
	ErrValidation = errors.New("entrada o fila inválida")
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrDatabase   = errors.New("error de base de datos")

	// ErrDuplicate violación de unicidad reportada por el store. El caso de
	// uso de creación la reintenta con un ID fresco; si persiste se expone
	// como ErrDatabase.
	ErrDuplicate = errors.New("recurso duplicado")

	// ErrIDGenerationExhausted especialización de ErrDatabase: el generador de
	// IDs agotó sus intentos por colisiones consecutivas.
	ErrIDGenerationExhausted = fmt.Errorf("%w: generación de ID agotada tras colisiones consecutivas", ErrDatabase)
)

// Validationf construye un error de validación con mensaje legible.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
