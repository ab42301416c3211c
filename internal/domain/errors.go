package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrEmptyCriterion   = errors.New("criterio de búsqueda vacío")
	ErrNoCloseMatch     = errors.New("sin coincidencias cercanas")
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrEmptyRecordSet   = errors.New("conjunto de registros vacío")
)
