package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrWorkflowNotFound = errors.New("workflow does not exist")
	ErrWorkflowExists   = errors.New("workflow already exists")
	ErrUnknownTopping   = errors.New("unknown topping")
)
