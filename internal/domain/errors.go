package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateKey      = errors.New("el código ya existe")
	ErrDuplicateMaterial = errors.New("el material ya existe")
	ErrUnknownMaterial   = errors.New("el código no existe, créelo primero")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("necesita rol Key User para esta acción")

	// ErrInsufficientStock no se devuelve como error del motor: una salida con stock
	// insuficiente se aplica recortada y se informa en el resultado. Se expone para
	// que los adaptadores puedan traducir la condición a un mensaje.
	ErrInsufficientStock = errors.New("stock insuficiente: se registra pendiente")
)
