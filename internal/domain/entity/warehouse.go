package entity

import "time"

// Warehouse representa un almacén (ej. "101 Productos de Insumo"). Clave natural: Code.
type Warehouse struct {
	ID        string
	Code      string
	Name      string
	CreatedAt time.Time
}

// DefaultWarehouseName nombre por defecto cuando se crea un almacén sin nombre.
func DefaultWarehouseName(code string) string {
	return "Almacén " + code
}
