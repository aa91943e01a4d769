package entity

import "time"

// Supplier proveedor; se crea la primera vez que una recepción lo nombra.
type Supplier struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
