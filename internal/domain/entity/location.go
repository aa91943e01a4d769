package entity

import "time"

// Location representa una ubicación física libre (estante, bin). Clave natural: Code.
type Location struct {
	ID        string
	Code      string
	CreatedAt time.Time
}
