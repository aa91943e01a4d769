package entity

import "time"

// Roles válidos para User.
const (
	RoleKeyUser  = "keyuser"  // privilegiado: ajustes, configuración
	RoleOperador = "operador" // operación diaria
)

// User representa un usuario del pañol.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt
	Role         string
	CreatedAt    time.Time
}

// Privileged indica si el rol habilita operaciones restringidas.
func (u *User) Privileged() bool {
	return u.Role == RoleKeyUser
}
