package entity

// Actor es el contexto explícito de una llamada al motor: quién opera, en qué turno
// y si ya fue verificado como privilegiado. Reemplaza la sesión ambiental.
type Actor struct {
	UserID     string
	Username   string
	Shift      string
	Privileged bool
}
