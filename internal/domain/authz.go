package domain

// RequirePrivileged es el único predicado de autorización del sistema: ajustes de stock,
// altas de catálogo y gestión de usuarios lo evalúan una vez con el flag de capacidad
// ya verificado por el llamador (rol keyuser).
func RequirePrivileged(privileged bool) error {
	if !privileged {
		return ErrForbidden
	}
	return nil
}
