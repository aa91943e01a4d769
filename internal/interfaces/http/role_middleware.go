package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain"
)

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 401 MISSING_ROLE → token sin claim de rol.
//   - 403 FORBIDDEN    → rol no permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_ROLE", Message: "el token no incluye rol",
			})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "acceso denegado al recurso",
			})
		}
		return c.Next()
	}
}

// RequirePrivileged deja pasar solo a usuarios privilegiados (keyuser).
// Usa el mismo predicado que los casos de uso.
func RequirePrivileged() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := domain.RequirePrivileged(ActorFrom(c).Privileged); err != nil {
			return writeError(c, err)
		}
		return c.Next()
	}
}
