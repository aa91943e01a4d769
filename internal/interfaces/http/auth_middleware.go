package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/pkg/jwt"
)

// Locals keys de la identidad autenticada en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
	LocalShift    = "shift"
)

// HeaderShift permite elegir el turno por request sin re-emitir el token.
const HeaderShift = "X-Shift"

// AuthMiddleware valida el Bearer Token JWT y copia la identidad a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalUsername, id.Username)
		c.Locals(LocalRole, id.Role)
		c.Locals(LocalShift, id.Shift)
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string { return localString(c, LocalUsername) }

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetShift devuelve el turno efectivo: header X-Shift si viene, si no el del token.
// Vacío significa "turno por defecto" (lo resuelve el motor).
func GetShift(c *fiber.Ctx) string {
	if s := strings.TrimSpace(c.Get(HeaderShift)); s != "" {
		return s
	}
	return localString(c, LocalShift)
}

// GetIdentity reconstruye la identidad del token.
func GetIdentity(c *fiber.Ctx) jwt.Identity {
	return jwt.Identity{
		UserID:   GetUserID(c),
		Username: GetUsername(c),
		Role:     GetRole(c),
		Shift:    localString(c, LocalShift),
	}
}

// ActorFrom arma el contexto explícito de la llamada para los casos de uso.
func ActorFrom(c *fiber.Ctx) entity.Actor {
	return entity.Actor{
		UserID:     GetUserID(c),
		Username:   GetUsername(c),
		Shift:      GetShift(c),
		Privileged: GetRole(c) == entity.RoleKeyUser,
	}
}
