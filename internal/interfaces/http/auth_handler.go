package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panol-api/internal/application/auth"
	"github.com/jhoicas/panol-api/internal/application/dto"
)

// AuthHandler maneja login y cambio de turno.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password, shift (opcional)"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ChangeShift godoc
// @Summary      Cambiar turno
// @Description  Re-emite el token del usuario con el turno indicado.
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShiftRequest  true  "shift"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/shift [post]
func (h *AuthHandler) ChangeShift(c *fiber.Ctx) error {
	var in dto.ShiftRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.ChangeShift(c.Context(), GetIdentity(c), in.Shift)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
