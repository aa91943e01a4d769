package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/application/usecase"
)

// ConfigHandler pantalla de configuración: almacenes, ubicaciones, proveedores y usuarios.
type ConfigHandler struct {
	catalog *usecase.CatalogUseCase
	users   *usecase.UserUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(catalog *usecase.CatalogUseCase, users *usecase.UserUseCase) *ConfigHandler {
	return &ConfigHandler{catalog: catalog, users: users}
}

// ListWarehouses godoc
// @Summary      Listar almacenes
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/config/warehouses [get]
func (h *ConfigHandler) ListWarehouses(c *fiber.Ctx) error {
	list, err := h.catalog.ListWarehouses(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateWarehouse godoc
// @Summary      Crear almacén (keyuser)
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "code, name"
// @Success      201  {object}  dto.WarehouseResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/config/warehouses [post]
func (h *ConfigHandler) CreateWarehouse(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.catalog.CreateWarehouse(c.Context(), ActorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLocations godoc
// @Summary      Listar ubicaciones
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas"
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/config/locations [get]
func (h *ConfigHandler) ListLocations(c *fiber.Ctx) error {
	list, err := h.catalog.ListLocations(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateLocation godoc
// @Summary      Crear ubicación (keyuser)
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "code"
// @Success      201  {object}  dto.LocationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/config/locations [post]
func (h *ConfigHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.catalog.CreateLocation(c.Context(), ActorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/config/suppliers [get]
func (h *ConfigHandler) ListSuppliers(c *fiber.Ctx) error {
	list, err := h.catalog.ListSuppliers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListUsers godoc
// @Summary      Listar usuarios (keyuser)
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/config/users [get]
func (h *ConfigHandler) ListUsers(c *fiber.Ctx) error {
	list, err := h.users.List(c.Context(), ActorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateUser godoc
// @Summary      Crear usuario (keyuser)
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "username, password (demo123), role (operador)"
// @Success      201  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/config/users [post]
func (h *ConfigHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.users.Create(c.Context(), ActorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
