package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panol-api/internal/application/analytics"
	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/application/inventory"
)

// InventoryHandler maneja movimientos, libro, importación y reconciliación (protegido).
type InventoryHandler struct {
	movements *inventory.RegisterMovementUseCase
	ledger    *inventory.LedgerUseCase
	importer  *inventory.ImportUseCase
	reconcile *analytics.ReconcileUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	movements *inventory.RegisterMovementUseCase,
	ledger *inventory.LedgerUseCase,
	importer *inventory.ImportUseCase,
	reconcile *analytics.ReconcileUseCase,
) *InventoryHandler {
	return &InventoryHandler{movements: movements, ledger: ledger, importer: importer, reconcile: reconcile}
}

// Receipt godoc
// @Summary      Registrar recepción
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        X-Shift  header  string              false  "turno (sobrescribe el del token)"
// @Param        body     body    dto.ReceiptRequest  true   "material, qty, supplier, remito, factura"
// @Success      201  {object}  dto.ApplyMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/receipts [post]
func (h *InventoryHandler) Receipt(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.movements.Receipt(c.Context(), ActorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Issue godoc
// @Summary      Registrar salida
// @Description  Si el stock no alcanza se entrega lo disponible y la respuesta trae insufficient_stock=true.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        X-Shift  header  string            false  "turno (sobrescribe el del token)"
// @Param        body     body    dto.IssueRequest  true   "material, qty, sector"
// @Success      201  {object}  dto.ApplyMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/issues [post]
func (h *InventoryHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.movements.Issue(c.Context(), ActorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Return godoc
// @Summary      Registrar devolución
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReturnRequest  true  "material, qty"
// @Success      201  {object}  dto.ApplyMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/returns [post]
func (h *InventoryHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.movements.Return(c.Context(), ActorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Adjust godoc
// @Summary      Ajuste manual (keyuser)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "material, delta con signo, observation"
// @Success      201  {object}  dto.ApplyMovementResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.movements.Adjust(c.Context(), ActorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Libro de movimientos
// @Description  Más recientes primero; q filtra por material o descripción.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  false  "filtro"
// @Param        limit  query  int     false  "máximo de filas (tope 500)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.ledger.ListMovements(c.Context(), page.Q, page.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importación masiva de artículos
// @Description  Una sola transacción. La columna stock sobrescribe el valor sin asiento en el libro.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "rows"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/import [post]
func (h *InventoryHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.importer.ImportItems(c.Context(), ActorFrom(c), in.Rows)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Reconciliación stock vs libro (keyuser)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.DriftDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/reconciliation [get]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	drifts, err := h.reconcile.Reconcile(c.Context(), ActorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":  len(drifts),
		"drifts": drifts,
	})
}
