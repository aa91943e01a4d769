package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/panol-api/internal/application/analytics"
	"github.com/jhoicas/panol-api/internal/infrastructure/pdf"
	"github.com/jhoicas/panol-api/internal/infrastructure/xlsx"
)

// AlertsHandler lista y exporta los artículos en quiebre.
type AlertsHandler struct {
	uc     *appanalytics.AlertsUseCase
	sheet  *xlsx.AlertsWriter
	report *pdf.AlertsReport
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(uc *appanalytics.AlertsUseCase, sheet *xlsx.AlertsWriter, report *pdf.AlertsReport) *AlertsHandler {
	return &AlertsHandler{uc: uc, sheet: sheet, report: report}
}

// List godoc
// @Summary      Artículos en quiebre
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertRowDTO
// @Router       /api/alerts [get]
func (h *AlertsHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.ListBelowMinimum(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":  len(rows),
		"alerts": rows,
	})
}

// ExportXLSX godoc
// @Summary      Exportar quiebres a Excel
// @Tags         alerts
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/alerts/export.xlsx [get]
func (h *AlertsHandler) ExportXLSX(c *fiber.Ctx) error {
	table, err := h.uc.ExportBelowMinimum(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	b, err := h.sheet.Write(table)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsx.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="alertas.xlsx"`)
	return c.Send(b)
}

// ExportPDF godoc
// @Summary      Exportar quiebres a PDF
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/alerts/export.pdf [get]
func (h *AlertsHandler) ExportPDF(c *fiber.Ctx) error {
	table, err := h.uc.ExportBelowMinimum(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	b, err := h.report.Generate(table, time.Now())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, pdf.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="alertas.pdf"`)
	return c.Send(b)
}
