// Package xlsx genera la planilla de alertas de quiebre de stock.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/panol-api/internal/application/dto"
)

// SheetName nombre de la hoja exportada.
const SheetName = "Alertas"

// ContentType MIME de un .xlsx.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AlertsWriter escribe la tabla de quiebres como .xlsx.
type AlertsWriter struct{}

// NewAlertsWriter construye el writer.
func NewAlertsWriter() *AlertsWriter { return &AlertsWriter{} }

// Write devuelve los bytes del libro. Sin filas queda solo la fila de encabezados.
func (w *AlertsWriter) Write(table *dto.AlertTable) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	header := make([]any, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezados: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(table.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(table.Headers), 1)
		_ = f.SetCellStyle(SheetName, "A1", last, bold)
	}

	for i, r := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			r.Material,
			r.Description,
			r.Stock.InexactFloat64(),
			r.StockMin.InexactFloat64(),
			r.WarehouseCode,
			r.LocationCode,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(SheetName, "B", "B", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
