// Package pdf genera el reporte PDF de artículos en quiebre de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de emisión                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | Descripción | Stock | Mínimo | Alm. | Ub. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de artículos en quiebre                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/panol-api/internal/application/dto"
)

// ContentType MIME del reporte.
const ContentType = "application/pdf"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// anchos de columna (suman 12), en el orden de dto.AlertHeaders.
var colSizes = []int{2, 4, 1, 1, 2, 2}

// AlertsReport genera el PDF de quiebres con Maroto v2.
type AlertsReport struct {
	title string
}

// NewAlertsReport construye el generador. title aparece en el encabezado.
func NewAlertsReport(title string) *AlertsReport {
	return &AlertsReport{title: title}
}

// Generate devuelve los bytes del PDF. Sin filas se emite solo el encabezado de la tabla.
func (g *AlertsReport) Generate(table *dto.AlertTable, at time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, at))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(table.Headers))
	m.AddRows(tableRows(table.Rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(table.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string, at time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Emitido: "+at.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Top: 4, Color: colorGray,
		})),
	)
}

func tableHeaderRow(headers []string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(colSizes[i%len(colSizes)]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRows(rows []dto.AlertRowDTO) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		cell := func(i int, v string, a align.Type, c *props.Color) core.Col {
			return col.New(colSizes[i]).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Color: c}))
		}
		out = append(out, row.New(6).Add(
			cell(0, r.Material, align.Left, nil),
			cell(1, r.Description, align.Left, nil),
			cell(2, r.Stock.String(), align.Right, colorAlert),
			cell(3, r.StockMin.String(), align.Right, nil),
			cell(4, r.WarehouseCode, align.Center, nil),
			cell(5, r.LocationCode, align.Center, nil),
		))
	}
	return out
}

func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(
		fmt.Sprintf("Artículos en quiebre: %d", count),
		props.Text{Style: fontstyle.Bold, Size: 9, Top: 2},
	)))
}
