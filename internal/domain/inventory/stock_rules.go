package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/domain/entity"
)

// Scale decimales de stock, mínimos y cantidades (columnas NUMERIC(18,4)).
const Scale = 4

// FitsScale indica si q se persiste sin redondeo en una columna de escala Scale.
func FitsScale(q decimal.Decimal) bool {
	return q.Equal(q.Truncate(Scale))
}

// Application resultado de aplicar un movimiento a un stock (servicio de dominio puro).
type Application struct {
	Requested    decimal.Decimal // cantidad pedida por el llamador
	Recorded     decimal.Decimal // cantidad que se asienta en el libro
	NewStock     decimal.Decimal
	Insufficient bool // salida recortada al stock disponible
}

// Apply calcula el efecto de un movimiento sobre el stock actual.
//
//	RECEIPT, RETURN: stock += qty
//	ISSUE:           stock -= min(qty, max(0, stock)); si qty > stock se marca Insufficient
//	ADJUST:          stock += qty (con signo, sin recorte; puede quedar negativo)
//
// Las cantidades negativas solo son válidas en ADJUST; ninguna puede exceder Scale decimales.
func Apply(kind entity.MovementKind, stock, qty decimal.Decimal) (Application, bool) {
	app := Application{Requested: qty}
	if !FitsScale(qty) {
		return app, false
	}
	switch kind {
	case entity.MovementReceipt, entity.MovementReturn:
		if qty.IsNegative() {
			return app, false
		}
		app.Recorded = qty
		app.NewStock = stock.Add(qty)
	case entity.MovementIssue:
		if qty.IsNegative() {
			return app, false
		}
		applied := qty
		if stock.LessThan(qty) {
			app.Insufficient = true
			applied = decimal.Max(decimal.Zero, stock)
		}
		app.Recorded = applied
		app.NewStock = stock.Sub(applied)
	case entity.MovementAdjust:
		app.Recorded = qty
		app.NewStock = stock.Add(qty)
	default:
		return app, false
	}
	return app, true
}

// Replay recalcula el stock a partir de los asientos del libro, en orden.
func Replay(movements []*entity.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Delta())
	}
	return total
}
