package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind tipo de movimiento del libro.
type MovementKind string

// Tipos de movimiento de inventario.
const (
	MovementReceipt MovementKind = "RECEIPT" // recepción (entrada)
	MovementIssue   MovementKind = "ISSUE"   // salida a un sector
	MovementReturn  MovementKind = "RETURN"  // devolución
	MovementAdjust  MovementKind = "ADJUST"  // ajuste manual (solo keyuser)
)

// Valid indica si el tipo es uno de los cuatro conocidos.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementReceipt, MovementIssue, MovementReturn, MovementAdjust:
		return true
	}
	return false
}

// Movement es un asiento inmutable del libro de movimientos.
// Quantity se guarda según la convención del tipo: RECEIPT/RETURN/ISSUE positivos
// (en ISSUE, la cantidad efectivamente aplicada tras el recorte), ADJUST con signo.
type Movement struct {
	ID            int64
	CreatedAt     time.Time
	Kind          MovementKind
	ItemID        string
	Quantity      decimal.Decimal
	User          string
	Shift         string
	Sector        string
	SupplierID    *string
	DeliveryNote  string // remito
	Invoice       string // factura
	Observation   string
	WarehouseFrom string
	WarehouseTo   string

	// Campos de lectura (join), vacíos al insertar.
	Material     string
	Description  string
	SupplierName string
}

// Delta devuelve el efecto con signo del movimiento sobre el stock del artículo.
func (m *Movement) Delta() decimal.Decimal {
	if m.Kind == MovementIssue {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
