package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del pañol identificado por su código de material.
// Stock es la proyección materializada del libro de movimientos: solo el motor de
// inventario (y la importación masiva) la modifican.
type Item struct {
	ID            string
	Material      string // código único
	Description   string
	Clas          string // clase ABC u otra etiqueta libre
	StockMin      decimal.Decimal
	Stock         decimal.Decimal
	WarehouseID   *string
	WarehouseCode string // resuelto en lecturas, vacío si no tiene almacén
	LocationID    *string
	LocationCode  string // resuelto en lecturas, vacío si no tiene ubicación
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BelowMinimum indica si el artículo está en quiebre (stock < mínimo, desigualdad estricta).
func (i *Item) BelowMinimum() bool {
	return i.Stock.LessThan(i.StockMin)
}
