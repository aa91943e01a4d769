package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptRequest body para POST /api/inventory/receipts.
type ReceiptRequest struct {
	Material     string          `json:"material" validate:"required"`
	Quantity     decimal.Decimal `json:"qty"`
	Supplier     string          `json:"supplier"`
	DeliveryNote string          `json:"remito"`
	Invoice      string          `json:"factura"`
	Observation  string          `json:"observation"`
	WarehouseTo  string          `json:"warehouse_to"`
}

// IssueRequest body para POST /api/inventory/issues.
type IssueRequest struct {
	Material      string          `json:"material" validate:"required"`
	Quantity      decimal.Decimal `json:"qty"`
	Sector        string          `json:"sector"`
	Observation   string          `json:"observation"`
	WarehouseFrom string          `json:"warehouse_from"`
}

// ReturnRequest body para POST /api/inventory/returns.
type ReturnRequest struct {
	Material    string          `json:"material" validate:"required"`
	Quantity    decimal.Decimal `json:"qty"`
	Observation string          `json:"observation"`
}

// AdjustmentRequest body para POST /api/inventory/adjustments (delta con signo).
type AdjustmentRequest struct {
	Material    string          `json:"material" validate:"required"`
	Delta       decimal.Decimal `json:"delta"`
	Observation string          `json:"observation"`
}

// MovementResponse asiento del libro.
type MovementResponse struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"date"`
	Kind          string          `json:"kind"`
	Material      string          `json:"material"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"qty"`
	User          string          `json:"user"`
	Shift         string          `json:"shift"`
	Sector        string          `json:"sector,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	DeliveryNote  string          `json:"remito,omitempty"`
	Invoice       string          `json:"factura,omitempty"`
	Observation   string          `json:"observation,omitempty"`
	WarehouseFrom string          `json:"warehouse_from,omitempty"`
	WarehouseTo   string          `json:"warehouse_to,omitempty"`
}

// ApplyMovementResponse respuesta de registrar un movimiento. InsufficientStock no es un
// error: la salida se aplicó recortada al stock disponible.
type ApplyMovementResponse struct {
	Movement          MovementResponse `json:"movement"`
	Stock             decimal.Decimal  `json:"stock"`
	Requested         decimal.Decimal  `json:"requested"`
	InsufficientStock bool             `json:"insufficient_stock"`
	Warning           string           `json:"warning,omitempty"`
}

// MovementListResponse lista del libro, más recientes primero.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Total     int                `json:"total"`
}

// ImportRow fila de importación masiva. Stock y StockMin nil conservan el valor actual.
type ImportRow struct {
	Material      string           `json:"material"`
	Description   string           `json:"description"`
	Stock         *decimal.Decimal `json:"stock"`
	StockMin      *decimal.Decimal `json:"stock_min"`
	WarehouseCode string           `json:"warehouse_code"`
	LocationCode  string           `json:"location_code"`
}

// ImportRequest body para POST /api/inventory/import.
type ImportRequest struct {
	Rows []ImportRow `json:"rows" validate:"required,min=1,dive"`
}

// ImportResponse resumen de la importación.
type ImportResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// DriftDTO artículo cuyo stock no coincide con la suma del libro.
type DriftDTO struct {
	Material    string          `json:"material"`
	Stock       decimal.Decimal `json:"stock"`
	LedgerTotal decimal.Decimal `json:"ledger_total"`
	Difference  decimal.Decimal `json:"difference"`
}
