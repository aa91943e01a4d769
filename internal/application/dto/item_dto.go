package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo. Stock inicia en 0.
type CreateItemRequest struct {
	Material      string          `json:"material" validate:"required,max=100"`
	Description   string          `json:"description"`
	Clas          string          `json:"clas" validate:"max=20"`
	StockMin      decimal.Decimal `json:"stock_min"`
	WarehouseCode string          `json:"warehouse_code,omitempty"`
	LocationCode  string          `json:"location_code,omitempty"`
}

// UpdateItemRequest actualización parcial (sin Stock). Un código de almacén/ubicación
// vacío ("") quita la asignación; ausente (nil) la deja igual.
type UpdateItemRequest struct {
	Description   *string          `json:"description"`
	Clas          *string          `json:"clas" validate:"omitempty,max=20"`
	StockMin      *decimal.Decimal `json:"stock_min"`
	WarehouseCode *string          `json:"warehouse_code"`
	LocationCode  *string          `json:"location_code"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID            string          `json:"id"`
	Material      string          `json:"material"`
	Description   string          `json:"description"`
	Clas          string          `json:"clas"`
	StockMin      decimal.Decimal `json:"stock_min"`
	Stock         decimal.Decimal `json:"stock"`
	BelowMinimum  bool            `json:"below_minimum"`
	WarehouseCode string          `json:"warehouse_code"`
	LocationCode  string          `json:"location_code"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemListResponse lista de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
