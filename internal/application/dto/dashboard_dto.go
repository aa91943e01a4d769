package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Se recalcula en cada llamada, sin caché.
type DashboardSummaryDTO struct {
	TotalItems      int                `json:"total_items"`
	BelowMinimum    int                `json:"below_minimum"`
	TotalStock      int64              `json:"total_stock"` // truncado, solo para mostrar
	RecentMovements []MovementResponse `json:"recent_movements"`
}

// AlertRowDTO fila de la tabla de quiebres (alertas y exportación).
type AlertRowDTO struct {
	Material      string          `json:"material"`
	Description   string          `json:"description"`
	Stock         decimal.Decimal `json:"stock"`
	StockMin      decimal.Decimal `json:"stock_min"`
	WarehouseCode string          `json:"warehouse_code"`
	LocationCode  string          `json:"location_code"`
}

// AlertHeaders encabezados de la tabla exportada, en el orden de AlertRowDTO.
var AlertHeaders = []string{"Material", "Descripción", "Stock actual", "Stock mínimo", "Almacén", "Ubicación"}

// AlertTable tabla exportable; Rows puede ser vacío pero nunca nil.
type AlertTable struct {
	Headers []string      `json:"headers"`
	Rows    []AlertRowDTO `json:"rows"`
}
