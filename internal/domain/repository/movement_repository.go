package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/domain/entity"
)

// MovementRepository define el puerto del libro de movimientos (solo inserción).
type MovementRepository interface {
	// Append inserta el asiento y completa ID y CreatedAt; el orden de ID coincide con el
	// orden temporal.
	Append(ctx context.Context, movement *entity.Movement) error
	// List devuelve los asientos más recientes primero; filter filtra por subcadena en el
	// material o la descripción del artículo.
	List(ctx context.Context, filter string, limit int) ([]*entity.Movement, error)
	// SumByItem devuelve Σ deltas por ItemID.
	SumByItem(ctx context.Context) (map[string]decimal.Decimal, error)
}
