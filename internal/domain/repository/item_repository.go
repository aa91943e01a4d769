package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item.
// Update nunca toca Stock; Stock solo cambia vía SetStock dentro de una transacción.
type ItemRepository interface {
	// Create devuelve domain.ErrDuplicateMaterial si el material ya existe.
	Create(ctx context.Context, item *entity.Item) error
	GetByMaterial(ctx context.Context, material string) (*entity.Item, error)
	// GetByMaterialForUpdate bloquea la fila (SELECT FOR UPDATE) hasta el fin de la transacción.
	GetByMaterialForUpdate(ctx context.Context, material string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	SetStock(ctx context.Context, itemID string, stock decimal.Decimal) error
	// Search busca por subcadena (sin distinguir mayúsculas) en material o descripción,
	// en orden de material.
	Search(ctx context.Context, query string, limit int) ([]*entity.Item, error)
	ListBelowMinimum(ctx context.Context) ([]*entity.Item, error)
	// ListAll devuelve todos los artículos en orden de material (reconciliación).
	ListAll(ctx context.Context) ([]*entity.Item, error)
	Stats(ctx context.Context) (ItemStats, error)
}

// ItemStats agregados del registro de artículos para el tablero.
type ItemStats struct {
	TotalItems   int
	BelowMinimum int
	TotalStock   decimal.Decimal
}
