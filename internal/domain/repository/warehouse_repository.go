package repository

import (
	"context"

	"github.com/jhoicas/panol-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Create devuelve domain.ErrDuplicateKey si el código ya existe.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByCode(ctx context.Context, code string) (*entity.Warehouse, error)
	List(ctx context.Context) ([]*entity.Warehouse, error)
}

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByCode(ctx context.Context, code string) (*entity.Location, error)
	List(ctx context.Context, limit int) ([]*entity.Location, error)
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	// FindOrCreate devuelve el proveedor con ese nombre, insertándolo si no existe.
	FindOrCreate(ctx context.Context, name string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}
