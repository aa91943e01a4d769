package inventory

import (
	"context"

	"github.com/jhoicas/panol-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Items      repository.ItemRepository
	Movements  repository.MovementRepository
	Suppliers  repository.SupplierRepository
	Warehouses repository.WarehouseRepository
	Locations  repository.LocationRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback completo: nunca queda stock sin asiento ni asiento sin stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}
