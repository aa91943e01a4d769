package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// FindOrCreate inserta el proveedor si no existe y devuelve la fila vigente.
// ON CONFLICT DO NOTHING espera a una inserción concurrente del mismo nombre, así que
// el SELECT posterior siempre la encuentra.
func (r *SupplierRepo) FindOrCreate(ctx context.Context, name string) (*entity.Supplier, error) {
	_, err := r.q.Exec(ctx,
		`INSERT INTO suppliers (id, name, created_at) VALUES ($1, $2, now()) ON CONFLICT (name) DO NOTHING`,
		uuid.New().String(), name,
	)
	if err != nil {
		return nil, fmt.Errorf("insert supplier: %w", err)
	}
	var s entity.Supplier
	if err := r.q.QueryRow(ctx, `SELECT id, name, created_at FROM suppliers WHERE name = $1`, name).
		Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	err := pgxscan.Select(ctx, r.q, &list, `SELECT id, name, created_at FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	if list == nil {
		list = []*entity.Supplier{}
	}
	return list, nil
}
