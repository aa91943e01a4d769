package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

type itemRow struct {
	ID            string          `db:"id"`
	Material      string          `db:"material"`
	Description   string          `db:"description"`
	Clas          string          `db:"clas"`
	StockMin      decimal.Decimal `db:"stock_min"`
	Stock         decimal.Decimal `db:"stock"`
	WarehouseID   *string         `db:"warehouse_id"`
	WarehouseCode *string         `db:"warehouse_code"`
	LocationID    *string         `db:"location_id"`
	LocationCode  *string         `db:"location_code"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (r itemRow) toEntity() *entity.Item {
	it := &entity.Item{
		ID:          r.ID,
		Material:    r.Material,
		Description: r.Description,
		Clas:        r.Clas,
		StockMin:    r.StockMin,
		Stock:       r.Stock,
		WarehouseID: r.WarehouseID,
		LocationID:  r.LocationID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.WarehouseCode != nil {
		it.WarehouseCode = *r.WarehouseCode
	}
	if r.LocationCode != nil {
		it.LocationCode = *r.LocationCode
	}
	return it
}

// itemSelect SELECT base con los códigos de almacén y ubicación resueltos.
func itemSelect() squirrel.SelectBuilder {
	return psql.Select(
		"i.id", "i.material", "i.description", "i.clas", "i.stock_min", "i.stock",
		"i.warehouse_id", "w.code AS warehouse_code",
		"i.location_id", "l.code AS location_code",
		"i.created_at", "i.updated_at",
	).
		From("items i").
		LeftJoin("warehouses w ON w.id = i.warehouse_id").
		LeftJoin("locations l ON l.id = i.location_id")
}

// searchItemsQuery arma la búsqueda por subcadena en material o descripción.
func searchItemsQuery(query string, limit int) (string, []any, error) {
	b := itemSelect().OrderBy("i.material")
	if query != "" {
		p := likePattern(query)
		b = b.Where(squirrel.Or{
			squirrel.ILike{"i.material": p},
			squirrel.ILike{"i.description": p},
		})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return b.ToSql()
}

func (r *ItemRepo) selectMany(ctx context.Context, sql string, args []any) ([]*entity.Item, error) {
	var rows []itemRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, err
	}
	out := make([]*entity.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *ItemRepo) getOne(ctx context.Context, b squirrel.SelectBuilder) (*entity.Item, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var row itemRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return row.toEntity(), nil
}

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}
	query := `
		INSERT INTO items (id, material, description, clas, stock_min, stock, warehouse_id, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Material, item.Description, item.Clas, item.StockMin, item.Stock,
		item.WarehouseID, item.LocationID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateMaterial
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByMaterial obtiene un artículo por código. (nil, nil) si no existe.
func (r *ItemRepo) GetByMaterial(ctx context.Context, material string) (*entity.Item, error) {
	it, err := r.getOne(ctx, itemSelect().Where(squirrel.Eq{"i.material": material}))
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// GetByMaterialForUpdate igual que GetByMaterial pero bloquea la fila del artículo
// (no las de almacén/ubicación) hasta el fin de la transacción.
func (r *ItemRepo) GetByMaterialForUpdate(ctx context.Context, material string) (*entity.Item, error) {
	it, err := r.getOne(ctx, itemSelect().Where(squirrel.Eq{"i.material": material}).Suffix("FOR UPDATE OF i"))
	if err != nil {
		return nil, fmt.Errorf("lock item: %w", err)
	}
	return it, nil
}

// Update actualiza descripción, clase, mínimo y asignación. No modifica Stock.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items SET description = $2, clas = $3, stock_min = $4, warehouse_id = $5, location_id = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.Description, item.Clas, item.StockMin, item.WarehouseID, item.LocationID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStock fija el stock del artículo (motor de inventario e importación).
func (r *ItemRepo) SetStock(ctx context.Context, itemID string, stock decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx, `UPDATE items SET stock = $2, updated_at = now() WHERE id = $1`, itemID, stock)
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca por subcadena sin distinguir mayúsculas, en orden de material.
func (r *ItemRepo) Search(ctx context.Context, query string, limit int) ([]*entity.Item, error) {
	sql, args, err := searchItemsQuery(query, limit)
	if err != nil {
		return nil, fmt.Errorf("build item search: %w", err)
	}
	list, err := r.selectMany(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return list, nil
}

// ListBelowMinimum artículos con stock < stock_min.
func (r *ItemRepo) ListBelowMinimum(ctx context.Context) ([]*entity.Item, error) {
	sql, args, err := itemSelect().Where("i.stock < i.stock_min").OrderBy("i.material").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build below minimum: %w", err)
	}
	list, err := r.selectMany(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("list below minimum: %w", err)
	}
	return list, nil
}

// ListAll todos los artículos en orden de material.
func (r *ItemRepo) ListAll(ctx context.Context) ([]*entity.Item, error) {
	sql, args, err := itemSelect().OrderBy("i.material").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}
	list, err := r.selectMany(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return list, nil
}

// Stats agregados para el tablero.
func (r *ItemRepo) Stats(ctx context.Context) (repository.ItemStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE stock < stock_min),
		       COALESCE(SUM(stock), 0)
		FROM items`
	var st repository.ItemStats
	if err := r.q.QueryRow(ctx, query).Scan(&st.TotalItems, &st.BelowMinimum, &st.TotalStock); err != nil {
		return repository.ItemStats{}, fmt.Errorf("item stats: %w", err)
	}
	return st, nil
}
