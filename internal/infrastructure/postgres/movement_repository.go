package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// movementsLockKey clave del advisory lock que serializa las inserciones en el libro.
const movementsLockKey int64 = 0x70616e6f6c // "panol"

// MovementRepo libro de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

type movementRow struct {
	ID            int64           `db:"id"`
	CreatedAt     time.Time       `db:"created_at"`
	Kind          string          `db:"kind"`
	ItemID        string          `db:"item_id"`
	Quantity      decimal.Decimal `db:"quantity"`
	Username      string          `db:"username"`
	Shift         string          `db:"shift"`
	Sector        string          `db:"sector"`
	SupplierID    *string         `db:"supplier_id"`
	DeliveryNote  string          `db:"delivery_note"`
	Invoice       string          `db:"invoice"`
	Observation   string          `db:"observation"`
	WarehouseFrom string          `db:"warehouse_from"`
	WarehouseTo   string          `db:"warehouse_to"`
	Material      string          `db:"material"`
	Description   string          `db:"description"`
	SupplierName  string          `db:"supplier_name"`
}

func (r movementRow) toEntity() *entity.Movement {
	return &entity.Movement{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt,
		Kind:          entity.MovementKind(r.Kind),
		ItemID:        r.ItemID,
		Quantity:      r.Quantity,
		User:          r.Username,
		Shift:         r.Shift,
		Sector:        r.Sector,
		SupplierID:    r.SupplierID,
		DeliveryNote:  r.DeliveryNote,
		Invoice:       r.Invoice,
		Observation:   r.Observation,
		WarehouseFrom: r.WarehouseFrom,
		WarehouseTo:   r.WarehouseTo,
		Material:      r.Material,
		Description:   r.Description,
		SupplierName:  r.SupplierName,
	}
}

// Append inserta el asiento. El advisory lock de transacción serializa las inserciones
// para que el orden de id coincida con el de created_at (clock_timestamp).
func (r *MovementRepo) Append(ctx context.Context, m *entity.Movement) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, movementsLockKey); err != nil {
		return fmt.Errorf("lock movements: %w", err)
	}
	query := `
		INSERT INTO movements (created_at, kind, item_id, quantity, username, shift, sector, supplier_id,
		                       delivery_note, invoice, observation, warehouse_from, warehouse_to)
		VALUES (clock_timestamp(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		string(m.Kind), m.ItemID, m.Quantity, m.User, m.Shift, m.Sector, m.SupplierID,
		m.DeliveryNote, m.Invoice, m.Observation, m.WarehouseFrom, m.WarehouseTo,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// listMovementsQuery arma el listado del libro, más recientes primero.
func listMovementsQuery(filter string, limit int) (string, []any, error) {
	b := psql.Select(
		"m.id", "m.created_at", "m.kind", "m.item_id", "m.quantity", "m.username", "m.shift",
		"m.sector", "m.supplier_id", "m.delivery_note", "m.invoice", "m.observation",
		"m.warehouse_from", "m.warehouse_to",
		"i.material", "i.description", "COALESCE(s.name, '') AS supplier_name",
	).
		From("movements m").
		Join("items i ON i.id = m.item_id").
		LeftJoin("suppliers s ON s.id = m.supplier_id").
		OrderBy("m.id DESC")
	if filter != "" {
		p := likePattern(filter)
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

// List devuelve los asientos más recientes primero.
func (r *MovementRepo) List(ctx context.Context, filter string, limit int) ([]*entity.Movement, error) {
	sql, args, err := listMovementsQuery(filter, limit)
	if err != nil {
		return nil, fmt.Errorf("build list movements: %w", err)
	}
	var rows []movementRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := make([]*entity.Movement, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// SumByItem Σ deltas por artículo (ISSUE resta, el resto suma con su signo).
func (r *MovementRepo) SumByItem(ctx context.Context) (map[string]decimal.Decimal, error) {
	query := `
		SELECT item_id, SUM(CASE WHEN kind = 'ISSUE' THEN -quantity ELSE quantity END) AS total
		FROM movements
		GROUP BY item_id`
	var rows []struct {
		ItemID string          `db:"item_id"`
		Total  decimal.Decimal `db:"total"`
	}
	if err := pgxscan.Select(ctx, r.q, &rows, query); err != nil {
		return nil, fmt.Errorf("sum movements: %w", err)
	}
	out := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.ItemID] = row.Total
	}
	return out, nil
}
