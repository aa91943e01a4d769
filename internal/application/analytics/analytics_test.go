package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panol-api/internal/application/analytics"
	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/application/inventory"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/testutil/memstore"
	"github.com/jhoicas/panol-api/pkg/logger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var actor = entity.Actor{Username: "ezequiel", Privileged: true}

// seed crea tres artículos y algunos movimientos:
//
//	A: mínimo 5, stock 5     (no está en quiebre)
//	B: mínimo 5, stock 2.5   (quiebre)
//	C: mínimo 0, stock 10.9
func seed(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New()
	ctx := context.Background()
	for _, it := range []entity.Item{
		{ID: "a", Material: "A", StockMin: d("5"), Stock: decimal.Zero, WarehouseCode: "101"},
		{ID: "b", Material: "B", Description: "Balde", StockMin: d("5"), Stock: decimal.Zero, LocationCode: "A-01"},
		{ID: "c", Material: "C", StockMin: decimal.Zero, Stock: decimal.Zero},
	} {
		it := it
		it.CreatedAt, it.UpdatedAt = time.Now(), time.Now()
		require.NoError(t, store.Items().Create(ctx, &it))
	}
	engine := inventory.NewRegisterMovementUseCase(store, "Morning", logger.Nop())
	for _, in := range []inventory.MovementInput{
		{Kind: entity.MovementReceipt, Material: "A", Quantity: d("5")},
		{Kind: entity.MovementReceipt, Material: "B", Quantity: d("2.5")},
		{Kind: entity.MovementReceipt, Material: "C", Quantity: d("10.9")},
	} {
		_, err := engine.ApplyMovement(ctx, actor, in)
		require.NoError(t, err)
	}
	return store
}

func TestDashboard_SummaryIsIdempotent(t *testing.T) {
	store := seed(t)
	uc := analytics.NewDashboardUseCase(store.Items(), store.Movements())

	first, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	second, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, first.TotalItems)
	assert.Equal(t, 1, first.BelowMinimum)
	assert.Equal(t, int64(18), first.TotalStock, "18.4 se trunca")
	require.Len(t, first.RecentMovements, 3)
	assert.Equal(t, "C", first.RecentMovements[0].Material)
}

func TestAlerts_ExportBelowMinimum(t *testing.T) {
	store := seed(t)
	uc := analytics.NewAlertsUseCase(store.Items())

	table, err := uc.ExportBelowMinimum(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.AlertHeaders, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "B", table.Rows[0].Material)
	assert.Equal(t, "Balde", table.Rows[0].Description)
	assert.Equal(t, "A-01", table.Rows[0].LocationCode)
}

func TestAlerts_ExportEmptyHasHeadersOnly(t *testing.T) {
	uc := analytics.NewAlertsUseCase(memstore.New().Items())

	table, err := uc.ExportBelowMinimum(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.Headers, 6)
	assert.NotNil(t, table.Rows)
	assert.Empty(t, table.Rows)
}

func TestReconcile_ReportsImportDrift(t *testing.T) {
	store := seed(t)
	ctx := context.Background()
	uc := analytics.NewReconcileUseCase(store.Items(), store.Movements())

	drifts, err := uc.Reconcile(ctx, actor)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	importer := inventory.NewImportUseCase(store, logger.Nop())
	stock := d("7")
	_, err = importer.ImportItems(ctx, actor, []dto.ImportRow{{Material: "A", Stock: &stock}})
	require.NoError(t, err)

	drifts, err = uc.Reconcile(ctx, actor)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, "A", drifts[0].Material)
	assert.True(t, drifts[0].Difference.Equal(d("2")))

	_, err = uc.Reconcile(ctx, entity.Actor{Username: "operador"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
