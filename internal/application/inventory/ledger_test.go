package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panol-api/internal/application/inventory"
	"github.com/jhoicas/panol-api/internal/domain/entity"
)

func TestListMovements_NewestFirstAndCapped(t *testing.T) {
	uc, store := newEngine(t)
	for i := 0; i < 5; i++ {
		apply(t, uc, operador, entity.MovementReceipt, "1")
	}
	ledger := inventory.NewLedgerUseCase(store.Movements(), 3)

	out, err := ledger.ListMovements(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, out.Movements, 3)
	assert.Greater(t, out.Movements[0].ID, out.Movements[1].ID)
	assert.Greater(t, out.Movements[1].ID, out.Movements[2].ID)

	out, err = ledger.ListMovements(context.Background(), "", 1000)
	require.NoError(t, err)
	assert.Len(t, out.Movements, 3)
}

func TestListMovements_FilterByMaterialOrDescription(t *testing.T) {
	uc, store := newEngine(t)
	apply(t, uc, operador, entity.MovementReceipt, "1")
	ledger := inventory.NewLedgerUseCase(store.Movements(), 500)

	out, err := ledger.ListMovements(context.Background(), "nitrilo", 10)
	require.NoError(t, err)
	require.Len(t, out.Movements, 1)
	assert.Equal(t, "M-1", out.Movements[0].Material)

	out, err = ledger.ListMovements(context.Background(), "tornillo", 10)
	require.NoError(t, err)
	assert.Empty(t, out.Movements)
	assert.NotNil(t, out.Movements)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 500, inventory.ClampLimit(0, 500))
	assert.Equal(t, 500, inventory.ClampLimit(-3, 500))
	assert.Equal(t, 500, inventory.ClampLimit(501, 500))
	assert.Equal(t, 20, inventory.ClampLimit(20, 500))
}
