package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/application/inventory"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/pkg/logger"
)

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

func TestImportItems_CreatesUpdatesAndSkips(t *testing.T) {
	_, store := newEngine(t)
	ctx := context.Background()
	uc := inventory.NewImportUseCase(store, logger.Nop())

	out, err := uc.ImportItems(ctx, keyUser, []dto.ImportRow{
		{Material: "M-1", Description: "Guante nitrilo talle L", StockMin: ptr(d("8"))},
		{Material: "M-2", Description: "Cinta aisladora", Stock: ptr(d("12")), WarehouseCode: "101", LocationCode: "A-01"},
		{Material: "   "},
	})

	require.NoError(t, err)
	assert.Equal(t, dto.ImportResponse{Created: 1, Updated: 1, Skipped: 1}, *out)

	m1, err := store.Items().GetByMaterial(ctx, "M-1")
	require.NoError(t, err)
	assert.Equal(t, "Guante nitrilo talle L", m1.Description)
	assert.True(t, m1.StockMin.Equal(d("8")))
	assert.True(t, m1.Stock.IsZero(), "sin columna stock se conserva el valor")

	m2, err := store.Items().GetByMaterial(ctx, "M-2")
	require.NoError(t, err)
	assert.True(t, m2.Stock.Equal(d("12")))
	assert.Equal(t, "101", m2.WarehouseCode)
	assert.Equal(t, "A-01", m2.LocationCode)

	wh, err := store.Warehouses().GetByCode(ctx, "101")
	require.NoError(t, err)
	require.NotNil(t, wh)
	assert.Equal(t, "Almacén 101", wh.Name)

	assert.Equal(t, 0, store.Count(), "la importación no genera asientos")
}

func TestImportItems_ReusesExistingWarehouse(t *testing.T) {
	_, store := newEngine(t)
	ctx := context.Background()
	uc := inventory.NewImportUseCase(store, logger.Nop())

	_, err := uc.ImportItems(ctx, keyUser, []dto.ImportRow{
		{Material: "A", WarehouseCode: "800"},
		{Material: "B", WarehouseCode: "800"},
	})
	require.NoError(t, err)

	list, err := store.Warehouses().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestImportItems_RejectsInvalidQuantities(t *testing.T) {
	tests := []struct {
		name string
		row  dto.ImportRow
	}{
		{"minimo negativo", dto.ImportRow{Material: "NEG", StockMin: ptr(d("-3"))}},
		{"minimo con cinco decimales", dto.ImportRow{Material: "MIN", StockMin: ptr(d("0.00005"))}},
		{"stock con cinco decimales", dto.ImportRow{Material: "STK", Stock: ptr(d("1.00005"))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, store := newEngine(t)
			ctx := context.Background()
			uc := inventory.NewImportUseCase(store, logger.Nop())

			out, err := uc.ImportItems(ctx, keyUser, []dto.ImportRow{{Material: "OK-1"}, tt.row})

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, out)
			for _, m := range []string{"OK-1", tt.row.Material} {
				it, err := store.Items().GetByMaterial(ctx, m)
				require.NoError(t, err)
				assert.Nil(t, it, "la importación se revierte completa")
			}
		})
	}
}
