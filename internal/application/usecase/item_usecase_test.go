package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/application/usecase"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/testutil/memstore"
	"github.com/jhoicas/panol-api/pkg/logger"
)

var (
	keyUser  = entity.Actor{Username: "ezequiel", Privileged: true}
	operador = entity.Actor{Username: "operador"}
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newItemUseCase(store *memstore.Store) *usecase.ItemUseCase {
	return usecase.NewItemUseCase(store.Items(), store.Warehouses(), store.Locations(), 500)
}

func TestItemUseCase_CreateStartsAtZero(t *testing.T) {
	store := memstore.New()
	uc := newItemUseCase(store)

	out, err := uc.Create(context.Background(), dto.CreateItemRequest{Material: " 4001 ", Description: "Lija al agua", StockMin: d("5")})

	require.NoError(t, err)
	assert.Equal(t, "4001", out.Material)
	assert.True(t, out.Stock.IsZero())
	assert.True(t, out.BelowMinimum)
}

func TestItemUseCase_CreateDuplicateMaterial(t *testing.T) {
	store := memstore.New()
	uc := newItemUseCase(store)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateItemRequest{Material: "4001"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateItemRequest{Material: "4001", Description: "otra"})

	assert.ErrorIs(t, err, domain.ErrDuplicateMaterial)
	got, err := uc.GetByMaterial(ctx, "4001")
	require.NoError(t, err)
	assert.Empty(t, got.Description, "el artículo guardado no cambia")
}

func TestItemUseCase_CreateValidation(t *testing.T) {
	uc := newItemUseCase(memstore.New())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateItemRequest{Material: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateItemRequest{Material: "X", StockMin: d("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateItemRequest{Material: "X", StockMin: d("0.00005")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateItemRequest{Material: "X", WarehouseCode: "999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUseCase_UpdateIsPartial(t *testing.T) {
	store := memstore.New()
	uc := newItemUseCase(store)
	cat := usecase.NewCatalogUseCase(store.Warehouses(), store.Locations(), store.Suppliers(), 500, logger.Nop())
	ctx := context.Background()

	_, err := cat.CreateWarehouse(ctx, keyUser, dto.CreateWarehouseRequest{Code: "101", Name: "Productos de Insumo"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateItemRequest{Material: "4001", Description: "Lija", Clas: "A", StockMin: d("2")})
	require.NoError(t, err)

	newMin := d("10")
	wh := "101"
	out, err := uc.Update(ctx, "4001", dto.UpdateItemRequest{StockMin: &newMin, WarehouseCode: &wh})

	require.NoError(t, err)
	assert.Equal(t, "Lija", out.Description)
	assert.Equal(t, "A", out.Clas)
	assert.True(t, out.StockMin.Equal(newMin))
	assert.Equal(t, "101", out.WarehouseCode)

	_, err = uc.Update(ctx, "NO-EXISTE", dto.UpdateItemRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUseCase_GetByMaterialNotFound(t *testing.T) {
	_, err := newItemUseCase(memstore.New()).GetByMaterial(context.Background(), "X")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUseCase_SearchCaseInsensitiveOrderedByMaterial(t *testing.T) {
	store := memstore.New()
	uc := newItemUseCase(store)
	ctx := context.Background()
	for _, in := range []dto.CreateItemRequest{
		{Material: "300", Description: "Tornillo Allen"},
		{Material: "100", Description: "tornillo fresado"},
		{Material: "200", Description: "Arandela"},
	} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	out, err := uc.Search(ctx, "TORNILLO", 0)
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "100", out.Items[0].Material)
	assert.Equal(t, "300", out.Items[1].Material)

	out, err = uc.Search(ctx, "", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
}

func TestItemUseCase_ListBelowMinimumIsStrict(t *testing.T) {
	store := memstore.New()
	uc := newItemUseCase(store)
	ctx := context.Background()

	for _, m := range []string{"A", "B", "C"} {
		_, err := uc.Create(ctx, dto.CreateItemRequest{Material: m, StockMin: d("5")})
		require.NoError(t, err)
	}
	items := store.Items()
	a, _ := items.GetByMaterial(ctx, "A")
	b, _ := items.GetByMaterial(ctx, "B")
	c, _ := items.GetByMaterial(ctx, "C")
	require.NoError(t, items.SetStock(ctx, a.ID, d("5")))
	require.NoError(t, items.SetStock(ctx, b.ID, d("4.999")))
	require.NoError(t, items.SetStock(ctx, c.ID, d("6")))

	out, err := uc.ListBelowMinimum(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "B", out.Items[0].Material)
}

func TestItemUseCase_UpdateRejectsStockMinBeyondScale(t *testing.T) {
	store := memstore.New()
	uc := newItemUseCase(store)
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateItemRequest{Material: "4002", StockMin: d("2")})
	require.NoError(t, err)

	bad := d("1.00005")
	_, err = uc.Update(ctx, "4002", dto.UpdateItemRequest{StockMin: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByMaterial(ctx, "4002")
	require.NoError(t, err)
	assert.True(t, got.StockMin.Equal(d("2")))
}
