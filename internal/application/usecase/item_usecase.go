package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	domaininv "github.com/jhoicas/panol-api/internal/domain/inventory"
	"github.com/jhoicas/panol-api/internal/domain/repository"
)

// ItemUseCase registro de artículos. Stock se maneja vía movimientos, nunca desde aquí.
type ItemUseCase struct {
	repo          repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	maxPage       int
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	repo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	maxPage int,
) *ItemUseCase {
	return &ItemUseCase{
		repo:          repo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		maxPage:       maxPage,
	}
}

// Create crea un artículo con stock 0. ErrDuplicateMaterial si el material ya existe;
// ErrNotFound si el almacén o la ubicación indicados no existen.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	material := strings.TrimSpace(in.Material)
	if material == "" || !validStockMin(in.StockMin) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByMaterial(ctx, material)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateMaterial
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Material:    material,
		Description: in.Description,
		Clas:        in.Clas,
		StockMin:    in.StockMin,
		Stock:       decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.assignWarehouse(ctx, item, in.WarehouseCode); err != nil {
		return nil, err
	}
	if err := uc.assignLocation(ctx, item, in.LocationCode); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByMaterial obtiene un artículo por su código. ErrNotFound si no existe.
func (uc *ItemUseCase) GetByMaterial(ctx context.Context, material string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByMaterial(ctx, strings.TrimSpace(material))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update actualización parcial de descripción, clase, mínimo y asignación. No toca Stock.
func (uc *ItemUseCase) Update(ctx context.Context, material string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByMaterial(ctx, strings.TrimSpace(material))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Clas != nil {
		item.Clas = *in.Clas
	}
	if in.StockMin != nil {
		if !validStockMin(*in.StockMin) {
			return nil, domain.ErrInvalidInput
		}
		item.StockMin = *in.StockMin
	}
	if in.WarehouseCode != nil {
		if err := uc.assignWarehouse(ctx, item, *in.WarehouseCode); err != nil {
			return nil, err
		}
	}
	if in.LocationCode != nil {
		if err := uc.assignLocation(ctx, item, *in.LocationCode); err != nil {
			return nil, err
		}
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Search busca por subcadena en material o descripción (sin distinguir mayúsculas),
// hasta limit resultados en orden de material.
func (uc *ItemUseCase) Search(ctx context.Context, query string, limit int) (*dto.ItemListResponse, error) {
	if limit <= 0 || limit > uc.maxPage {
		limit = uc.maxPage
	}
	list, err := uc.repo.Search(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, err
	}
	return toItemList(list), nil
}

// ListBelowMinimum artículos con stock < mínimo (desigualdad estricta).
func (uc *ItemUseCase) ListBelowMinimum(ctx context.Context) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	return toItemList(list), nil
}

func (uc *ItemUseCase) assignWarehouse(ctx context.Context, item *entity.Item, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		item.WarehouseID, item.WarehouseCode = nil, ""
		return nil
	}
	wh, err := uc.warehouseRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}
	item.WarehouseID, item.WarehouseCode = &wh.ID, wh.Code
	return nil
}

func (uc *ItemUseCase) assignLocation(ctx context.Context, item *entity.Item, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		item.LocationID, item.LocationCode = nil, ""
		return nil
	}
	loc, err := uc.locationRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	item.LocationID, item.LocationCode = &loc.ID, loc.Code
	return nil
}

func toItemList(list []*entity.Item) *dto.ItemListResponse {
	items := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toItemResponse(i))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:            i.ID,
		Material:      i.Material,
		Description:   i.Description,
		Clas:          i.Clas,
		StockMin:      i.StockMin,
		Stock:         i.Stock,
		BelowMinimum:  i.BelowMinimum(),
		WarehouseCode: i.WarehouseCode,
		LocationCode:  i.LocationCode,
		UpdatedAt:     i.UpdatedAt,
	}
}

// validStockMin mínimo no negativo y dentro de la escala de la columna.
func validStockMin(v decimal.Decimal) bool {
	return !v.IsNegative() && domaininv.FitsScale(v)
}
