package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/domain/repository"
	"github.com/jhoicas/panol-api/pkg/logger"
)

// CatalogUseCase almacenes, ubicaciones y proveedores (entidades de referencia).
type CatalogUseCase struct {
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	supplierRepo  repository.SupplierRepository
	maxPage       int
	log           *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	supplierRepo repository.SupplierRepository,
	maxPage int,
	log *logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		supplierRepo:  supplierRepo,
		maxPage:       maxPage,
		log:           log,
	}
}

// CreateWarehouse crea un almacén (solo keyuser). ErrDuplicateKey si el código existe.
func (uc *CatalogUseCase) CreateWarehouse(ctx context.Context, actor entity.Actor, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := domain.RequirePrivileged(actor.Privileged); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = entity.DefaultWarehouseName(code)
	}
	wh := &entity.Warehouse{ID: uuid.New().String(), Code: code, Name: name, CreatedAt: time.Now()}
	if err := uc.warehouseRepo.Create(ctx, wh); err != nil {
		return nil, err
	}
	uc.log.Info().Str("code", code).Str("user", actor.Username).Msg("almacén creado")
	return &dto.WarehouseResponse{ID: wh.ID, Code: wh.Code, Name: wh.Name}, nil
}

// ListWarehouses lista todos los almacenes.
func (uc *CatalogUseCase) ListWarehouses(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.WarehouseResponse{ID: w.ID, Code: w.Code, Name: w.Name})
	}
	return out, nil
}

// CreateLocation crea una ubicación. ErrDuplicateKey si el código existe.
func (uc *CatalogUseCase) CreateLocation(ctx context.Context, actor entity.Actor, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if err := domain.RequirePrivileged(actor.Privileged); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	loc := &entity.Location{ID: uuid.New().String(), Code: code, CreatedAt: time.Now()}
	if err := uc.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return &dto.LocationResponse{ID: loc.ID, Code: loc.Code}, nil
}

// ListLocations lista ubicaciones hasta limit (acotado al tope de página).
func (uc *CatalogUseCase) ListLocations(ctx context.Context, limit int) ([]dto.LocationResponse, error) {
	if limit <= 0 || limit > uc.maxPage {
		limit = uc.maxPage
	}
	list, err := uc.locationRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.LocationResponse{ID: l.ID, Code: l.Code})
	}
	return out, nil
}

// FindOrCreateSupplier devuelve el proveedor, creándolo si no existe. Nunca falla por
// duplicado. Un nombre vacío significa "sin proveedor": devuelve (nil, nil), igual que
// una recepción sin proveedor.
func (uc *CatalogUseCase) FindOrCreateSupplier(ctx context.Context, name string) (*dto.SupplierResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	s, err := uc.supplierRepo.FindOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name}, nil
}

// ListSuppliers lista los proveedores conocidos.
func (uc *CatalogUseCase) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}
