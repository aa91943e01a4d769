package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	domaininv "github.com/jhoicas/panol-api/internal/domain/inventory"
	"github.com/jhoicas/panol-api/pkg/logger"
)

// ImportUseCase carga masiva de artículos en una sola transacción.
//
// Es la única excepción a "el motor es el único que escribe stock": cuando la fila trae
// Stock, el valor se sobrescribe sin asiento en el libro (carga inicial de datos).
// El desvío resultante queda visible en analytics.ReconcileUseCase.
type ImportUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner TxRunner, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner, log: log}
}

// ImportItems crea o actualiza cada fila. Los almacenes y ubicaciones desconocidos se crean
// al vuelo; las filas sin material se omiten. Si una fila falla no se importa ninguna.
func (uc *ImportUseCase) ImportItems(ctx context.Context, actor entity.Actor, rows []dto.ImportRow) (*dto.ImportResponse, error) {
	out := &dto.ImportResponse{}
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		*out = dto.ImportResponse{}
		for _, row := range rows {
			material := strings.TrimSpace(row.Material)
			if material == "" {
				out.Skipped++
				continue
			}
			item, err := repos.Items.GetByMaterialForUpdate(ctx, material)
			if err != nil {
				return err
			}
			created := item == nil
			if created {
				item = &entity.Item{
					ID:       uuid.New().String(),
					Material: material,
					Stock:    decimal.Zero,
					StockMin: decimal.Zero,
				}
			}
			if desc := strings.TrimSpace(row.Description); desc != "" {
				item.Description = desc
			}
			if row.StockMin != nil {
				if row.StockMin.IsNegative() || !domaininv.FitsScale(*row.StockMin) {
					return domain.ErrInvalidInput
				}
				item.StockMin = *row.StockMin
			}
			if row.Stock != nil && !domaininv.FitsScale(*row.Stock) {
				return domain.ErrInvalidInput
			}
			if code := strings.TrimSpace(row.WarehouseCode); code != "" {
				wh, err := findOrCreateWarehouse(ctx, repos, code)
				if err != nil {
					return err
				}
				item.WarehouseID, item.WarehouseCode = &wh.ID, wh.Code
			}
			if code := strings.TrimSpace(row.LocationCode); code != "" {
				loc, err := findOrCreateLocation(ctx, repos, code)
				if err != nil {
					return err
				}
				item.LocationID, item.LocationCode = &loc.ID, loc.Code
			}

			if created {
				if err := repos.Items.Create(ctx, item); err != nil {
					return err
				}
				out.Created++
			} else {
				if err := repos.Items.Update(ctx, item); err != nil {
					return err
				}
				out.Updated++
			}

			if row.Stock != nil && !row.Stock.Equal(item.Stock) {
				if err := repos.Items.SetStock(ctx, item.ID, *row.Stock); err != nil {
					return err
				}
				uc.log.Warn().
					Str("material", material).
					Str("previous", item.Stock.String()).
					Str("stock", row.Stock.String()).
					Str("user", actor.Username).
					Msg("stock sobrescrito por importación sin movimiento")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int("created", out.Created).
		Int("updated", out.Updated).
		Int("skipped", out.Skipped).
		Str("user", actor.Username).
		Msg("importación completada")
	return out, nil
}

func findOrCreateWarehouse(ctx context.Context, repos Repos, code string) (*entity.Warehouse, error) {
	wh, err := repos.Warehouses.GetByCode(ctx, code)
	if err != nil || wh != nil {
		return wh, err
	}
	wh = &entity.Warehouse{ID: uuid.New().String(), Code: code, Name: entity.DefaultWarehouseName(code)}
	if err := repos.Warehouses.Create(ctx, wh); err != nil {
		return nil, err
	}
	return wh, nil
}

func findOrCreateLocation(ctx context.Context, repos Repos, code string) (*entity.Location, error) {
	loc, err := repos.Locations.GetByCode(ctx, code)
	if err != nil || loc != nil {
		return loc, err
	}
	loc = &entity.Location{ID: uuid.New().String(), Code: code}
	if err := repos.Locations.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}
