package analytics

import (
	"context"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/domain/repository"
)

// AlertsUseCase artículos en quiebre y su tabla exportable.
type AlertsUseCase struct {
	itemRepo repository.ItemRepository
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(itemRepo repository.ItemRepository) *AlertsUseCase {
	return &AlertsUseCase{itemRepo: itemRepo}
}

// ListBelowMinimum filas de alerta (stock < mínimo).
func (uc *AlertsUseCase) ListBelowMinimum(ctx context.Context) ([]dto.AlertRowDTO, error) {
	list, err := uc.itemRepo.ListBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.AlertRowDTO, 0, len(list))
	for _, i := range list {
		rows = append(rows, toAlertRow(i))
	}
	return rows, nil
}

// ExportBelowMinimum tabla con encabezados fijos; sin quiebres devuelve solo encabezados.
func (uc *AlertsUseCase) ExportBelowMinimum(ctx context.Context) (*dto.AlertTable, error) {
	rows, err := uc.ListBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	headers := make([]string, len(dto.AlertHeaders))
	copy(headers, dto.AlertHeaders)
	return &dto.AlertTable{Headers: headers, Rows: rows}, nil
}

func toAlertRow(i *entity.Item) dto.AlertRowDTO {
	return dto.AlertRowDTO{
		Material:      i.Material,
		Description:   i.Description,
		Stock:         i.Stock,
		StockMin:      i.StockMin,
		WarehouseCode: i.WarehouseCode,
		LocationCode:  i.LocationCode,
	}
}
