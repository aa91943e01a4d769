package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/domain/repository"
)

// ReconcileUseCase compara el stock materializado con la suma del libro.
// El único origen legítimo de desvío es la importación masiva.
type ReconcileUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *ReconcileUseCase {
	return &ReconcileUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// Reconcile lista los artículos cuyo stock difiere de Σ deltas (solo keyuser).
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, actor entity.Actor) ([]dto.DriftDTO, error) {
	if err := domain.RequirePrivileged(actor.Privileged); err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconciliación: artículos: %w", err)
	}
	sums, err := uc.movRepo.SumByItem(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconciliación: libro: %w", err)
	}
	drifts := make([]dto.DriftDTO, 0)
	for _, i := range items {
		total, ok := sums[i.ID]
		if !ok {
			total = decimal.Zero
		}
		if i.Stock.Equal(total) {
			continue
		}
		drifts = append(drifts, dto.DriftDTO{
			Material:    i.Material,
			Stock:       i.Stock,
			LedgerTotal: total,
			Difference:  i.Stock.Sub(total),
		})
	}
	return drifts, nil
}
