// Package analytics contiene las consultas de solo lectura del pañol: tablero,
// alertas de quiebre y reconciliación del libro.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/application/inventory"
	"github.com/jhoicas/panol-api/internal/domain/repository"
)

const dashboardRecentMovements = 10 // asientos en el widget del tablero

// DashboardUseCase genera el resumen del tablero. Se recalcula en cada llamada.
type DashboardUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// GetSummary devuelve totales y los últimos movimientos.
//
// Dos llamadas en paralelo:
//  1. Stats()        → TotalItems, BelowMinimum, TotalStock
//  2. List("", 10)   → RecentMovements
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type statsResult struct {
		stats repository.ItemStats
		err   error
	}
	type recentResult struct {
		rows []dto.MovementResponse
		err  error
	}

	statsCh := make(chan statsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		s, err := uc.itemRepo.Stats(ctx)
		statsCh <- statsResult{s, err}
	}()
	go func() {
		list, err := uc.movRepo.List(ctx, "", dashboardRecentMovements)
		if err != nil {
			recentCh <- recentResult{nil, err}
			return
		}
		recentCh <- recentResult{inventory.ToMovementResponses(list), nil}
	}()

	stats := <-statsCh
	recent := <-recentCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", stats.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", recent.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalItems:      stats.stats.TotalItems,
		BelowMinimum:    stats.stats.BelowMinimum,
		TotalStock:      stats.stats.TotalStock.IntPart(),
		RecentMovements: recent.rows,
	}, nil
}
