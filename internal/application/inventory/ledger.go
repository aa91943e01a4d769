package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain/repository"
)

// LedgerUseCase consultas de solo lectura sobre el libro de movimientos.
type LedgerUseCase struct {
	movRepo repository.MovementRepository
	maxPage int
}

// NewLedgerUseCase construye el caso de uso. maxPage acota cualquier listado.
func NewLedgerUseCase(movRepo repository.MovementRepository, maxPage int) *LedgerUseCase {
	return &LedgerUseCase{movRepo: movRepo, maxPage: maxPage}
}

// ListMovements devuelve los asientos más recientes primero, filtrados opcionalmente por
// subcadena del material o la descripción. limit <= 0 o mayor al tope usa el tope.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, filter string, limit int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(ctx, strings.TrimSpace(filter), ClampLimit(limit, uc.maxPage))
	if err != nil {
		return nil, err
	}
	out := ToMovementResponses(list)
	return &dto.MovementListResponse{Movements: out, Total: len(out)}, nil
}

// ClampLimit normaliza un límite de página al rango (0, max].
func ClampLimit(limit, max int) int {
	if limit <= 0 || limit > max {
		return max
	}
	return limit
}
