package inventory

import (
	"context"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
)

// Receipt adapta el request HTTP de recepción a ApplyMovement.
func (uc *RegisterMovementUseCase) Receipt(ctx context.Context, actor entity.Actor, in dto.ReceiptRequest) (*dto.ApplyMovementResponse, error) {
	return uc.apply(ctx, actor, MovementInput{
		Kind:         entity.MovementReceipt,
		Material:     in.Material,
		Quantity:     in.Quantity,
		Supplier:     in.Supplier,
		DeliveryNote: in.DeliveryNote,
		Invoice:      in.Invoice,
		Observation:  in.Observation,
		WarehouseTo:  in.WarehouseTo,
	})
}

// Issue adapta el request HTTP de salida a ApplyMovement.
func (uc *RegisterMovementUseCase) Issue(ctx context.Context, actor entity.Actor, in dto.IssueRequest) (*dto.ApplyMovementResponse, error) {
	return uc.apply(ctx, actor, MovementInput{
		Kind:          entity.MovementIssue,
		Material:      in.Material,
		Quantity:      in.Quantity,
		Sector:        in.Sector,
		Observation:   in.Observation,
		WarehouseFrom: in.WarehouseFrom,
	})
}

// Return adapta el request HTTP de devolución a ApplyMovement.
func (uc *RegisterMovementUseCase) Return(ctx context.Context, actor entity.Actor, in dto.ReturnRequest) (*dto.ApplyMovementResponse, error) {
	return uc.apply(ctx, actor, MovementInput{
		Kind:        entity.MovementReturn,
		Material:    in.Material,
		Quantity:    in.Quantity,
		Observation: in.Observation,
	})
}

// Adjust adapta el request HTTP de ajuste a ApplyMovement.
func (uc *RegisterMovementUseCase) Adjust(ctx context.Context, actor entity.Actor, in dto.AdjustmentRequest) (*dto.ApplyMovementResponse, error) {
	return uc.apply(ctx, actor, MovementInput{
		Kind:        entity.MovementAdjust,
		Material:    in.Material,
		Quantity:    in.Delta,
		Observation: in.Observation,
	})
}

func (uc *RegisterMovementUseCase) apply(ctx context.Context, actor entity.Actor, in MovementInput) (*dto.ApplyMovementResponse, error) {
	res, err := uc.ApplyMovement(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	out := &dto.ApplyMovementResponse{
		Movement:          ToMovementResponse(res.Movement),
		Stock:             res.Stock,
		Requested:         res.Requested,
		InsufficientStock: res.InsufficientStock,
	}
	if res.InsufficientStock {
		out.Warning = domain.ErrInsufficientStock.Error()
	}
	return out, nil
}

// ToMovementResponse convierte un asiento del libro a su DTO.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		Date:          m.CreatedAt,
		Kind:          string(m.Kind),
		Material:      m.Material,
		Description:   m.Description,
		Quantity:      m.Quantity,
		User:          m.User,
		Shift:         m.Shift,
		Sector:        m.Sector,
		Supplier:      m.SupplierName,
		DeliveryNote:  m.DeliveryNote,
		Invoice:       m.Invoice,
		Observation:   m.Observation,
		WarehouseFrom: m.WarehouseFrom,
		WarehouseTo:   m.WarehouseTo,
	}
}

// ToMovementResponses convierte una lista de asientos; nunca devuelve nil.
func ToMovementResponses(list []*entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out
}
