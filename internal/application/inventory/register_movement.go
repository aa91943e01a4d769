package inventory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	domaininv "github.com/jhoicas/panol-api/internal/domain/inventory"
	"github.com/jhoicas/panol-api/pkg/logger"
)

const defaultAdjustObservation = "Ajuste manual"

// RegisterMovementUseCase es el único punto de entrada que modifica stock: aplica
// RECEIPT, ISSUE, RETURN y ADJUST de forma transaccional con bloqueo de fila del artículo.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	defaultShift string
	log          *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, defaultShift string, log *logger.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		defaultShift: defaultShift,
		log:          log,
	}
}

// MovementInput entrada para aplicar un movimiento. Quantity es la cantidad pedida
// (no negativa) salvo en ADJUST, donde es el delta con signo.
type MovementInput struct {
	Kind          entity.MovementKind
	Material      string
	Quantity      decimal.Decimal
	Supplier      string // solo RECEIPT
	DeliveryNote  string // solo RECEIPT
	Invoice       string // solo RECEIPT
	Sector        string // solo ISSUE
	Observation   string
	WarehouseFrom string
	WarehouseTo   string
}

// MovementResult resultado de un movimiento aplicado.
type MovementResult struct {
	Movement          *entity.Movement
	Stock             decimal.Decimal // stock del artículo después del movimiento
	Requested         decimal.Decimal
	InsufficientStock bool // salida recortada: se registró solo lo disponible
}

// ApplyMovement valida la entrada, bloquea el artículo (SELECT FOR UPDATE), calcula el
// nuevo stock, lo persiste y agrega el asiento al libro en la misma transacción.
func (uc *RegisterMovementUseCase) ApplyMovement(ctx context.Context, actor entity.Actor, in MovementInput) (*MovementResult, error) {
	in.Material = strings.TrimSpace(in.Material)
	if in.Material == "" || !in.Kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.MovementAdjust && in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !domaininv.FitsScale(in.Quantity) {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind == entity.MovementAdjust {
		if err := domain.RequirePrivileged(actor.Privileged); err != nil {
			return nil, err
		}
		if strings.TrimSpace(in.Observation) == "" {
			in.Observation = defaultAdjustObservation
		}
	}
	shift := strings.TrimSpace(actor.Shift)
	if shift == "" {
		shift = uc.defaultShift
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		item, err := repos.Items.GetByMaterialForUpdate(ctx, in.Material)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrUnknownMaterial
		}

		app, ok := domaininv.Apply(in.Kind, item.Stock, in.Quantity)
		if !ok {
			return domain.ErrInvalidInput
		}

		mov := &entity.Movement{
			Kind:        in.Kind,
			ItemID:      item.ID,
			Quantity:    app.Recorded,
			User:        actor.Username,
			Shift:       shift,
			Observation: in.Observation,
		}
		switch in.Kind {
		case entity.MovementReceipt:
			if name := strings.TrimSpace(in.Supplier); name != "" {
				supp, err := repos.Suppliers.FindOrCreate(ctx, name)
				if err != nil {
					return err
				}
				mov.SupplierID = &supp.ID
				mov.SupplierName = supp.Name
			}
			mov.DeliveryNote = in.DeliveryNote
			mov.Invoice = in.Invoice
			mov.WarehouseTo = in.WarehouseTo
		case entity.MovementIssue:
			mov.Sector = in.Sector
			mov.WarehouseFrom = in.WarehouseFrom
		case entity.MovementAdjust:
			mov.WarehouseFrom = in.WarehouseFrom
			mov.WarehouseTo = in.WarehouseTo
		}

		if err := repos.Items.SetStock(ctx, item.ID, app.NewStock); err != nil {
			return err
		}
		if err := repos.Movements.Append(ctx, mov); err != nil {
			return err
		}
		mov.Material = item.Material
		mov.Description = item.Description

		result = &MovementResult{
			Movement:          mov,
			Stock:             app.NewStock,
			Requested:         app.Requested,
			InsufficientStock: app.Insufficient,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := uc.log.Info()
	if result.InsufficientStock {
		ev = uc.log.Warn()
	}
	ev.Int64("movement_id", result.Movement.ID).
		Str("kind", string(in.Kind)).
		Str("material", in.Material).
		Str("requested", result.Requested.String()).
		Str("applied", result.Movement.Quantity.String()).
		Str("stock", result.Stock.String()).
		Str("user", actor.Username).
		Str("shift", shift).
		Bool("insufficient_stock", result.InsufficientStock).
		Msg("movimiento registrado")

	return result, nil
}
