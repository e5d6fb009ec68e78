package commands

import (
	"context"
	"errors"

	"orders/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles order deletion.
// Completed orders cannot be deleted; pending and cancelled orders can.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValidationError("Order not found")
		}
		return err
	}

	if err = existing.EnsureDeletable(); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
