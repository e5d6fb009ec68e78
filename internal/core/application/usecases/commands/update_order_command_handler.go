package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// UpdateOrderCommandHandler handles field edits and explicit status
// transitions on an order.
//
// Terminal orders reject every edit. The total is recomputed only when the
// quantity or unit price actually changed, and is then re-checked against
// the configured minimum. All changes persist as one write.
type UpdateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	notifier      ports.OrderNotifier
	maxQuantity   int
	minOrderValue decimal.Decimal
}

// NewUpdateOrderCommandHandler creates a handler for order updates with the
// configured quantity and order-value bounds.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	maxQuantity int,
	minOrderValue decimal.Decimal,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		maxQuantity:   maxQuantity,
		minOrderValue: minOrderValue,
	}
}

// Handle processes the order update command and returns the updated order.
// When the update transitioned the order to completed, the notifier fires
// after the commit.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValidationError("Order not found")
		}
		return nil, err
	}

	if err = existing.EnsureEditable(); err != nil {
		return nil, err
	}

	if productName := cmd.ProductName(); productName != nil {
		if err = existing.ChangeProductName(*productName); err != nil {
			return nil, err
		}
	}

	if quantity := cmd.Quantity(); quantity != nil {
		if *quantity > h.maxQuantity {
			return nil, errs.NewValidationErrorf("Quantity cannot exceed %d", h.maxQuantity)
		}
		if err = existing.ChangeQuantity(*quantity); err != nil {
			return nil, err
		}
	}

	if unitPrice := cmd.UnitPrice(); unitPrice != nil {
		if err = existing.ChangeUnitPrice(*unitPrice); err != nil {
			return nil, err
		}
	}

	if cmd.Quantity() != nil || cmd.UnitPrice() != nil {
		if existing.TotalAmount().LessThan(h.minOrderValue) {
			return nil, errs.NewValidationErrorf(
				"Order total must be at least $%s", h.minOrderValue.StringFixed(2))
		}
	}

	if status := cmd.Status(); status != nil {
		if err = existing.ChangeStatus(*status); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if existing.Status() == order.Completed {
		h.notifier.OrderCompleted(ctx, existing)
	}

	return existing, nil
}
