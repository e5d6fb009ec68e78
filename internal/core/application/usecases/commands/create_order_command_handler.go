package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler handles order placement.
//
// Rule order (first failure wins): the owning user must exist, the account
// must be active, the quantity must not exceed the configured maximum, and
// the derived total must reach the configured minimum. Limits are injected
// at construction rather than read from process-wide state.
type CreateOrderCommandHandler struct {
	uowFactory    UoWFactory
	notifier      ports.OrderNotifier
	maxQuantity   int
	minOrderValue decimal.Decimal
}

// NewCreateOrderCommandHandler creates a handler for order placement with
// the configured quantity and order-value bounds.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.OrderNotifier,
	maxQuantity int,
	minOrderValue decimal.Decimal,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		maxQuantity:   maxQuantity,
		minOrderValue: minOrderValue,
	}
}

// Handle processes the order creation command and returns the new pending
// order. The notifier fires only after a successful commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	owner, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValidationError("User not found")
		}
		return nil, err
	}

	if !owner.IsActive() {
		return nil, errs.NewValidationError("User account is not active")
	}

	if cmd.Quantity() > h.maxQuantity {
		return nil, errs.NewValidationErrorf(
			"Quantity cannot exceed %d units per order", h.maxQuantity)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		owner.ID(),
		cmd.ProductName(),
		cmd.Quantity(),
		cmd.UnitPrice(),
	)
	if err != nil {
		return nil, err
	}

	if newOrder.TotalAmount().LessThan(h.minOrderValue) {
		return nil, errs.NewValidationErrorf(
			"Order total must be at least $%s", h.minOrderValue.StringFixed(2))
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderCreated(ctx, newOrder)
	return newOrder, nil
}
