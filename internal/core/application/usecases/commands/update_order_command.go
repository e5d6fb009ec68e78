package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial update of an order: any subset of
// product name, quantity, unit price, and an explicit status transition.
// Nil fields are left untouched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productName *string
	quantity    *int
	unitPrice   *decimal.Decimal
	status      *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	productName *string,
	quantity *int,
	unitPrice *decimal.Decimal,
	status *order.Status,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}
	if productName != nil && *productName == "" {
		return UpdateOrderCommand{}, ErrProductNameIsRequired
	}
	if quantity != nil && *quantity <= 0 {
		return UpdateOrderCommand{}, ErrQuantityIsInvalid
	}
	if unitPrice != nil && unitPrice.IsNegative() {
		return UpdateOrderCommand{}, ErrUnitPriceIsInvalid
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	cmd.productName = productName
	cmd.quantity = quantity
	cmd.unitPrice = unitPrice
	cmd.status = status
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductName returns the new product name, or nil when unchanged.
func (c UpdateOrderCommand) ProductName() *string {
	return c.productName
}

// Quantity returns the new quantity, or nil when unchanged.
func (c UpdateOrderCommand) Quantity() *int {
	return c.quantity
}

// UnitPrice returns the new unit price, or nil when unchanged.
func (c UpdateOrderCommand) UnitPrice() *decimal.Decimal {
	return c.unitPrice
}

// Status returns the transition target, or nil when no transition was
// requested.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
