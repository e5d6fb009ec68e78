package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrUnitPriceIsInvalid    = errors.New("unit price must not be negative")
)

// CreateOrderCommand represents a request to place a new order for a user.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	userID      kernel.UUID
	productName string
	quantity    int
	unitPrice   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, a non-empty product name, a positive quantity, and
// a non-negative unit price. Configured bounds (maximum quantity, minimum
// order value) are the handler's concern.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setProductName(productName),
		cmd.setQuantity(quantity),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the owning user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductName returns the ordered product's name.
func (c CreateOrderCommand) ProductName() string {
	return c.productName
}

// Quantity returns the ordered quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the price of a single unit.
func (c CreateOrderCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}
	c.productName = productName
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return ErrUnitPriceIsInvalid
	}
	c.unitPrice = unitPrice
	return nil
}
