package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxProductNameLength bounds the product name column.
const MaxProductNameLength = 200

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a customer order.
//
// Invariants maintained by the aggregate:
//   - quantity is a positive integer
//   - product name is non-empty and at most MaxProductNameLength characters
//   - unit price is non-negative with at most two decimal places
//   - totalAmount always equals quantity × unitPrice (exact fixed-point
//     arithmetic, recalculated on every quantity or price change)
//   - status only moves through the transition table in Status
//
// Configuration-dependent bounds (maximum quantity, minimum order value)
// are enforced by the command handlers, which own the configured limits.
type Order struct {
	id          kernel.UUID
	userID      kernel.UUID
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	totalAmount decimal.Decimal
	status      Status

	isConstructed bool
}

// NewOrder creates a pending order, deriving the total from quantity and
// unit price. All arguments are validated; the first invalid one wins.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setProductName(productName),
		o.setQuantity(quantity),
		o.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	o.recalculateTotal()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total is
// kept as-is; it was derived at write time.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	totalAmount decimal.Decimal,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setProductName(productName),
		o.setQuantity(quantity),
		o.setUnitPrice(unitPrice),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.totalAmount = totalAmount
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the owning user.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ProductName returns the ordered product's name.
func (o *Order) ProductName() string {
	return o.productName
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// UnitPrice returns the price of a single unit.
func (o *Order) UnitPrice() decimal.Decimal {
	return o.unitPrice
}

// TotalAmount returns the derived order total (quantity × unit price).
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// EnsureEditable fails when the order is in a terminal status. Terminal
// orders are immutable for field edits as well as status changes.
func (o *Order) EnsureEditable() error {
	if o.status.IsTerminal() {
		return errs.NewValidationErrorf("Cannot update %s orders", o.status)
	}
	return nil
}

// EnsureDeletable fails for completed orders. Pending and cancelled orders
// may be deleted.
func (o *Order) EnsureDeletable() error {
	if o.status == Completed {
		return errs.NewValidationError("Cannot delete completed orders")
	}
	return nil
}

// ChangeProductName overwrites the product name.
func (o *Order) ChangeProductName(name string) error {
	return o.setProductName(name)
}

// ChangeQuantity updates the quantity and recalculates the total.
func (o *Order) ChangeQuantity(quantity int) error {
	if err := o.setQuantity(quantity); err != nil {
		return err
	}
	o.recalculateTotal()
	return nil
}

// ChangeUnitPrice updates the unit price and recalculates the total.
func (o *Order) ChangeUnitPrice(unitPrice decimal.Decimal) error {
	if err := o.setUnitPrice(unitPrice); err != nil {
		return err
	}
	o.recalculateTotal()
	return nil
}

// ChangeStatus moves the order to target if the transition table allows it.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete marks a pending order as completed.
func (o *Order) Complete() error {
	if o.status != Pending {
		return errs.NewValidationError("Only pending orders can be completed")
	}
	o.status = Completed
	return nil
}

// Cancel marks the order as cancelled. Completed orders cannot be cancelled;
// cancelling twice is reported distinctly.
func (o *Order) Cancel() error {
	if o.status == Completed {
		return errs.NewValidationError("Cannot cancel completed orders")
	}
	if o.status == Cancelled {
		return errs.NewValidationError("Order is already cancelled")
	}
	o.status = Cancelled
	return nil
}

// recalculateTotal derives the total from quantity and unit price using
// exact decimal arithmetic.
func (o *Order) recalculateTotal() {
	o.totalAmount = o.unitPrice.Mul(decimal.NewFromInt(int64(o.quantity)))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	if len(name) > MaxProductNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"productName",
			fmt.Errorf("length %d exceeds maximum of %d", len(name), MaxProductNameLength),
		)
	}
	o.productName = name
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	if unitPrice.Exponent() < -2 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s has more than 2 decimal places", unitPrice),
		)
	}
	o.unitPrice = unitPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
