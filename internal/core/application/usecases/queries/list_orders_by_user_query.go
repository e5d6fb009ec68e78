package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersByUserQueryIsNotConstructed = errors.New(
		"ListOrdersByUserQuery must be created via NewListOrdersByUserQuery constructor",
	)
)

// ListOrdersByUserQuery retrieves all orders owned by one user, optionally
// narrowed to a single status.
type ListOrdersByUserQuery struct {
	userID kernel.UUID
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersByUserQuery creates a query to list a user's orders.
func NewListOrdersByUserQuery(userID kernel.UUID, status *order.Status) (ListOrdersByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListOrdersByUserQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersByUserQuery{}, err
		}
	}
	return ListOrdersByUserQuery{
		userID: userID,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByUserQueryIsNotConstructed)
}

// UserID returns the owner whose orders are listed.
func (q ListOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}

// Status returns the status filter, or nil when unset.
func (q ListOrdersByUserQuery) Status() *order.Status {
	return q.status
}
