package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves orders with optional status and owner filters.
// Nil filters match everything.
//
// Example:
//
//	status := order.Pending
//	query, err := NewListOrdersQuery(&status, nil)
//	if err != nil {
//	    return err
//	}
//
//	pending, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status *order.Status
	userID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. Both filters are
// optional; a provided status must be one of the valid states and a provided
// owner identifier must be constructed.
func NewListOrdersQuery(status *order.Status, userID *kernel.UUID) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{
		status: status,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unset.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// UserID returns the owner filter, or nil when unset.
func (q ListOrdersQuery) UserID() *kernel.UUID {
	return q.userID
}
