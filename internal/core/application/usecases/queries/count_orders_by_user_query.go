package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrCountOrdersByUserQueryIsNotConstructed = errors.New(
		"CountOrdersByUserQuery must be created via NewCountOrdersByUserQuery constructor",
	)
)

// CountOrdersByUserQuery counts all orders owned by one user.
type CountOrdersByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCountOrdersByUserQuery creates a query to count a user's orders.
func NewCountOrdersByUserQuery(userID kernel.UUID) (CountOrdersByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return CountOrdersByUserQuery{}, err
	}
	return CountOrdersByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByUserQueryIsNotConstructed)
}

// UserID returns the owner whose orders are counted.
func (q CountOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}
