package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrTotalSpentByUserQueryIsNotConstructed = errors.New(
		"TotalSpentByUserQuery must be created via NewTotalSpentByUserQuery constructor",
	)
)

// TotalSpentByUserQuery sums the totals of a user's completed orders.
// Pending and cancelled orders never count as spend.
type TotalSpentByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTotalSpentByUserQuery creates a query for a user's completed-order
// spend.
func NewTotalSpentByUserQuery(userID kernel.UUID) (TotalSpentByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return TotalSpentByUserQuery{}, err
	}
	return TotalSpentByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TotalSpentByUserQuery) Validate() error {
	return q.guard.Validate(ErrTotalSpentByUserQueryIsNotConstructed)
}

// UserID returns the owner whose spend is summed.
func (q TotalSpentByUserQuery) UserID() kernel.UUID {
	return q.userID
}
