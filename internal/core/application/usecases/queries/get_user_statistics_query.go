package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetUserStatisticsQueryIsNotConstructed = errors.New(
		"GetUserStatisticsQuery must be created via NewGetUserStatisticsQuery constructor",
	)
)

// GetUserStatisticsQuery aggregates a user's order activity into a single
// report.
//
// Example:
//
//	query, err := NewGetUserStatisticsQuery(userID)
//	if err != nil {
//	    return err
//	}
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, $%s spent\n", stats.TotalOrders, stats.TotalSpent)
type GetUserStatisticsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserStatisticsQuery creates a query for a user's order statistics.
func NewGetUserStatisticsQuery(userID kernel.UUID) (GetUserStatisticsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserStatisticsQuery{}, err
	}
	return GetUserStatisticsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserStatisticsQueryIsNotConstructed)
}

// UserID returns the user whose activity is aggregated.
func (q GetUserStatisticsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserStatisticsQueryResponse is the aggregated activity report.
// TotalSpent sums completed orders only; AverageOrderValue is TotalSpent
// divided by TotalOrders, zero when the user has no orders. UserEmail is nil
// when the user row does not exist.
type GetUserStatisticsQueryResponse struct {
	UserID            kernel.UUID
	UserEmail         *string
	TotalOrders       int64
	PendingOrders     int64
	CompletedOrders   int64
	TotalSpent        decimal.Decimal
	AverageOrderValue decimal.Decimal
}
