package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUserStatisticsQueryHandler aggregates a user's order activity in a
// single round trip. The aggregate exists even for unknown users: all
// counters are zero and the email is nil.
type GetUserStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserStatisticsQueryHandler creates a handler for user statistics.
func NewGetUserStatisticsQueryHandler(db *gorm.DB) GetUserStatisticsQueryHandler {
	return GetUserStatisticsQueryHandler{db: db}
}

// Handle computes the statistics report for the queried user.
func (h GetUserStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetUserStatisticsQuery,
) (GetUserStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserStatisticsQueryResponse{}, err
	}

	resp := GetUserStatisticsQueryResponse{
		UserID:            query.UserID(),
		TotalSpent:        decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}

	var row struct {
		UserEmail       *string
		TotalOrders     int64
		PendingOrders   int64
		CompletedOrders int64
		TotalSpent      decimal.Decimal
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT email FROM users WHERE id = @userID) AS user_email,
			COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE status = @pending) AS pending_orders,
			COUNT(*) FILTER (WHERE status = @completed) AS completed_orders,
			COALESCE(SUM(total_amount) FILTER (WHERE status = @completed), 0) AS total_spent
		FROM orders
		WHERE user_id = @userID
	`,
		map[string]any{
			"userID":    query.UserID().Bytes(),
			"pending":   order.Pending.String(),
			"completed": order.Completed.String(),
		},
	).Scan(&row).Error
	if err != nil {
		return GetUserStatisticsQueryResponse{}, err
	}

	resp.UserEmail = row.UserEmail
	resp.TotalOrders = row.TotalOrders
	resp.PendingOrders = row.PendingOrders
	resp.CompletedOrders = row.CompletedOrders
	resp.TotalSpent = row.TotalSpent

	if row.TotalOrders > 0 {
		resp.AverageOrderValue = row.TotalSpent.Div(decimal.NewFromInt(row.TotalOrders))
	}

	return resp, nil
}
