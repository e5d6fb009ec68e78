package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TotalSpentByUserQueryHandler sums total_amount over a user's completed
// orders. Users with no completed orders spend exactly zero.
type TotalSpentByUserQueryHandler struct {
	db *gorm.DB
}

// NewTotalSpentByUserQueryHandler creates a handler for completed-order
// spend sums.
func NewTotalSpentByUserQueryHandler(db *gorm.DB) TotalSpentByUserQueryHandler {
	return TotalSpentByUserQueryHandler{db: db}
}

// Handle returns the exact decimal sum of the user's completed orders.
func (h TotalSpentByUserQueryHandler) Handle(
	ctx context.Context,
	query TotalSpentByUserQuery,
) (decimal.Decimal, error) {
	if err := query.Validate(); err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE user_id = ? AND status = ?
	`, query.UserID().Bytes(), order.Completed.String()).Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
