package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOrdersByUserQueryHandler counts a user's orders across all statuses.
type CountOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersByUserQueryHandler creates a handler for per-user order
// counts.
func NewCountOrdersByUserQueryHandler(db *gorm.DB) CountOrdersByUserQueryHandler {
	return CountOrdersByUserQueryHandler{db: db}
}

// Handle returns the number of orders the user owns. Zero for unknown users.
func (h CountOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByUserQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM orders WHERE user_id = ?
	`, query.UserID().Bytes()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
