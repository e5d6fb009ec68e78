package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersByUserQueryHandler retrieves one user's orders, newest first.
type ListOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersByUserQueryHandler creates a handler for per-user order
// listings.
func NewListOrdersByUserQueryHandler(db *gorm.DB) ListOrdersByUserQueryHandler {
	return ListOrdersByUserQueryHandler{db: db}
}

// Handle executes the listing. An empty result is an empty slice, not nil.
func (h ListOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByUserQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = ?`
	args := []any{query.UserID().Bytes()}

	if status := query.Status(); status != nil {
		sql += ` AND status = ?`
		args = append(args, status.String())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
