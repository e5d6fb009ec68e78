package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListUsersQueryHandler retrieves user rows matching the query's filters,
// newest first.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for filtered user listings.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the listing. An empty result is an empty slice, not nil.
func (h ListUsersQueryHandler) Handle(
	ctx context.Context,
	query ListUsersQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + userColumns + `
		FROM users
		WHERE 1 = 1`
	args := make([]any, 0, 2)

	if isActive := query.IsActive(); isActive != nil {
		sql += ` AND is_active = ?`
		args = append(args, *isActive)
	}
	if emailContains := query.EmailContains(); emailContains != nil {
		sql += ` AND email ILIKE ?`
		args = append(args, "%"+*emailContains+"%")
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserResponse, 0)
	for rows.Next() {
		resp, scanErr := scanUserRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
