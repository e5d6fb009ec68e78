package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserByEmailQueryHandler retrieves a single user row by exact email.
// A missing user is not an error: the handler returns (nil, nil).
type GetUserByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByEmailQueryHandler creates a handler for user lookups by email.
func NewGetUserByEmailQueryHandler(db *gorm.DB) GetUserByEmailQueryHandler {
	return GetUserByEmailQueryHandler{db: db}
}

// Handle executes the lookup. Returns nil without an error when no user
// matches the email.
func (h GetUserByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetUserByEmailQuery,
) (*UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE email = ?
	`, query.Email()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	resp, err := scanUserRow(rows)
	if err != nil {
		return nil, err
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &resp, nil
}
