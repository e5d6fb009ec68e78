package queries

import (
	"context"

	"gorm.io/gorm"
)

// UserExistsQueryHandler answers email existence checks without loading the
// row.
type UserExistsQueryHandler struct {
	db *gorm.DB
}

// NewUserExistsQueryHandler creates a handler for email existence checks.
func NewUserExistsQueryHandler(db *gorm.DB) UserExistsQueryHandler {
	return UserExistsQueryHandler{db: db}
}

// Handle reports whether a user with the query's email exists.
func (h UserExistsQueryHandler) Handle(ctx context.Context, query UserExistsQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var exists bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = ?
		)
	`, query.Email()).Scan(&exists).Error
	if err != nil {
		return false, err
	}

	return exists, nil
}
