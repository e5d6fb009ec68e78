package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserByIDQueryHandler retrieves a single user row from the database.
// A missing user is not an error: the handler returns (nil, nil).
//
// Example:
//
//	handler := NewGetUserByIDQueryHandler(db)
//	query, err := NewGetUserByIDQuery(userID)
//	if err != nil {
//	    return err
//	}
//
//	user, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if user == nil {
//	    return echo.NewHTTPError(http.StatusNotFound)
//	}
type GetUserByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByIDQueryHandler creates a handler for user lookups by identifier.
func NewGetUserByIDQueryHandler(db *gorm.DB) GetUserByIDQueryHandler {
	return GetUserByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns nil without an error when no user
// matches the identifier.
func (h GetUserByIDQueryHandler) Handle(
	ctx context.Context,
	query GetUserByIDQuery,
) (*UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Rows()
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
