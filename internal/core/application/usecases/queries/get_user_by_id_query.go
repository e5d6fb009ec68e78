package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrGetUserByIDQueryIsNotConstructed = errors.New(
		"GetUserByIDQuery must be created via NewGetUserByIDQuery constructor",
	)
)

// GetUserByIDQuery retrieves a single user by identifier.
type GetUserByIDQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserByIDQuery creates a query to retrieve a user by identifier.
func NewGetUserByIDQuery(userID kernel.UUID) (GetUserByIDQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserByIDQuery{}, err
	}
	return GetUserByIDQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByIDQueryIsNotConstructed)
}

// UserID returns the identifier of the user to look up.
func (q GetUserByIDQuery) UserID() kernel.UUID {
	return q.userID
}
