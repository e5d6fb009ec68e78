package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrGetUserByEmailQueryIsNotConstructed = errors.New(
		"GetUserByEmailQuery must be created via NewGetUserByEmailQuery constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
)

// GetUserByEmailQuery retrieves a single user by exact email match.
type GetUserByEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetUserByEmailQuery creates a query to retrieve a user by email.
func NewGetUserByEmailQuery(email string) (GetUserByEmailQuery, error) {
	if email == "" {
		return GetUserByEmailQuery{}, ErrEmailIsRequired
	}
	return GetUserByEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByEmailQueryIsNotConstructed)
}

// Email returns the email to look up.
func (q GetUserByEmailQuery) Email() string {
	return q.email
}
