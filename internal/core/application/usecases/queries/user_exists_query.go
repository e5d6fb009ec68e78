package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrUserExistsQueryIsNotConstructed = errors.New(
		"UserExistsQuery must be created via NewUserExistsQuery constructor",
	)
)

// UserExistsQuery checks whether a user with the given email exists.
type UserExistsQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewUserExistsQuery creates an existence-check query for an email.
func NewUserExistsQuery(email string) (UserExistsQuery, error) {
	if email == "" {
		return UserExistsQuery{}, ErrEmailIsRequired
	}
	return UserExistsQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q UserExistsQuery) Validate() error {
	return q.guard.Validate(ErrUserExistsQueryIsNotConstructed)
}

// Email returns the email to check.
func (q UserExistsQuery) Email() string {
	return q.email
}
