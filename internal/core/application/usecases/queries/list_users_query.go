package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
)

// ListUsersQuery retrieves users with optional filters. Nil filters match
// everything; the email filter is a case-insensitive substring match.
type ListUsersQuery struct {
	isActive      *bool
	emailContains *string

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a query to list users. Both filters are
// optional.
func NewListUsersQuery(isActive *bool, emailContains *string) ListUsersQuery {
	return ListUsersQuery{
		isActive:      isActive,
		emailContains: emailContains,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// IsActive returns the active-flag filter, or nil when unset.
func (q ListUsersQuery) IsActive() *bool {
	return q.isActive
}

// EmailContains returns the email substring filter, or nil when unset.
func (q ListUsersQuery) EmailContains() *string {
	return q.emailContains
}
