package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Lookup methods return an ObjectNotFoundError (errs.ErrObjectNotFound)
// when no row matches; callers translate that into domain outcomes.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Delete removes the user row.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its login identifier.
	// Email matching is exact (case-sensitive storage).
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
