package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateUserCommandIsNotConstructed = errors.New(
		"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
	)
)

// UpdateUserCommand represents a partial update of a user. Nil fields are
// left untouched; a non-nil blank full name clears the stored value.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    *string
	fullName *string
	password *string

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to update an existing user.
// Supplied email or password values must be non-empty.
func NewUpdateUserCommand(userID kernel.UUID, email, fullName, password *string) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return UpdateUserCommand{}, err
	}
	if email != nil && *email == "" {
		return UpdateUserCommand{}, ErrEmailIsRequired
	}
	if password != nil && *password == "" {
		return UpdateUserCommand{}, ErrPasswordIsRequired
	}

	cmd.email = email
	cmd.fullName = fullName
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to update.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the new email, or nil when unchanged.
func (c UpdateUserCommand) Email() *string {
	return c.email
}

// FullName returns the new full name, or nil when unchanged.
func (c UpdateUserCommand) FullName() *string {
	return c.fullName
}

// Password returns the new plaintext password, or nil when unchanged.
func (c UpdateUserCommand) Password() *string {
	return c.password
}

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
