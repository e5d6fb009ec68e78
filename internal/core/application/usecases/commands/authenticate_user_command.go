package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrAuthenticateUserCommandIsNotConstructed = errors.New(
		"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
	)
)

// AuthenticateUserCommand represents a credential check: email as the login
// identifier plus a plaintext password to verify against the stored hash.
type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserCommand creates a credential-check command.
func NewAuthenticateUserCommand(email, password string) (AuthenticateUserCommand, error) {
	cmd := AuthenticateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if email == "" {
		return AuthenticateUserCommand{}, ErrEmailIsRequired
	}
	if password == "" {
		return AuthenticateUserCommand{}, ErrPasswordIsRequired
	}

	cmd.email = email
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

// Email returns the login identifier.
func (c AuthenticateUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to verify.
func (c AuthenticateUserCommand) Password() string {
	return c.password
}
