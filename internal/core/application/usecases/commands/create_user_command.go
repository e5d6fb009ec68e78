package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// CreateUserCommand represents a request to register a new user.
// The full name is optional; the password travels as plaintext only as far
// as the handler, which hashes it before anything is persisted.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	fullName string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a new user.
// Email and password are required; full name may be blank.
func NewCreateUserCommand(email, password, fullName string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return CreateUserCommand{}, err
	}

	cmd.fullName = fullName
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Email returns the new user's email / login identifier.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the handler.
func (c CreateUserCommand) Password() string {
	return c.password
}

// FullName returns the optional full name.
func (c CreateUserCommand) FullName() string {
	return c.fullName
}

func (c *CreateUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}
