// Package user contains the User aggregate. The email doubles as the login
// identifier; the password is only ever held as an irreversible hash, which
// is produced and verified by the application layer.
package user

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// MaxFullNameLength bounds the full name column.
const MaxFullNameLength = 255

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through the NewUser or RestoreUser factory functions.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User is the aggregate root for a registered user.
//
// Invariants maintained by the aggregate:
//   - email is non-empty and contains an @ (full format validation happens
//     at the HTTP boundary)
//   - the password hash is never empty
//   - full name is optional and bounded
//
// Email uniqueness spans all users and is therefore enforced by the command
// handlers inside the write transaction, not by the aggregate.
type User struct {
	id           kernel.UUID
	email        string
	fullName     string
	passwordHash string
	isActive     bool

	isConstructed bool
}

// NewUser creates an active user. The caller supplies an already-hashed
// password.
func NewUser(id kernel.UUID, email, fullName, passwordHash string) (*User, error) {
	u := &User{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setFullName(fullName),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence, including the active flag.
func RestoreUser(id kernel.UUID, email, fullName, passwordHash string, isActive bool) (*User, error) {
	u := &User{
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setFullName(fullName),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through a
// factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email, which is also the login identifier.
func (u *User) Email() string {
	return u.email
}

// FullName returns the user's full name; may be blank.
func (u *User) FullName() string {
	return u.fullName
}

// PasswordHash returns the stored irreversible password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsActive reports whether the account is active.
func (u *User) IsActive() bool {
	return u.isActive
}

// ChangeEmail replaces the email and, with it, the login identifier.
// Uniqueness against other users is the command handler's responsibility.
func (u *User) ChangeEmail(email string) error {
	return u.setEmail(email)
}

// Rename overwrites the full name unconditionally; blank is allowed.
func (u *User) Rename(fullName string) error {
	return u.setFullName(fullName)
}

// ChangePasswordHash replaces the stored password hash.
func (u *User) ChangePasswordHash(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

// Deactivate marks the account inactive. Inactive users cannot place orders.
func (u *User) Deactivate() {
	u.isActive = false
}

// Activate marks the account active.
func (u *User) Activate() {
	u.isActive = true
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not an email address", email),
		)
	}
	u.email = email
	return nil
}

func (u *User) setFullName(fullName string) error {
	if len(fullName) > MaxFullNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"fullName",
			fmt.Errorf("length %d exceeds maximum of %d", len(fullName), MaxFullNameLength),
		)
	}
	u.fullName = fullName
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}
