package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/user"
	"orders/internal/pkg/errs"
)

// AuthenticateUserCommandHandler verifies a credential pair.
// No-match is a value, not an error: unknown email, wrong password, and an
// inactive account all yield the same nil result, so the caller cannot
// enumerate which part failed. The handler never mutates anything and never
// commits.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAuthenticateUserCommandHandler creates a handler for credential checks.
func NewAuthenticateUserCommandHandler(uowFactory UserUoWFactory) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the credentials. Returns the user on an exact match and
// (nil, nil) on any mismatch.
func (h *AuthenticateUserCommandHandler) Handle(
	ctx context.Context,
	cmd AuthenticateUserCommand,
) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !existing.IsActive() {
		return nil, nil
	}

	if !verifyPassword(existing.PasswordHash(), cmd.Password()) {
		return nil, nil
	}

	return existing, nil
}
