package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/user"
	"orders/internal/pkg/errs"
)

// UpdateUserCommandHandler handles partial user updates.
// An email change re-checks uniqueness against all other users; updating to
// the user's own current email is a no-op. A supplied password is re-hashed.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for user updates.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user update command and returns the updated user.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
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

	userRepo := uow.UserRepository()

	existing, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValidationError("User not found")
		}
		return nil, err
	}

	if email := cmd.Email(); email != nil && *email != existing.Email() {
		if _, lookupErr := userRepo.GetByEmail(ctx, *email); lookupErr == nil {
			return nil, errs.NewValidationError("Email already in use")
		} else if !errors.Is(lookupErr, errs.ErrObjectNotFound) {
			return nil, lookupErr
		}
		if err = existing.ChangeEmail(*email); err != nil {
			return nil, err
		}
	}

	if fullName := cmd.FullName(); fullName != nil {
		if err = existing.Rename(*fullName); err != nil {
			return nil, err
		}
	}

	if password := cmd.Password(); password != nil {
		passwordHash, hashErr := hashPassword(*password)
		if hashErr != nil {
			return nil, hashErr
		}
		if err = existing.ChangePasswordHash(passwordHash); err != nil {
			return nil, err
		}
	}

	if err = userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
