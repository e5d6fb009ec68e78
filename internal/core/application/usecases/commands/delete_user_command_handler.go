package commands

import (
	"context"
	"errors"

	"orders/internal/pkg/errs"
)

// DeleteUserCommandHandler handles user deletion.
// Deletion cascades: the user's orders are removed in the same transaction
// as the user row, so the relationship is never left dangling and the policy
// is explicit rather than delegated to storage-level referential integrity.
type DeleteUserCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user deletion.
func NewDeleteUserCommandHandler(uowFactory UoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user deletion command.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	existing, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValidationError("User not found")
		}
		return err
	}

	if err = uow.OrderRepository().DeleteAllByUser(ctx, existing.ID()); err != nil {
		return err
	}

	if err = userRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
