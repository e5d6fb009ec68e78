package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/user"
	"orders/internal/pkg/errs"
)

// CreateUserCommandHandler handles user registration.
// Enforces email uniqueness inside the write transaction (check-then-write,
// backed by the storage unique index) and stores only a bcrypt hash of the
// password.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user creation command and returns the created user.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
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

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, errs.NewValidationError("Email already registered")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	passwordHash, err := hashPassword(cmd.Password())
	if err != nil {
		return nil, err
	}

	newUser, err := user.NewUser(kernel.NewUUID(), cmd.Email(), cmd.FullName(), passwordHash)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
