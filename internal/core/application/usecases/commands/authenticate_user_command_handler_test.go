package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateUserCommandHandler_Handle_Match(t *testing.T) {
	ctx := t.Context()
	existing := restoredUser(t, "a@x.com", true)
	cmd, _ := commands.NewAuthenticateUserCommand("a@x.com", "s3cret-pass")

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "a@x.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateUserCommandHandler(factory)
	matched, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.True(t, existing.ID().IsEqual(matched.ID()))
	// Credential checks never write.
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAuthenticateUserCommandHandler_Handle_NoMatch(t *testing.T) {
	tests := map[string]struct {
		storedUser func(t *testing.T) any
		password   string
	}{
		"unknown_email": {
			storedUser: func(t *testing.T) any { return nil },
			password:   "s3cret-pass",
		},
		"wrong_password": {
			storedUser: func(t *testing.T) any { return restoredUser(t, "a@x.com", true) },
			password:   "wrong-pass",
		},
		"inactive_account": {
			storedUser: func(t *testing.T) any { return restoredUser(t, "a@x.com", false) },
			password:   "s3cret-pass",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewAuthenticateUserCommand("a@x.com", tc.password)

			repo := new(MockUserRepository)
			uow := new(MockUoW)

			stored := tc.storedUser(t)
			call := repo.On("GetByEmail", mock.Anything, "a@x.com").Once()
			if stored == nil {
				call.Return(nil, errs.NewObjectNotFoundError("email", "a@x.com"))
			} else {
				call.Return(stored, nil)
			}

			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("UserRepository").Return(repo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			factory := new(MockUserUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewAuthenticateUserCommandHandler(factory)
			matched, err := h.Handle(ctx, cmd)

			// Every mismatch looks identical to the caller.
			require.NoError(t, err)
			assert.Nil(t, matched)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestNewAuthenticateUserCommand_Invalid(t *testing.T) {
	_, err := commands.NewAuthenticateUserCommand("", "s3cret-pass")
	require.ErrorIs(t, err, commands.ErrEmailIsRequired)

	_, err = commands.NewAuthenticateUserCommand("a@x.com", "")
	require.ErrorIs(t, err, commands.ErrPasswordIsRequired)
}
