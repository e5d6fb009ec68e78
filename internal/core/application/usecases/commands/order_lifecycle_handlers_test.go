package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := restoredOrder(t, kernel.NewUUID(), 5, "10.00", order.Pending)
	cmd, _ := commands.NewCompleteOrderCommand(existing.ID())

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &RecordingNotifier{}
	h := commands.NewCompleteOrderCommandHandler(factory, notifier)
	completed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, completed.Status())
	require.Len(t, notifier.completed, 1)
	assert.True(t, existing.ID().IsEqual(notifier.completed[0].ID()))
	repo.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NonPending(t *testing.T) {
	for _, status := range []order.Status{order.Completed, order.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			existing := restoredOrder(t, kernel.NewUUID(), 5, "10.00", status)
			cmd, _ := commands.NewCompleteOrderCommand(existing.ID())

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			notifier := &RecordingNotifier{}
			h := commands.NewCompleteOrderCommandHandler(factory, notifier)
			_, err := h.Handle(ctx, cmd)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.EqualError(t, err, "Only pending orders can be completed")
			assert.Empty(t, notifier.completed)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := restoredOrder(t, kernel.NewUUID(), 5, "10.00", order.Pending)
	cmd, _ := commands.NewCancelOrderCommand(existing.ID())

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	repo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_Rejections(t *testing.T) {
	tests := map[string]struct {
		status  order.Status
		wantMsg string
	}{
		"completed":         {order.Completed, "Cannot cancel completed orders"},
		"already_cancelled": {order.Cancelled, "Order is already cancelled"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			existing := restoredOrder(t, kernel.NewUUID(), 5, "10.00", tc.status)
			cmd, _ := commands.NewCancelOrderCommand(existing.ID())

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewCancelOrderCommandHandler(factory)
			_, err := h.Handle(ctx, cmd)

			require.Error(t, err)
			assert.EqualError(t, err, tc.wantMsg)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	for _, status := range []order.Status{order.Pending, order.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			existing := restoredOrder(t, kernel.NewUUID(), 5, "10.00", status)
			cmd, _ := commands.NewDeleteOrderCommand(existing.ID())

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
				repo.On("Delete", mock.Anything, existing.ID()).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewDeleteOrderCommandHandler(factory)
			require.NoError(t, h.Handle(ctx, cmd))
			repo.AssertExpectations(t)
		})
	}
}

func TestDeleteOrderCommandHandler_Handle_CompletedRejected(t *testing.T) {
	ctx := t.Context()
	existing := restoredOrder(t, kernel.NewUUID(), 5, "10.00", order.Completed)
	cmd, _ := commands.NewDeleteOrderCommand(existing.ID())

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "Cannot delete completed orders")
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteOrderCommand(id)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("orderId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "Order not found")
}
