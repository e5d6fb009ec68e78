package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testMaxQuantity = 1000
)

func testMinOrderValue() decimal.Decimal {
	return decimal.RequireFromString("1.00")
}

func restoredOrder(t *testing.T, userID kernel.UUID, quantity int, unitPrice string, status order.Status) *order.Order {
	t.Helper()
	price := decimal.RequireFromString(unitPrice)
	total := price.Mul(decimal.NewFromInt(int64(quantity)))
	o, err := order.RestoreOrder(kernel.NewUUID(), userID, "Widget", quantity, price, total, status)
	require.NoError(t, err)
	return o
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := restoredUser(t, "a@x.com", true)
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), owner.ID(), "Widget", 5, decimal.RequireFromString("10.00"))

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, owner.ID()).Return(owner, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &RecordingNotifier{}
	h := commands.NewCreateOrderCommandHandler(factory, notifier, testMaxQuantity, testMinOrderValue())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.Pending, created.Status())
	assert.True(t, created.TotalAmount().Equal(decimal.RequireFromString("50.00")))

	require.Len(t, notifier.created, 1)
	assert.True(t, created.ID().IsEqual(notifier.created[0].ID()))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, "Widget", 1, decimal.RequireFromString("10.00"))

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, userID).
			Return(nil, errs.NewObjectNotFoundError("userId", userID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &RecordingNotifier{}
	h := commands.NewCreateOrderCommandHandler(factory, notifier, testMaxQuantity, testMinOrderValue())
	created, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.EqualError(t, err, "User not found")
	assert.Empty(t, notifier.created)
}

func TestCreateOrderCommandHandler_Handle_InactiveUser(t *testing.T) {
	ctx := t.Context()
	owner := restoredUser(t, "a@x.com", false)
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), owner.ID(), "Widget", 1, decimal.RequireFromString("10.00"))

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, owner.ID()).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, &RecordingNotifier{}, testMaxQuantity, testMinOrderValue())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.EqualError(t, err, "User account is not active")
}

func TestCreateOrderCommandHandler_Handle_QuantityAboveMaximum(t *testing.T) {
	ctx := t.Context()
	owner := restoredUser(t, "a@x.com", true)
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), owner.ID(), "Widget", 1001, decimal.RequireFromString("10.00"))

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, owner.ID()).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, &RecordingNotifier{}, testMaxQuantity, testMinOrderValue())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "Quantity cannot exceed 1000 units per order")
}

func TestCreateOrderCommandHandler_Handle_TotalBelowMinimum(t *testing.T) {
	ctx := t.Context()
	owner := restoredUser(t, "a@x.com", true)
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), owner.ID(), "Widget", 1, decimal.RequireFromString("0.50"))

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, owner.ID()).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, &RecordingNotifier{}, testMaxQuantity, testMinOrderValue())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "Order total must be at least $1.00")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	price := decimal.RequireFromString("10.00")

	t.Run("empty_product_name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, userID, "", 1, price)
		require.ErrorIs(t, err, commands.ErrProductNameIsRequired)
	})

	t.Run("zero_quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, userID, "Widget", 0, price)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("negative_unit_price", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, userID, "Widget", 1, decimal.RequireFromString("-0.01"))
		require.ErrorIs(t, err, commands.ErrUnitPriceIsInvalid)
	})
}
