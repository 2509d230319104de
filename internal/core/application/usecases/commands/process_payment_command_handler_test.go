package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/errs"
	"inatpos/internal/pkg/keylock"
)

func TestProcessPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := kitchenOrder(t)

	payment, err := order.NewPayment(order.PaymentMethodCash, 300, 50, "")
	require.NoError(t, err)
	cmd, err := commands.NewProcessPaymentCommand(o.ID(), payment)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("order.CompletedEventPayload")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessPaymentCommandHandler(factory, keylock.New(), publisher)
	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, completed.IsCompleted())
	require.NotNil(t, completed.Payment())
	assert.Equal(t, order.PaymentMethodCash, completed.Payment().Method())
	assert.NotNil(t, completed.CompletedAt())

	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProcessPaymentCommandHandler_Handle_DuplicatePayment(t *testing.T) {
	ctx := t.Context()
	o := kitchenOrder(t)

	first, err := order.NewPayment(order.PaymentMethodCash, 300, 50, "")
	require.NoError(t, err)
	require.NoError(t, o.CompletePayment(first, time.Now().UTC()))

	second, err := order.NewPayment(order.PaymentMethodCard, 250, 0, "")
	require.NoError(t, err)
	cmd, err := commands.NewProcessPaymentCommand(o.ID(), second)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessPaymentCommandHandler(factory, keylock.New(), new(MockNotificationPublisher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)

	// The stored record keeps the first payment untouched.
	assert.Equal(t, order.PaymentMethodCash, o.Payment().Method())
	assert.Equal(t, 300.0, o.Payment().AmountReceived())
}

func TestProcessPaymentCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	o := kitchenOrder(t)

	payment, err := order.NewPayment(order.PaymentMethodCash, 300, 50, "")
	require.NoError(t, err)
	cmd, err := commands.NewProcessPaymentCommand(o.ID(), payment)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", ctx, mock.Anything).Return(assert.AnError).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessPaymentCommandHandler(factory, keylock.New(), publisher)
	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted())
}
