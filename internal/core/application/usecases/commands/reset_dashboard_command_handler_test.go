package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inatpos/internal/core/application/usecases/commands"
)

func TestResetDashboardCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("DeleteCompleted", ctx).Return(int64(12), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetDashboardCommandHandler(factory)
	removed, err := h.Handle(ctx, commands.NewResetDashboardCommand())
	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResetDashboardCommandHandler_Handle_NotConstructed(t *testing.T) {
	ctx := t.Context()
	h := commands.NewResetDashboardCommandHandler(new(MockOrderUoWFactory))
	_, err := h.Handle(ctx, commands.ResetDashboardCommand{})
	require.Error(t, err)
}
