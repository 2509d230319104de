package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/staff"
	"inatpos/internal/pkg/errs"
)

func TestCreateStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	staffID := kernel.NewUUID()

	cmd, err := commands.NewCreateStaffCommand(staffID, "Abel Girma", "abel", "4321", staff.RoleKitchen)
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*staff.Staff")).Return(nil).Once()

	uow := new(MockStaffUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStaffCommandHandler(factory)
	member, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, staffID, member.ID())
	assert.Equal(t, "abel", member.Username())
	assert.Equal(t, staff.RoleKitchen, member.Role())
	assert.True(t, member.VerifyPIN("4321"))

	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateStaffCommandHandler_Handle_DuplicateUsername(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateStaffCommand(kernel.NewUUID(), "Abel Girma", "abel", "4321", staff.RoleKitchen)
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*staff.Staff")).
		Return(errs.NewConflictError("staff", "username is already taken")).Once()

	uow := new(MockStaffUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStaffCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestNewCreateStaffCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateStaffCommand(kernel.NewUUID(), "", "abel", "4321", staff.RoleKitchen)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateStaffCommand(kernel.NewUUID(), "Abel Girma", "abel", "4321", staff.Role("driver"))
	require.Error(t, err)
}

func TestCreateStaffCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateStaffCommandHandler(new(MockStaffUoWFactory))
	_, err := h.Handle(t.Context(), commands.CreateStaffCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateStaffCommandIsNotConstructed)
}
