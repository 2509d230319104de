package commands

import (
	"context"
)

// DeleteStaffCommandHandler removes a staff member.
type DeleteStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewDeleteStaffCommandHandler creates a handler for staff removal.
func NewDeleteStaffCommandHandler(uowFactory StaffUoWFactory) DeleteStaffCommandHandler {
	return DeleteStaffCommandHandler{uowFactory: uowFactory}
}

// Handle removes the staff member. An unknown ID produces
// errs.ObjectNotFoundError.
func (h DeleteStaffCommandHandler) Handle(ctx context.Context, cmd DeleteStaffCommand) error {
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

	if err := uow.StaffRepository().Delete(ctx, cmd.StaffID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
