package commands

import (
	"context"

	"inatpos/internal/core/domain/model/staff"
)

// UpdateStaffCommandHandler edits an existing staff member's profile.
type UpdateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewUpdateStaffCommandHandler creates a handler for staff profile edits.
func NewUpdateStaffCommandHandler(uowFactory StaffUoWFactory) UpdateStaffCommandHandler {
	return UpdateStaffCommandHandler{uowFactory: uowFactory}
}

// Handle applies the profile changes and returns the updated aggregate.
// The PIN is replaced only when the command carries a non-empty PIN.
func (h UpdateStaffCommandHandler) Handle(ctx context.Context, cmd UpdateStaffCommand) (*staff.Staff, error) {
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

	repo := uow.StaffRepository()

	member, err := repo.Get(ctx, cmd.StaffID())
	if err != nil {
		return nil, err
	}

	if err = member.UpdateProfile(cmd.FullName(), cmd.Username(), cmd.Role()); err != nil {
		return nil, err
	}
	if cmd.PIN() != "" {
		if err = member.SetPIN(cmd.PIN()); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, member); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return member, nil
}
