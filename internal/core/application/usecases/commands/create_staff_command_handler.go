package commands

import (
	"context"
	"time"

	"inatpos/internal/core/domain/model/staff"
)

// CreateStaffCommandHandler registers a new staff member.
type CreateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewCreateStaffCommandHandler creates a handler for staff registration.
func NewCreateStaffCommandHandler(uowFactory StaffUoWFactory) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{uowFactory: uowFactory}
}

// Handle registers the staff member and returns the stored aggregate.
// A duplicate username produces errs.ConflictError from the repository.
func (h CreateStaffCommandHandler) Handle(ctx context.Context, cmd CreateStaffCommand) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	member, err := staff.NewStaff(cmd.StaffID(), cmd.FullName(), cmd.Username(), cmd.PIN(), cmd.Role(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StaffRepository().Add(ctx, member); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return member, nil
}
