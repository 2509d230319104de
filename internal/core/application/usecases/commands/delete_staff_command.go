package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/guard"
)

var ErrDeleteStaffCommandIsNotConstructed = errors.New(
	"DeleteStaffCommand must be created via NewDeleteStaffCommand constructor",
)

// DeleteStaffCommand represents an owner's request to remove a staff member.
type DeleteStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStaffCommand creates a command to remove a staff member.
func NewDeleteStaffCommand(staffID kernel.UUID) (DeleteStaffCommand, error) {
	command := DeleteStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staffID.Validate(); err != nil {
		return DeleteStaffCommand{}, err
	}
	command.staffID = staffID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStaffCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStaffCommandIsNotConstructed)
}

// StaffID returns the identifier of the staff member to remove.
func (c DeleteStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}
