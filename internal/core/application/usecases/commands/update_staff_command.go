package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/staff"
	"inatpos/internal/pkg/guard"
)

var ErrUpdateStaffCommandIsNotConstructed = errors.New(
	"UpdateStaffCommand must be created via NewUpdateStaffCommand constructor",
)

// UpdateStaffCommand represents an owner's request to edit a staff member's
// profile. An empty PIN leaves the stored PIN unchanged.
type UpdateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID  kernel.UUID
	fullName string
	username string
	pin      string
	role     staff.Role

	guard guard.ConstructorGuard
}

// NewUpdateStaffCommand creates a command to edit a staff profile.
func NewUpdateStaffCommand(staffID kernel.UUID, fullName, username, pin string, role staff.Role) (UpdateStaffCommand, error) {
	command := UpdateStaffCommand{
		fullName: fullName,
		username: username,
		pin:      pin,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStaffID(staffID),
		command.setRole(role),
		requireField("fullName", fullName),
		requireField("username", username),
	); err != nil {
		return UpdateStaffCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStaffCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStaffCommandIsNotConstructed)
}

func (c UpdateStaffCommand) StaffID() kernel.UUID { return c.staffID }
func (c UpdateStaffCommand) FullName() string     { return c.fullName }
func (c UpdateStaffCommand) Username() string     { return c.username }
func (c UpdateStaffCommand) PIN() string          { return c.pin }
func (c UpdateStaffCommand) Role() staff.Role     { return c.role }

func (c *UpdateStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *UpdateStaffCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
