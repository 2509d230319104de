package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/staff"
	"inatpos/internal/pkg/errs"
	"inatpos/internal/pkg/guard"
)

var ErrCreateStaffCommandIsNotConstructed = errors.New(
	"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
)

// CreateStaffCommand represents an owner's request to register a staff member.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID  kernel.UUID
	fullName string
	username string
	pin      string
	role     staff.Role

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand creates a command to register a staff member.
// PIN format and username normalization are enforced by the aggregate; the
// command checks only presence and the role token.
func NewCreateStaffCommand(staffID kernel.UUID, fullName, username, pin string, role staff.Role) (CreateStaffCommand, error) {
	command := CreateStaffCommand{
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
		requireField("pin", pin),
	); err != nil {
		return CreateStaffCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

func (c CreateStaffCommand) StaffID() kernel.UUID { return c.staffID }
func (c CreateStaffCommand) FullName() string     { return c.fullName }
func (c CreateStaffCommand) Username() string     { return c.username }
func (c CreateStaffCommand) PIN() string          { return c.pin }
func (c CreateStaffCommand) Role() staff.Role     { return c.role }

func (c *CreateStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *CreateStaffCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
