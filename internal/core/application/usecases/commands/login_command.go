package commands

import (
	"errors"

	"inatpos/internal/pkg/errs"
	"inatpos/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a staff member's request to sign in with their
// username and PIN.
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	pin      string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a sign-in command. Both fields are required; the
// PIN is checked against the stored hash by the handler, not here.
func NewLoginCommand(username, pin string) (LoginCommand, error) {
	command := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUsername(username),
		command.setPIN(pin),
	); err != nil {
		return LoginCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the login name.
func (c LoginCommand) Username() string {
	return c.username
}

// PIN returns the plaintext PIN to verify.
func (c LoginCommand) PIN() string {
	return c.pin
}

func (c *LoginCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *LoginCommand) setPIN(pin string) error {
	if pin == "" {
		return errs.NewValueIsRequiredError("pin")
	}

	c.pin = pin
	return nil
}
