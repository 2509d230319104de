package commands

import (
	"errors"

	"inatpos/internal/pkg/guard"
)

var ErrResetDashboardCommandIsNotConstructed = errors.New(
	"ResetDashboardCommand must be created via NewResetDashboardCommand constructor",
)

// ResetDashboardCommand represents a request to purge completed orders,
// clearing the dashboard statistics. Active orders survive the reset.
type ResetDashboardCommand struct {
	guard guard.ConstructorGuard
}

func NewResetDashboardCommand() ResetDashboardCommand {
	return ResetDashboardCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ResetDashboardCommand) Validate() error {
	return c.guard.Validate(ErrResetDashboardCommandIsNotConstructed)
}
