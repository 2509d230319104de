package commands

import (
	"context"
)

// ResetDashboardCommandHandler purges completed orders. Triggered manually
// by the owner and nightly by the job scheduler.
type ResetDashboardCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewResetDashboardCommandHandler(uowFactory OrderUoWFactory) ResetDashboardCommandHandler {
	return ResetDashboardCommandHandler{uowFactory: uowFactory}
}

// Handle removes all completed orders and returns how many were removed.
func (h ResetDashboardCommandHandler) Handle(ctx context.Context, cmd ResetDashboardCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().DeleteCompleted(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
