package commands

import (
	"context"
	"errors"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/core/ports"
	"inatpos/internal/pkg/errs"
	"inatpos/internal/pkg/keylock"
)

// casRetries bounds how many times a handler re-loads and re-applies an
// order after losing a version compare-and-swap to a concurrent writer.
const casRetries = 3

// UpdateStationStatusCommandHandler applies a station status change as an
// atomic read-modify-write. A per-order lock serializes transitions of the
// same order within this process; the repository's version compare-and-swap
// protects against writers this process does not know about, with a bounded
// retry on conflict.
type UpdateStationStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *keylock.KeyLock
	publisher  ports.NotificationPublisher
}

// NewUpdateStationStatusCommandHandler creates a handler for station status
// transitions. The lock set must be shared with every other handler that
// mutates orders.
func NewUpdateStationStatusCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keylock.KeyLock,
	publisher ports.NotificationPublisher,
) UpdateStationStatusCommandHandler {
	return UpdateStationStatusCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		publisher:  publisher,
	}
}

// Handle processes the station status change and returns the updated order.
// Returns errs.ObjectNotFoundError for an unknown order and errs.ConflictError
// when the order is completed or has no lines for the station.
func (h UpdateStationStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateStationStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(cmd.OrderID().String())
	defer unlock()

	updated, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.SetStationStatus(cmd.Station(), cmd.Status(), time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, updated.StatusUpdatedEvent(cmd.Station(), cmd.Status()))

	return updated, nil
}

// mutateOrder loads an order, applies fn and writes it back, retrying a
// bounded number of times when the version compare-and-swap loses. Each
// attempt runs in a fresh transaction over freshly loaded state.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	fn func(*order.Order) error,
) (*order.Order, error) {
	var lastErr error

	for attempt := 0; attempt <= casRetries; attempt++ {
		aggregate, err := mutateOrderOnce(ctx, uowFactory, orderID, fn)
		if err == nil {
			return aggregate, nil
		}

		if !errors.Is(err, errs.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func mutateOrderOnce(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	fn func(*order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = fn(aggregate); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
