package commands

import (
	"context"
	"time"

	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/core/ports"
	"inatpos/internal/pkg/keylock"
)

// ProcessPaymentCommandHandler finalizes an order with a payment record.
// It shares the per-order lock set with the station status handler so a
// payment and a status change for the same order never interleave.
type ProcessPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *keylock.KeyLock
	publisher  ports.NotificationPublisher
}

// NewProcessPaymentCommandHandler creates a handler for payment processing.
func NewProcessPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	locks *keylock.KeyLock,
	publisher ports.NotificationPublisher,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		publisher:  publisher,
	}
}

// Handle processes the payment and returns the completed order.
// Returns errs.ObjectNotFoundError for an unknown order. A second payment
// attempt returns errs.ConflictError and leaves the stored record, payment
// included, exactly as the first attempt wrote it.
func (h ProcessPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessPaymentCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(cmd.OrderID().String())
	defer unlock()

	completed, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.CompletePayment(cmd.Payment(), time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, completed.CompletedEvent())

	return completed, nil
}
