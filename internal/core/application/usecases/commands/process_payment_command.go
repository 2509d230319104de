package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand represents a request to take payment for an order
// and close it out.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	payment order.Payment

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to finalize an order with a
// payment record. The payment value object carries its own validation:
// a known method, non-negative amounts and a provider for mobile payments.
func NewProcessPaymentCommand(orderID kernel.UUID, payment order.Payment) (ProcessPaymentCommand, error) {
	command := ProcessPaymentCommand{
		payment: payment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Payment returns the payment record to attach.
func (c ProcessPaymentCommand) Payment() order.Payment {
	return c.payment
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
