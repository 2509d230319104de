package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/errs"
	"inatpos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderLine is one requested position of a new order: a catalog item
// reference, a quantity and optional add-on references. Prices and names
// are resolved by the handler, never supplied by the client.
type CreateOrderLine struct {
	MenuItemID   kernel.UUID
	Quantity     int
	AddOnIDs     []kernel.UUID
	SpecialNotes string
}

// CreateOrderCommand represents a waitress's request to open a new order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	lines         []CreateOrderLine
	waitressID    kernel.UUID
	waitressName  string
	customerName  string
	customerPhone string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order. The waitress
// identity comes from the authenticated principal, not from the request body.
// Validates that the order ID and waitress identity are valid, at least one
// line is present, and every line has a valid item reference and quantity >= 1.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	lines []CreateOrderLine,
	waitressID kernel.UUID,
	waitressName string,
	customerName string,
	customerPhone string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerName:  customerName,
		customerPhone: customerPhone,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setLines(lines),
		orderCommand.setWaitress(waitressID, waitressName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []CreateOrderLine {
	return c.lines
}

// WaitressID returns the identity of the staff member opening the order.
func (c CreateOrderCommand) WaitressID() kernel.UUID {
	return c.waitressID
}

// WaitressName returns the display name of the staff member opening the order.
func (c CreateOrderCommand) WaitressName() string {
	return c.waitressName
}

// CustomerName returns the optional customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the optional customer phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []CreateOrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("menuItemId", err)
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidError("quantity")
		}
		for _, addOnID := range line.AddOnIDs {
			if err := addOnID.Validate(); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("addOnId", err)
			}
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setWaitress(waitressID kernel.UUID, waitressName string) error {
	if err := waitressID.Validate(); err != nil {
		return err
	}
	if waitressName == "" {
		return errs.NewValueIsRequiredError("waitress name")
	}

	c.waitressID = waitressID
	c.waitressName = waitressName
	return nil
}
