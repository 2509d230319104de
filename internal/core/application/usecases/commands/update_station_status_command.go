package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/guard"
)

var ErrUpdateStationStatusCommandIsNotConstructed = errors.New(
	"UpdateStationStatusCommand must be created via NewUpdateStationStatusCommand constructor",
)

// UpdateStationStatusCommand represents a station screen's request to move
// its part of an order to a new preparation status.
type UpdateStationStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	station order.Station
	status  order.StationStatus

	guard guard.ConstructorGuard
}

// NewUpdateStationStatusCommand creates a command to change one station's
// status on an order. Validates the order ID, the station token and the
// status token.
func NewUpdateStationStatusCommand(
	orderID kernel.UUID,
	station order.Station,
	status order.StationStatus,
) (UpdateStationStatusCommand, error) {
	command := UpdateStationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStation(station),
		command.setStatus(status),
	); err != nil {
		return UpdateStationStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStationStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateStationStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Station returns the station whose status changes.
func (c UpdateStationStatusCommand) Station() order.Station {
	return c.station
}

// Status returns the requested new station status.
func (c UpdateStationStatusCommand) Status() order.StationStatus {
	return c.status
}

func (c *UpdateStationStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateStationStatusCommand) setStation(station order.Station) error {
	if err := station.Validate(); err != nil {
		return err
	}

	c.station = station
	return nil
}

func (c *UpdateStationStatusCommand) setStatus(status order.StationStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
