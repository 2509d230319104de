package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/guard"
)

var ErrSaveAddOnCommandIsNotConstructed = errors.New(
	"SaveAddOnCommand must be created via NewSaveAddOnCommand constructor",
)

// SaveAddOnCommand carries the full editable state of an add-on. The same
// shape serves creation and update.
type SaveAddOnCommand struct { //nolint:recvcheck //using for validation
	addOnID   kernel.UUID
	nameEn    string
	nameAm    string
	price     float64
	cost      float64
	station   order.Station
	available bool

	guard guard.ConstructorGuard
}

func NewSaveAddOnCommand(
	addOnID kernel.UUID,
	nameEn, nameAm string,
	price, cost float64,
	station order.Station,
	available bool,
) (SaveAddOnCommand, error) {
	command := SaveAddOnCommand{
		nameEn:    nameEn,
		nameAm:    nameAm,
		price:     price,
		cost:      cost,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addOnID.Validate(),
		station.Validate(),
		requireField("nameEn", nameEn),
		requireField("nameAm", nameAm),
		validateNonNegative("price", price),
		validateNonNegative("cost", cost),
	); err != nil {
		return SaveAddOnCommand{}, err
	}
	command.addOnID = addOnID
	command.station = station

	return command, nil
}

func (c SaveAddOnCommand) Validate() error {
	return c.guard.Validate(ErrSaveAddOnCommandIsNotConstructed)
}

func (c SaveAddOnCommand) AddOnID() kernel.UUID  { return c.addOnID }
func (c SaveAddOnCommand) NameEn() string        { return c.nameEn }
func (c SaveAddOnCommand) NameAm() string        { return c.nameAm }
func (c SaveAddOnCommand) Price() float64        { return c.price }
func (c SaveAddOnCommand) Cost() float64         { return c.cost }
func (c SaveAddOnCommand) Station() order.Station { return c.station }
func (c SaveAddOnCommand) Available() bool       { return c.available }
