package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents an owner's request to add a menu category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	nameEn     string
	nameAm     string
	station    order.Station

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(categoryID kernel.UUID, nameEn, nameAm string, station order.Station) (CreateCategoryCommand, error) {
	command := CreateCategoryCommand{
		nameEn: nameEn,
		nameAm: nameAm,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCategoryID(categoryID),
		command.setStation(station),
		requireField("nameEn", nameEn),
		requireField("nameAm", nameAm),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return command, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }
func (c CreateCategoryCommand) NameEn() string          { return c.nameEn }
func (c CreateCategoryCommand) NameAm() string          { return c.nameAm }
func (c CreateCategoryCommand) Station() order.Station  { return c.station }

func (c *CreateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateCategoryCommand) setStation(station order.Station) error {
	if err := station.Validate(); err != nil {
		return err
	}

	c.station = station
	return nil
}
