package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/errs"
	"inatpos/internal/pkg/guard"
)

var ErrSaveMenuItemCommandIsNotConstructed = errors.New(
	"SaveMenuItemCommand must be created via NewSaveMenuItemCommand constructor",
)

// SaveMenuItemCommand carries the full editable state of a menu item.
// The same shape serves creation and update; the handler decides which
// based on whether the item already exists.
type SaveMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID         kernel.UUID
	categoryID     kernel.UUID
	nameEn         string
	nameAm         string
	price          float64
	costPerServing float64
	imageURL       string
	inStock        bool

	guard guard.ConstructorGuard
}

func NewSaveMenuItemCommand(
	itemID, categoryID kernel.UUID,
	nameEn, nameAm string,
	price, costPerServing float64,
	imageURL string,
	inStock bool,
) (SaveMenuItemCommand, error) {
	command := SaveMenuItemCommand{
		nameEn:         nameEn,
		nameAm:         nameAm,
		price:          price,
		costPerServing: costPerServing,
		imageURL:       imageURL,
		inStock:        inStock,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemID.Validate(),
		categoryID.Validate(),
		requireField("nameEn", nameEn),
		requireField("nameAm", nameAm),
		validateNonNegative("price", price),
		validateNonNegative("costPerServing", costPerServing),
	); err != nil {
		return SaveMenuItemCommand{}, err
	}
	command.itemID = itemID
	command.categoryID = categoryID

	return command, nil
}

func (c SaveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrSaveMenuItemCommandIsNotConstructed)
}

func (c SaveMenuItemCommand) ItemID() kernel.UUID     { return c.itemID }
func (c SaveMenuItemCommand) CategoryID() kernel.UUID { return c.categoryID }
func (c SaveMenuItemCommand) NameEn() string          { return c.nameEn }
func (c SaveMenuItemCommand) NameAm() string          { return c.nameAm }
func (c SaveMenuItemCommand) Price() float64          { return c.price }
func (c SaveMenuItemCommand) CostPerServing() float64 { return c.costPerServing }
func (c SaveMenuItemCommand) ImageURL() string        { return c.imageURL }
func (c SaveMenuItemCommand) InStock() bool           { return c.inStock }

func validateNonNegative(name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidError(name)
	}
	return nil
}
