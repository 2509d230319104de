package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/guard"
)

var ErrUpdateCategoryCommandIsNotConstructed = errors.New(
	"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
)

// UpdateCategoryCommand represents an owner's request to rename a category.
// The station of a category is fixed at creation: moving existing items
// between stations would contradict their order-line snapshots.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	nameEn     string
	nameAm     string

	guard guard.ConstructorGuard
}

func NewUpdateCategoryCommand(categoryID kernel.UUID, nameEn, nameAm string) (UpdateCategoryCommand, error) {
	command := UpdateCategoryCommand{
		nameEn: nameEn,
		nameAm: nameAm,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		categoryID.Validate(),
		requireField("nameEn", nameEn),
		requireField("nameAm", nameAm),
	); err != nil {
		return UpdateCategoryCommand{}, err
	}
	command.categoryID = categoryID

	return command, nil
}

func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }
func (c UpdateCategoryCommand) NameEn() string          { return c.nameEn }
func (c UpdateCategoryCommand) NameAm() string          { return c.nameAm }
