package commands

import (
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/guard"
)

var ErrDeleteCategoryCommandIsNotConstructed = errors.New(
	"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
)

// DeleteCategoryCommand represents an owner's request to remove a category.
type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(categoryID kernel.UUID) (DeleteCategoryCommand, error) {
	command := DeleteCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := categoryID.Validate(); err != nil {
		return DeleteCategoryCommand{}, err
	}
	command.categoryID = categoryID

	return command, nil
}

func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }
