package commands

import (
	"context"
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents an owner's request to remove a menu item.
// Existing orders keep their line snapshots.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(itemID kernel.UUID) (DeleteMenuItemCommand, error) {
	command := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemID.Validate(); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	command.itemID = itemID

	return command, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) ItemID() kernel.UUID { return c.itemID }

// DeleteMenuItemCommandHandler removes a menu item.
type DeleteMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteMenuItemCommandHandler(uowFactory CatalogUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ItemRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
