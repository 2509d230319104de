package commands

import (
	"context"
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/guard"
)

var ErrDeleteAddOnCommandIsNotConstructed = errors.New(
	"DeleteAddOnCommand must be created via NewDeleteAddOnCommand constructor",
)

// DeleteAddOnCommand represents an owner's request to remove an add-on.
// Existing orders keep their line snapshots.
type DeleteAddOnCommand struct { //nolint:recvcheck //using for validation
	addOnID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteAddOnCommand(addOnID kernel.UUID) (DeleteAddOnCommand, error) {
	command := DeleteAddOnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := addOnID.Validate(); err != nil {
		return DeleteAddOnCommand{}, err
	}
	command.addOnID = addOnID

	return command, nil
}

func (c DeleteAddOnCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddOnCommandIsNotConstructed)
}

func (c DeleteAddOnCommand) AddOnID() kernel.UUID { return c.addOnID }

// DeleteAddOnCommandHandler removes an add-on.
type DeleteAddOnCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteAddOnCommandHandler(uowFactory CatalogUoWFactory) DeleteAddOnCommandHandler {
	return DeleteAddOnCommandHandler{uowFactory: uowFactory}
}

func (h DeleteAddOnCommandHandler) Handle(ctx context.Context, cmd DeleteAddOnCommand) error {
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

	if err := uow.AddOnRepository().Delete(ctx, cmd.AddOnID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
