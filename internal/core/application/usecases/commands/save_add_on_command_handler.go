package commands

import (
	"context"
	"time"

	"inatpos/internal/core/domain/model/menu"
)

// SaveAddOnCommandHandler creates and edits add-ons.
type SaveAddOnCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSaveAddOnCommandHandler(uowFactory CatalogUoWFactory) SaveAddOnCommandHandler {
	return SaveAddOnCommandHandler{uowFactory: uowFactory}
}

// HandleCreate adds a new add-on.
func (h SaveAddOnCommandHandler) HandleCreate(ctx context.Context, cmd SaveAddOnCommand) (*menu.AddOn, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	addOn, err := menu.NewAddOn(
		cmd.AddOnID(),
		cmd.NameEn(), cmd.NameAm(),
		cmd.Price(), cmd.Cost(),
		cmd.Station(), cmd.Available(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AddOnRepository().Add(ctx, addOn); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return addOn, nil
}

// HandleUpdate edits an existing add-on.
func (h SaveAddOnCommandHandler) HandleUpdate(ctx context.Context, cmd SaveAddOnCommand) (*menu.AddOn, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AddOnRepository()

	addOn, err := repo.Get(ctx, cmd.AddOnID())
	if err != nil {
		return nil, err
	}

	if err = addOn.Update(
		cmd.NameEn(), cmd.NameAm(),
		cmd.Price(), cmd.Cost(),
		cmd.Station(), cmd.Available(),
	); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, addOn); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return addOn, nil
}
