package commands

import (
	"context"
	"time"

	"inatpos/internal/core/domain/model/menu"
)

// SaveMenuItemCommandHandler creates and edits menu items. Both paths
// verify that the target category exists inside the same transaction.
type SaveMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSaveMenuItemCommandHandler(uowFactory CatalogUoWFactory) SaveMenuItemCommandHandler {
	return SaveMenuItemCommandHandler{uowFactory: uowFactory}
}

// HandleCreate adds a new menu item.
func (h SaveMenuItemCommandHandler) HandleCreate(ctx context.Context, cmd SaveMenuItemCommand) (*menu.Item, error) {
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

	if _, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
		return nil, err
	}

	item, err := menu.NewItem(
		cmd.ItemID(), cmd.CategoryID(),
		cmd.NameEn(), cmd.NameAm(),
		cmd.Price(), cmd.CostPerServing(),
		cmd.ImageURL(), cmd.InStock(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

// HandleUpdate edits an existing menu item.
func (h SaveMenuItemCommandHandler) HandleUpdate(ctx context.Context, cmd SaveMenuItemCommand) (*menu.Item, error) {
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

	if _, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
		return nil, err
	}

	repo := uow.ItemRepository()

	item, err := repo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = item.Update(
		cmd.CategoryID(),
		cmd.NameEn(), cmd.NameAm(),
		cmd.Price(), cmd.CostPerServing(),
		cmd.ImageURL(), cmd.InStock(),
	); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
