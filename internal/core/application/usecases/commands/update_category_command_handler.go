package commands

import (
	"context"

	"inatpos/internal/core/domain/model/menu"
)

// UpdateCategoryCommandHandler renames a menu category.
type UpdateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateCategoryCommandHandler(uowFactory CatalogUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*menu.Category, error) {
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

	repo := uow.CategoryRepository()

	category, err := repo.Get(ctx, cmd.CategoryID())
	if err != nil {
		return nil, err
	}

	if err = category.Rename(cmd.NameEn(), cmd.NameAm()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, category); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return category, nil
}
