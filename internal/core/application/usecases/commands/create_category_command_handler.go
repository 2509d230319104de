package commands

import (
	"context"
	"time"

	"inatpos/internal/core/domain/model/menu"
)

// CreateCategoryCommandHandler adds a menu category.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle adds the category and returns the stored aggregate. A duplicate
// name produces errs.ConflictError from the repository.
func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*menu.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	category, err := menu.NewCategory(cmd.CategoryID(), cmd.NameEn(), cmd.NameAm(), cmd.Station(), time.Now().UTC())
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

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return category, nil
}
