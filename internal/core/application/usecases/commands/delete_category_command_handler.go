package commands

import (
	"context"
)

// DeleteCategoryCommandHandler removes a menu category.
type DeleteCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteCategoryCommandHandler(uowFactory CatalogUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle removes the category. A category that still has items produces
// errs.ConflictError from the repository.
func (h DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
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

	if err := uow.CategoryRepository().Delete(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
