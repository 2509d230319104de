package ports

import (
	"context"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/menu"
	"inatpos/internal/core/domain/model/order"
)

// CategoryRepository defines the persistence contract for menu categories.
type CategoryRepository interface {
	Add(ctx context.Context, aggregate *menu.Category) error
	Update(ctx context.Context, aggregate *menu.Category) error
	Get(ctx context.Context, id kernel.UUID) (*menu.Category, error)
	GetAll(ctx context.Context) ([]*menu.Category, error)

	// Delete removes a category. A category that still has menu items
	// produces errs.ConflictError.
	Delete(ctx context.Context, id kernel.UUID) error
}

// ItemRepository defines the persistence contract for menu items.
type ItemRepository interface {
	Add(ctx context.Context, aggregate *menu.Item) error
	Update(ctx context.Context, aggregate *menu.Item) error
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)
	GetAll(ctx context.Context) ([]*menu.Item, error)
	GetAllByCategory(ctx context.Context, categoryID kernel.UUID) ([]*menu.Item, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// AddOnRepository defines the persistence contract for add-ons.
type AddOnRepository interface {
	Add(ctx context.Context, aggregate *menu.AddOn) error
	Update(ctx context.Context, aggregate *menu.AddOn) error
	Get(ctx context.Context, id kernel.UUID) (*menu.AddOn, error)
	GetAll(ctx context.Context) ([]*menu.AddOn, error)
	GetAllByStation(ctx context.Context, station order.Station) ([]*menu.AddOn, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
