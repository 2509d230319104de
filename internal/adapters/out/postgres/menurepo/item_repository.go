package menurepo

import (
	"context"
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/menu"
	"inatpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM menu item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add saves a new menu item to the database.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *menu.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Update saves changes to an existing menu item. Columns are listed
// explicitly so that in_stock can be written back to false.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *menu.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("category_id", "name_en", "name_am", "price", "cost_per_serving", "image_url", "in_stock").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a menu item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetAll retrieves every menu item ordered by creation time.
func (r *GormItemRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	return r.findAll(ctx, r.db.WithContext(ctx))
}

// GetAllByCategory retrieves the menu items of one category ordered by
// creation time.
func (r *GormItemRepository) GetAllByCategory(ctx context.Context, categoryID kernel.UUID) ([]*menu.Item, error) {
	if err := categoryID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, r.db.WithContext(ctx).Where("category_id = ?", categoryID.Bytes()))
}

func (r *GormItemRepository) findAll(_ context.Context, tx *gorm.DB) ([]*menu.Item, error) {
	var dtos []ItemDTO
	if err := tx.Order("created_at ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Delete removes a menu item.
func (r *GormItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}

	return nil
}
