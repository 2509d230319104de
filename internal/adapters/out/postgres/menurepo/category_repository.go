package menurepo

import (
	"context"
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/menu"
	"inatpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Add saves a new category to the database.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *menu.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Update saves changes to an existing category. The station is fixed at
// creation, so only the names are written.
func (r *GormCategoryRepository) Update(ctx context.Context, aggregate *menu.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).
		Where("id = ?", dto.ID).
		Select("name_en", "name_am").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a category by ID.
func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// GetAll retrieves every category ordered by creation time.
func (r *GormCategoryRepository) GetAll(ctx context.Context) ([]*menu.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	categories := make([]*menu.Category, 0, len(dtos))
	for _, dto := range dtos {
		category, err := categoryToDomain(dto)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}

// Delete removes a category. A category that still has menu items cannot
// be removed; the items must be moved or deleted first.
func (r *GormCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var itemCount int64
	if err := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("category_id = ?", id.Bytes()).Count(&itemCount).Error; err != nil {
		return err
	}
	if itemCount > 0 {
		return errs.NewConflictError("category", "category still has menu items")
	}

	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id.String())
	}

	return nil
}
