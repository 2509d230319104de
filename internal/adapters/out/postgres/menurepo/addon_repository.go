package menurepo

import (
	"context"
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/menu"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddOnRepository implements AddOnRepository using GORM.
type GormAddOnRepository struct {
	db *gorm.DB
}

// NewGormAddOnRepository creates a new GORM add-on repository.
func NewGormAddOnRepository(db *gorm.DB) *GormAddOnRepository {
	return &GormAddOnRepository{db: db}
}

// Add saves a new add-on to the database.
func (r *GormAddOnRepository) Add(ctx context.Context, aggregate *menu.AddOn) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := addOnFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Update saves changes to an existing add-on. Columns are listed
// explicitly so that available can be written back to false.
func (r *GormAddOnRepository) Update(ctx context.Context, aggregate *menu.AddOn) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := addOnFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AddOnDTO{}).
		Where("id = ?", dto.ID).
		Select("name_en", "name_am", "price", "cost", "station", "available").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("add-on", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an add-on by ID.
func (r *GormAddOnRepository) Get(ctx context.Context, id kernel.UUID) (*menu.AddOn, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddOnDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("add-on", id.String())
		}
		return nil, err
	}

	return addOnToDomain(dto)
}

// GetAll retrieves every add-on ordered by creation time.
func (r *GormAddOnRepository) GetAll(ctx context.Context) ([]*menu.AddOn, error) {
	return r.findAll(r.db.WithContext(ctx))
}

// GetAllByStation retrieves the add-ons served by one station ordered by
// creation time.
func (r *GormAddOnRepository) GetAllByStation(ctx context.Context, station order.Station) ([]*menu.AddOn, error) {
	if err := station.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(r.db.WithContext(ctx).Where("station = ?", station.String()))
}

func (r *GormAddOnRepository) findAll(tx *gorm.DB) ([]*menu.AddOn, error) {
	var dtos []AddOnDTO
	if err := tx.Order("created_at ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	addOns := make([]*menu.AddOn, 0, len(dtos))
	for _, dto := range dtos {
		addOn, err := addOnToDomain(dto)
		if err != nil {
			return nil, err
		}
		addOns = append(addOns, addOn)
	}

	return addOns, nil
}

// Delete removes an add-on.
func (r *GormAddOnRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AddOnDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("add-on", id.String())
	}

	return nil
}
