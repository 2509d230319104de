package orderrepo

import (
	"context"
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// mutableColumns are the order columns that change after creation. Listed
// explicitly because Updates skips zero values and we need to be able to
// write NULLs back (e.g. a status column is never cleared, but payment
// pointers start as NULL and the version must always be written).
var mutableColumns = []string{
	"kitchen_status",
	"juicebar_status",
	"overall_status",
	"payment_method",
	"payment_amount_received",
	"payment_change",
	"payment_mobile_provider",
	"ready_at",
	"completed_at",
	"version",
}

// Update saves an existing order using optimistic concurrency: the row is
// only written when its stored version still matches the version the
// aggregate was loaded with. A lost race returns VersionConflictError so
// the caller can re-read and retry.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("order", aggregate.ID().String())
	}

	aggregate.IncrementVersion()
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("idx ASC") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all orders that are not completed, newest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx, "created_at DESC", "overall_status <> ?", order.OverallStatusCompleted.String())
}

// GetAllCompleted retrieves all completed orders, most recently completed
// first.
func (r *GormOrderRepository) GetAllCompleted(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx, "completed_at DESC", "overall_status = ?", order.OverallStatusCompleted.String())
}

func (r *GormOrderRepository) findAll(ctx context.Context, orderBy, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("idx ASC") }).
		Where(query, args...).
		Order(orderBy).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// DeleteCompleted removes all completed orders and returns how many were
// deleted. Order lines go with them via the cascade constraint.
func (r *GormOrderRepository) DeleteCompleted(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("overall_status = ?", order.OverallStatusCompleted.String()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
