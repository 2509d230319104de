package staffrepo

import (
	"context"
	"errors"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/staff"
	"inatpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Add saves a new staff member. A username that is already taken maps to
// ConflictError; the unique index on username is the source of truth so
// concurrent registrations cannot slip through.
func (r *GormStaffRepository) Add(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("staff", "username is already taken", err)
		}
		return err
	}

	return nil
}

// Update saves changes to an existing staff member.
func (r *GormStaffRepository) Update(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StaffDTO{}).
		Where("id = ?", dto.ID).
		Select("full_name", "username", "pin_hash", "role").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("staff", "username is already taken", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a staff member by ID.
func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a staff member by login name, case-insensitively.
func (r *GormStaffRepository) GetByUsername(ctx context.Context, username string) (*staff.Staff, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto StaffDTO
	err := r.db.WithContext(ctx).First(&dto, "lower(username) = lower(?)", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every staff member ordered by creation time.
func (r *GormStaffRepository) GetAll(ctx context.Context) ([]*staff.Staff, error) {
	var dtos []StaffDTO
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	members := make([]*staff.Staff, 0, len(dtos))
	for _, dto := range dtos {
		member, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}

// Delete removes a staff member.
func (r *GormStaffRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StaffDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", id.String())
	}

	return nil
}
