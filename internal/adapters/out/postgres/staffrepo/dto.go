package staffrepo

import (
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO is the database representation of a staff member.
type StaffDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string
	Username  string `gorm:"uniqueIndex"`
	PINHash   []byte `gorm:"column:pin_hash"`
	Role      string `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(aggregate *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:        aggregate.ID().Bytes(),
		FullName:  aggregate.FullName(),
		Username:  aggregate.Username(),
		PINHash:   aggregate.PINHash(),
		Role:      aggregate.Role().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(
		id,
		dto.FullName,
		dto.Username,
		dto.PINHash,
		staff.Role(dto.Role),
		dto.CreatedAt,
	)
}
