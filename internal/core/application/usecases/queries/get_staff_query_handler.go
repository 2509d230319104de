package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inatpos/internal/core/domain/model/kernel"
)

// GetStaffQueryHandler reads the staff list from the database.
type GetStaffQueryHandler struct {
	db *gorm.DB
}

// NewGetStaffQueryHandler creates a handler for the staff list.
func NewGetStaffQueryHandler(db *gorm.DB) GetStaffQueryHandler {
	return GetStaffQueryHandler{db: db}
}

// Handle retrieves every staff member ordered by creation time.
func (h GetStaffQueryHandler) Handle(ctx context.Context, query GetStaffQuery) ([]GetStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		ID        uuid.UUID
		FullName  string
		Username  string
		Role      string
		CreatedAt time.Time
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			username,
			role,
			created_at
		FROM staff
		ORDER BY created_at
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	members := make([]GetStaffQueryResponse, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		members = append(members, GetStaffQueryResponse{
			ID:        id,
			FullName:  row.FullName,
			Username:  row.Username,
			Role:      row.Role,
			CreatedAt: row.CreatedAt,
		})
	}

	return members, nil
}
