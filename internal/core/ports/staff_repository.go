package ports

import (
	"context"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff aggregates.
type StaffRepository interface {
	// Add persists a new staff member. Usernames are unique; a duplicate
	// produces errs.ConflictError.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Update persists changes to an existing staff member.
	Update(ctx context.Context, aggregate *staff.Staff) error

	// Get retrieves a staff member by identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetByUsername retrieves a staff member by their login name.
	// The lookup is case-insensitive.
	GetByUsername(ctx context.Context, username string) (*staff.Staff, error)

	// GetAll retrieves every staff member ordered by creation time.
	GetAll(ctx context.Context) ([]*staff.Staff, error)

	// Delete removes a staff member.
	Delete(ctx context.Context, id kernel.UUID) error
}
