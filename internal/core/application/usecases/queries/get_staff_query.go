package queries

import (
	"errors"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/guard"
)

var ErrGetStaffQueryIsNotConstructed = errors.New(
	"GetStaffQuery must be created via NewGetStaffQuery constructor",
)

// GetStaffQuery lists every staff member. PIN hashes never leave the
// database through this query.
type GetStaffQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStaffQuery creates a query for the staff list.
func NewGetStaffQuery() GetStaffQuery {
	return GetStaffQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffQueryIsNotConstructed)
}

// GetStaffQueryResponse is one staff member's public profile.
type GetStaffQueryResponse struct {
	ID        kernel.UUID `json:"id"`
	FullName  string      `json:"fullName"`
	Username  string      `json:"username"`
	Role      string      `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}
