package staff

import (
	"fmt"

	"inatpos/internal/pkg/errs"
)

// Role is a staff member's position, which decides what operations the
// member may perform. Capability checks live here so that transport
// middleware can gate requests before any use case runs.
type Role string

const (
	// RoleWaitress takes orders and settles payments at the table.
	RoleWaitress Role = "waitress"

	// RoleKitchen operates the kitchen station display.
	RoleKitchen Role = "kitchen"

	// RoleJuicebar operates the juice bar station display.
	RoleJuicebar Role = "juicebar"

	// RoleOwner manages the restaurant and may perform every operation.
	RoleOwner Role = "owner"
)

// Validate checks that the role is one of the known roles.
func (r Role) Validate() error {
	switch r {
	case RoleWaitress, RoleKitchen, RoleJuicebar, RoleOwner:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", string(r)),
	)
}

// String returns the role name used on the wire and in the database.
func (r Role) String() string {
	return string(r)
}

// CanCreateOrders reports whether the role may create orders and process
// payments.
func (r Role) CanCreateOrders() bool {
	return r == RoleWaitress || r == RoleOwner
}

// CanUpdateStationStatus reports whether the role may move station
// statuses on the preparation displays.
func (r Role) CanUpdateStationStatus() bool {
	return r == RoleKitchen || r == RoleJuicebar || r == RoleOwner
}

// CanManageRestaurant reports whether the role may manage staff, the
// catalog and the dashboard.
func (r Role) CanManageRestaurant() bool {
	return r == RoleOwner
}

// AllRoles returns every valid role. Used by the notification fan-out to
// bind one channel per role.
func AllRoles() []Role {
	return []Role{RoleWaitress, RoleKitchen, RoleJuicebar, RoleOwner}
}
