package order

import (
	"fmt"

	"inatpos/internal/pkg/errs"
)

// Station identifies one of the two independent preparation stations.
// Every order line is assigned to exactly one station, and each station
// progresses its own status for the order.
type Station string

const (
	// StationKitchen prepares food items.
	StationKitchen Station = "kitchen"

	// StationJuicebar prepares drinks.
	StationJuicebar Station = "juicebar"
)

// Validate checks that the station is one of the known stations.
func (s Station) Validate() error {
	if s != StationKitchen && s != StationJuicebar {
		return errs.NewValueIsInvalidErrorWithCause(
			"station",
			fmt.Errorf("%q is not a valid station", string(s)),
		)
	}
	return nil
}

// String returns the station name used on the wire and in the database.
func (s Station) String() string {
	return string(s)
}

// StationStatus is the preparation state of one station for one order.
//
// State transitions within a station are unrestricted among the three
// values (a display can move a ticket back from ready to inprogress),
// but no station status can change once the order is completed.
type StationStatus string

const (
	// StationStatusPending means the station has not started the order's items.
	StationStatusPending StationStatus = "pending"

	// StationStatusInProgress means the station is preparing the order's items.
	StationStatusInProgress StationStatus = "inprogress"

	// StationStatusReady means the station has finished the order's items.
	StationStatusReady StationStatus = "ready"
)

// Validate checks that the status is one of the known station statuses.
func (s StationStatus) Validate() error {
	switch s {
	case StationStatusPending, StationStatusInProgress, StationStatusReady:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"station status",
		fmt.Errorf("%q is not a valid station status", string(s)),
	)
}

// String returns the status name used on the wire and in the database.
func (s StationStatus) String() string {
	return string(s)
}

// OverallStatus is the order's aggregate state, derived from the assigned
// station statuses except for the terminal Completed transition which is
// owned exclusively by payment processing.
//
// State derivation:
//
//	all assigned stations ready          -> ready
//	otherwise any station inprogress     -> inprogress
//	otherwise                            -> pending
//	payment processed (terminal, one-way)-> completed
type OverallStatus string

const (
	// OverallStatusPending means no assigned station has started yet.
	OverallStatusPending OverallStatus = "pending"

	// OverallStatusInProgress means at least one station is working and
	// not every assigned station is ready.
	OverallStatusInProgress OverallStatus = "inprogress"

	// OverallStatusReady means every assigned station is ready;
	// the order can be served and paid.
	OverallStatusReady OverallStatus = "ready"

	// OverallStatusCompleted means payment was processed. Terminal:
	// no station update can move the order out of this state.
	OverallStatusCompleted OverallStatus = "completed"
)

// Validate checks that the status is one of the known overall statuses.
func (s OverallStatus) Validate() error {
	switch s {
	case OverallStatusPending, OverallStatusInProgress, OverallStatusReady, OverallStatusCompleted:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"overall status",
		fmt.Errorf("%q is not a valid overall status", string(s)),
	)
}

// String returns the status name used on the wire and in the database.
func (s OverallStatus) String() string {
	return string(s)
}

// DeriveOverall computes the order's overall status from its two station
// statuses. A nil station status means the station has no lines on the
// order and is skipped.
//
// The function is pure and commutative in its two station arguments, and
// it never returns OverallStatusCompleted: that transition belongs to
// payment processing alone, so a late station update can never resurrect
// a completed order.
//
// becameReadyNow reports whether this derivation is the first one to
// produce Ready relative to previous, so the caller can stamp the ready
// timestamp exactly once.
func DeriveOverall(kitchen, juicebar *StationStatus, previous OverallStatus) (result OverallStatus, becameReadyNow bool) {
	assigned := make([]StationStatus, 0, 2)
	if kitchen != nil {
		assigned = append(assigned, *kitchen)
	}
	if juicebar != nil {
		assigned = append(assigned, *juicebar)
	}

	// An order without station-bearing lines should not exist, but its
	// derivation must not crash.
	if len(assigned) == 0 {
		return OverallStatusPending, false
	}

	allReady := true
	anyInProgress := false
	for _, status := range assigned {
		if status != StationStatusReady {
			allReady = false
		}
		if status == StationStatusInProgress {
			anyInProgress = true
		}
	}

	switch {
	case allReady:
		return OverallStatusReady, previous != OverallStatusReady
	case anyInProgress:
		return OverallStatusInProgress, false
	default:
		return OverallStatusPending, false
	}
}
