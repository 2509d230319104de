package order

import (
	"errors"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for one customer ticket. It owns the order's
// lines, the two per-station statuses, the derived overall status, the
// computed total, and the payment record.
//
// Order maintains these invariants:
//   - Lines are non-empty and immutable after creation.
//   - A station status exists exactly when at least one line targets that
//     station; station presence never changes after creation.
//   - The overall status is derived from the station statuses, except for
//     the one-way transition to completed owned by CompletePayment.
//   - The total is computed once at creation and never changes.
//   - readyAt and completedAt are each stamped at most once.
//
// The version field is an optimistic concurrency token: the repository
// commits an update only if the stored version still matches the version
// the aggregate was loaded with.
type Order struct {
	id     kernel.UUID
	number string

	lines []Line

	kitchenStatus  *StationStatus
	juicebarStatus *StationStatus
	overallStatus  OverallStatus

	total   float64
	payment *Payment

	waitressID   kernel.UUID
	waitressName string

	customerName  string
	customerPhone string

	createdAt   time.Time
	readyAt     *time.Time
	completedAt *time.Time

	version int64

	isConstructed bool
}

// NewOrder creates a new order from its lines. Station statuses start at
// pending for every station with at least one line and stay absent for the
// other station. The total is computed from the line snapshots.
func NewOrder(
	id kernel.UUID,
	number string,
	lines []Line,
	waitressID kernel.UUID,
	waitressName string,
	customerName string,
	customerPhone string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		overallStatus: OverallStatusPending,
		customerName:  customerName,
		customerPhone: customerPhone,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setLines(lines),
		o.setWaitress(waitressID, waitressName),
	); err != nil {
		return nil, err
	}

	o.total = 0
	for _, line := range o.lines {
		o.total += line.Subtotal()
	}

	for _, line := range o.lines {
		pending := StationStatusPending
		switch line.Station() {
		case StationKitchen:
			if o.kitchenStatus == nil {
				status := pending
				o.kitchenStatus = &status
			}
		case StationJuicebar:
			if o.juicebarStatus == nil {
				status := pending
				o.juicebarStatus = &status
			}
		}
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-deriving
// any state. The stored statuses, total, payment, timestamps and version
// are taken as-is.
func RestoreOrder(
	id kernel.UUID,
	number string,
	lines []Line,
	kitchenStatus, juicebarStatus *StationStatus,
	overallStatus OverallStatus,
	total float64,
	payment *Payment,
	waitressID kernel.UUID,
	waitressName string,
	customerName string,
	customerPhone string,
	createdAt time.Time,
	readyAt, completedAt *time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		kitchenStatus:  kitchenStatus,
		juicebarStatus: juicebarStatus,
		total:          total,
		payment:        payment,
		customerName:   customerName,
		customerPhone:  customerPhone,
		createdAt:      createdAt,
		readyAt:        readyAt,
		completedAt:    completedAt,
		version:        version,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setLines(lines),
		o.setWaitress(waitressID, waitressName),
		overallStatus.Validate(),
	); err != nil {
		return nil, err
	}
	o.overallStatus = overallStatus

	if kitchenStatus != nil {
		if err := kitchenStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if juicebarStatus != nil {
		if err := juicebarStatus.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when receiving an order across a boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-readable order number.
func (o *Order) Number() string { return o.number }

// Lines returns the order's lines.
func (o *Order) Lines() []Line { return o.lines }

// KitchenStatus returns the kitchen's status, or nil if no line targets
// the kitchen.
func (o *Order) KitchenStatus() *StationStatus { return o.kitchenStatus }

// JuicebarStatus returns the juice bar's status, or nil if no line targets
// the juice bar.
func (o *Order) JuicebarStatus() *StationStatus { return o.juicebarStatus }

// OverallStatus returns the derived overall status.
func (o *Order) OverallStatus() OverallStatus { return o.overallStatus }

// Total returns the order total computed at creation.
func (o *Order) Total() float64 { return o.total }

// Payment returns the payment record, or nil before completion.
func (o *Order) Payment() *Payment { return o.payment }

// WaitressID returns the identity of the staff member who created the order.
func (o *Order) WaitressID() kernel.UUID { return o.waitressID }

// WaitressName returns the display name of the creating staff member.
func (o *Order) WaitressName() string { return o.waitressName }

// CustomerName returns the optional customer name.
func (o *Order) CustomerName() string { return o.customerName }

// CustomerPhone returns the optional customer phone number.
func (o *Order) CustomerPhone() string { return o.customerPhone }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ReadyAt returns the instant the overall status first became ready,
// or nil if that has not happened.
func (o *Order) ReadyAt() *time.Time { return o.readyAt }

// CompletedAt returns the payment timestamp, or nil before completion.
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// Version returns the optimistic concurrency token the aggregate was
// loaded with.
func (o *Order) Version() int64 { return o.version }

// IncrementVersion advances the concurrency token after a successful
// compare-and-swap write. Intended for repository implementations.
func (o *Order) IncrementVersion() { o.version++ }

// IsCompleted reports whether the order has reached its terminal state.
func (o *Order) IsCompleted() bool {
	return o.overallStatus == OverallStatusCompleted
}

// HasStation reports whether any line of the order targets the station.
func (o *Order) HasStation(station Station) bool {
	switch station {
	case StationKitchen:
		return o.kitchenStatus != nil
	case StationJuicebar:
		return o.juicebarStatus != nil
	}
	return false
}

// SetStationStatus moves one station to a new status and re-derives the
// overall status. The first derivation that yields ready stamps readyAt
// with now.
//
// It returns a ConflictError if the order is already completed (terminal)
// or if the station has no lines on this order.
func (o *Order) SetStationStatus(station Station, status StationStatus, now time.Time) error {
	if err := station.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if o.IsCompleted() {
		return errs.NewConflictError("order", "order is already completed")
	}
	if !o.HasStation(station) {
		return errs.NewConflictError("station", "order has no "+station.String()+" items")
	}

	switch station {
	case StationKitchen:
		*o.kitchenStatus = status
	case StationJuicebar:
		*o.juicebarStatus = status
	}

	overall, becameReadyNow := DeriveOverall(o.kitchenStatus, o.juicebarStatus, o.overallStatus)
	o.overallStatus = overall
	if becameReadyNow && o.readyAt == nil {
		readyAt := now
		o.readyAt = &readyAt
	}

	return nil
}

// CompletePayment finalizes the order: it records the payment, moves the
// overall status to completed and stamps completedAt with now. The
// transition is permitted from any non-terminal state; requiring ready
// first would prevent a deliberate manual close-out.
//
// A second payment attempt returns a ConflictError and leaves the order
// unchanged.
func (o *Order) CompletePayment(payment Payment, now time.Time) error {
	if o.IsCompleted() {
		return errs.NewConflictError("order", "payment has already been processed")
	}

	completedAt := now
	o.payment = &payment
	o.overallStatus = OverallStatusCompleted
	o.completedAt = &completedAt

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	o.lines = lines
	return nil
}

func (o *Order) setWaitress(waitressID kernel.UUID, waitressName string) error {
	if err := waitressID.Validate(); err != nil {
		return err
	}
	if waitressName == "" {
		return errs.NewValueIsRequiredError("waitress name")
	}
	o.waitressID = waitressID
	o.waitressName = waitressName
	return nil
}
