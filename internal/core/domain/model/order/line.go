package order

import (
	"errors"
	"fmt"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/errs"
)

// LineAddOn is a price and name snapshot of a catalog add-on at the moment
// the order was taken. It deliberately carries no reference to the live
// catalog record: later price changes must not affect existing orders.
//
// An add-on has no quantity of its own; it applies once per unit of its
// parent line, so its contribution to the total is price multiplied by the
// parent line's quantity.
type LineAddOn struct {
	addOnID kernel.UUID
	nameEn  string
	nameAm  string
	price   float64
}

// NewLineAddOn creates an add-on snapshot with a non-negative price.
func NewLineAddOn(addOnID kernel.UUID, nameEn, nameAm string, price float64) (LineAddOn, error) {
	if err := addOnID.Validate(); err != nil {
		return LineAddOn{}, err
	}
	if nameEn == "" {
		return LineAddOn{}, errs.NewValueIsRequiredError("add-on nameEn")
	}
	if price < 0 {
		return LineAddOn{}, errs.NewValueIsInvalidErrorWithCause(
			"add-on price",
			fmt.Errorf("%v is negative", price),
		)
	}
	return LineAddOn{addOnID: addOnID, nameEn: nameEn, nameAm: nameAm, price: price}, nil
}

// AddOnID returns the catalog identity of the snapshot.
func (a LineAddOn) AddOnID() kernel.UUID { return a.addOnID }

// NameEn returns the English display name.
func (a LineAddOn) NameEn() string { return a.nameEn }

// NameAm returns the Amharic display name.
func (a LineAddOn) NameAm() string { return a.nameAm }

// Price returns the unit price snapshot.
func (a LineAddOn) Price() float64 { return a.price }

// Line is one position of an order: a menu item snapshot with quantity,
// its add-on snapshots, the preparing station, and optional notes.
// Lines are immutable after order creation; there is no line editing.
type Line struct {
	menuItemID   kernel.UUID
	nameEn       string
	nameAm       string
	quantity     int
	price        float64
	addOns       []LineAddOn
	station      Station
	specialNotes string
}

// NewLine creates an order line. Quantity must be at least 1 and the unit
// price snapshot must be non-negative.
func NewLine(
	menuItemID kernel.UUID,
	nameEn, nameAm string,
	quantity int,
	price float64,
	addOns []LineAddOn,
	station Station,
	specialNotes string,
) (Line, error) {
	line := Line{
		addOns:       addOns,
		specialNotes: specialNotes,
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setNames(nameEn, nameAm),
		line.setQuantity(quantity),
		line.setPrice(price),
		line.setStation(station),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// MenuItemID returns the catalog identity of the ordered item.
func (l Line) MenuItemID() kernel.UUID { return l.menuItemID }

// NameEn returns the English display name snapshot.
func (l Line) NameEn() string { return l.nameEn }

// NameAm returns the Amharic display name snapshot.
func (l Line) NameAm() string { return l.nameAm }

// Quantity returns the number of units ordered.
func (l Line) Quantity() int { return l.quantity }

// Price returns the unit price snapshot taken at order time.
func (l Line) Price() float64 { return l.price }

// AddOns returns the add-on snapshots applied to every unit of the line.
func (l Line) AddOns() []LineAddOn { return l.addOns }

// Station returns the station that prepares the line.
func (l Line) Station() Station { return l.station }

// SpecialNotes returns free-form preparation notes, possibly empty.
func (l Line) SpecialNotes() string { return l.specialNotes }

// Subtotal returns the line's contribution to the order total:
// (unit price + sum of add-on prices) multiplied by the quantity.
func (l Line) Subtotal() float64 {
	addOnsPerUnit := 0.0
	for _, addOn := range l.addOns {
		addOnsPerUnit += addOn.price
	}
	return (l.price + addOnsPerUnit) * float64(l.quantity)
}

func (l *Line) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	l.menuItemID = menuItemID
	return nil
}

func (l *Line) setNames(nameEn, nameAm string) error {
	if nameEn == "" {
		return errs.NewValueIsRequiredError("line nameEn")
	}
	l.nameEn = nameEn
	l.nameAm = nameAm
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is negative", price),
		)
	}
	l.price = price
	return nil
}

func (l *Line) setStation(station Station) error {
	if err := station.Validate(); err != nil {
		return err
	}
	l.station = station
	return nil
}
