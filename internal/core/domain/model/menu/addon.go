package menu

import (
	"errors"
	"strings"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	ordermodel "inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/errs"
)

var ErrAddOnIsNotConstructed = errors.New("AddOn must be created via NewAddOn or RestoreAddOn")

// AddOn is an optional extra attachable to any item of its station.
type AddOn struct {
	id        kernel.UUID
	nameEn    string
	nameAm    string
	price     float64
	cost      float64
	station   ordermodel.Station
	available bool
	createdAt time.Time

	isConstructed bool
}

func NewAddOn(id kernel.UUID, nameEn, nameAm string, price, cost float64,
	station ordermodel.Station, available bool, createdAt time.Time) (*AddOn, error) {
	a := &AddOn{available: available, createdAt: createdAt, isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setNames(nameEn, nameAm),
		a.setPrice(price),
		a.setCost(cost),
		a.setStation(station),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddOn reconstructs an add-on from persistence.
func RestoreAddOn(id kernel.UUID, nameEn, nameAm string, price, cost float64,
	station ordermodel.Station, available bool, createdAt time.Time) (*AddOn, error) {
	return NewAddOn(id, nameEn, nameAm, price, cost, station, available, createdAt)
}

func (a *AddOn) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddOnIsNotConstructed
	}
	return nil
}

func (a *AddOn) ID() kernel.UUID             { return a.id }
func (a *AddOn) NameEn() string              { return a.nameEn }
func (a *AddOn) NameAm() string              { return a.nameAm }
func (a *AddOn) Price() float64              { return a.price }
func (a *AddOn) Cost() float64               { return a.cost }
func (a *AddOn) Station() ordermodel.Station { return a.station }
func (a *AddOn) IsAvailable() bool           { return a.available }
func (a *AddOn) CreatedAt() time.Time        { return a.createdAt }

// Update replaces the editable fields of the add-on.
func (a *AddOn) Update(nameEn, nameAm string, price, cost float64,
	station ordermodel.Station, available bool) error {
	if err := errors.Join(
		a.setNames(nameEn, nameAm),
		a.setPrice(price),
		a.setCost(cost),
		a.setStation(station),
	); err != nil {
		return err
	}
	a.available = available
	return nil
}

func (a *AddOn) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *AddOn) setNames(nameEn, nameAm string) error {
	nameEn = strings.TrimSpace(nameEn)
	nameAm = strings.TrimSpace(nameAm)
	if nameEn == "" {
		return errs.NewValueIsRequiredError("addOn nameEn")
	}
	if nameAm == "" {
		return errs.NewValueIsRequiredError("addOn nameAm")
	}
	a.nameEn = nameEn
	a.nameAm = nameAm
	return nil
}

func (a *AddOn) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("addOn price")
	}
	a.price = price
	return nil
}

func (a *AddOn) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidError("addOn cost")
	}
	a.cost = cost
	return nil
}

func (a *AddOn) setStation(station ordermodel.Station) error {
	if err := station.Validate(); err != nil {
		return err
	}
	a.station = station
	return nil
}
