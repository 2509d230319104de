// Package menu holds the catalog aggregates: categories, menu items and
// add-ons. The catalog is the source of price and station assignment
// snapshots taken at order-creation time.
package menu

import (
	"errors"
	"strings"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	ordermodel "inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/errs"
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

// Category groups menu items for one station.
type Category struct {
	id        kernel.UUID
	nameEn    string
	nameAm    string
	station   ordermodel.Station
	createdAt time.Time

	isConstructed bool
}

// NewCategory creates a category. Both names are required and unique
// across categories (uniqueness is enforced by the repository).
func NewCategory(id kernel.UUID, nameEn, nameAm string, station ordermodel.Station, createdAt time.Time) (*Category, error) {
	c := &Category{createdAt: createdAt, isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setNames(nameEn, nameAm),
		c.setStation(station),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a category from persistence.
func RestoreCategory(id kernel.UUID, nameEn, nameAm string, station ordermodel.Station, createdAt time.Time) (*Category, error) {
	return NewCategory(id, nameEn, nameAm, station, createdAt)
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID             { return c.id }
func (c *Category) NameEn() string              { return c.nameEn }
func (c *Category) NameAm() string              { return c.nameAm }
func (c *Category) Station() ordermodel.Station { return c.station }
func (c *Category) CreatedAt() time.Time        { return c.createdAt }

// Rename changes both display names.
func (c *Category) Rename(nameEn, nameAm string) error {
	return c.setNames(nameEn, nameAm)
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setNames(nameEn, nameAm string) error {
	nameEn = strings.TrimSpace(nameEn)
	nameAm = strings.TrimSpace(nameAm)
	if nameEn == "" {
		return errs.NewValueIsRequiredError("category nameEn")
	}
	if nameAm == "" {
		return errs.NewValueIsRequiredError("category nameAm")
	}
	c.nameEn = nameEn
	c.nameAm = nameAm
	return nil
}

func (c *Category) setStation(station ordermodel.Station) error {
	if err := station.Validate(); err != nil {
		return err
	}
	c.station = station
	return nil
}
