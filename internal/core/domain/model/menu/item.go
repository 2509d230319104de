package menu

import (
	"errors"
	"strings"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a single sellable menu position. Its price and the station of
// its category are snapshotted into order lines when an order is created,
// so later catalog edits never rewrite existing orders.
type Item struct {
	id             kernel.UUID
	categoryID     kernel.UUID
	nameEn         string
	nameAm         string
	price          float64
	costPerServing float64
	imageURL       string
	inStock        bool
	createdAt      time.Time

	isConstructed bool
}

func NewItem(id, categoryID kernel.UUID, nameEn, nameAm string, price, costPerServing float64,
	imageURL string, inStock bool, createdAt time.Time) (*Item, error) {
	i := &Item{
		imageURL:      strings.TrimSpace(imageURL),
		inStock:       inStock,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		i.setID(id),
		i.setCategoryID(categoryID),
		i.setNames(nameEn, nameAm),
		i.setPrice(price),
		i.setCostPerServing(costPerServing),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreItem reconstructs an item from persistence.
func RestoreItem(id, categoryID kernel.UUID, nameEn, nameAm string, price, costPerServing float64,
	imageURL string, inStock bool, createdAt time.Time) (*Item, error) {
	return NewItem(id, categoryID, nameEn, nameAm, price, costPerServing, imageURL, inStock, createdAt)
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID         { return i.id }
func (i *Item) CategoryID() kernel.UUID { return i.categoryID }
func (i *Item) NameEn() string          { return i.nameEn }
func (i *Item) NameAm() string          { return i.nameAm }
func (i *Item) Price() float64          { return i.price }
func (i *Item) CostPerServing() float64 { return i.costPerServing }
func (i *Item) ImageURL() string        { return i.imageURL }
func (i *Item) IsInStock() bool         { return i.inStock }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }

// Update replaces the editable fields of the item.
func (i *Item) Update(categoryID kernel.UUID, nameEn, nameAm string, price, costPerServing float64,
	imageURL string, inStock bool) error {
	if err := errors.Join(
		i.setCategoryID(categoryID),
		i.setNames(nameEn, nameAm),
		i.setPrice(price),
		i.setCostPerServing(costPerServing),
	); err != nil {
		return err
	}
	i.imageURL = strings.TrimSpace(imageURL)
	i.inStock = inStock
	return nil
}

// SetInStock toggles whether the item can be ordered.
func (i *Item) SetInStock(inStock bool) {
	i.inStock = inStock
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("item categoryId", err)
	}
	i.categoryID = categoryID
	return nil
}

func (i *Item) setNames(nameEn, nameAm string) error {
	nameEn = strings.TrimSpace(nameEn)
	nameAm = strings.TrimSpace(nameAm)
	if nameEn == "" {
		return errs.NewValueIsRequiredError("item nameEn")
	}
	if nameAm == "" {
		return errs.NewValueIsRequiredError("item nameAm")
	}
	i.nameEn = nameEn
	i.nameAm = nameAm
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("item price")
	}
	i.price = price
	return nil
}

func (i *Item) setCostPerServing(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidError("item costPerServing")
	}
	i.costPerServing = cost
	return nil
}
