package menurepo

import (
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/menu"
	"inatpos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// CategoryDTO is the database representation of a menu category.
type CategoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	NameEn    string
	NameAm    string
	Station   string `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for menu categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// ItemDTO is the database representation of a menu item.
type ItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID     uuid.UUID `gorm:"type:uuid;index"`
	NameEn         string
	NameAm         string
	Price          float64
	CostPerServing float64
	ImageURL       string
	InStock        bool
	CreatedAt      time.Time
}

// TableName specifies the database table name for menu items.
func (ItemDTO) TableName() string {
	return "menu_items"
}

// AddOnDTO is the database representation of an add-on.
type AddOnDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	NameEn    string
	NameAm    string
	Price     float64
	Cost      float64
	Station   string `gorm:"index"`
	Available bool
	CreatedAt time.Time
}

// TableName specifies the database table name for add-ons.
func (AddOnDTO) TableName() string {
	return "add_ons"
}

func categoryFromDomain(aggregate *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:        aggregate.ID().Bytes(),
		NameEn:    aggregate.NameEn(),
		NameAm:    aggregate.NameAm(),
		Station:   aggregate.Station().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreCategory(id, dto.NameEn, dto.NameAm, order.Station(dto.Station), dto.CreatedAt)
}

func itemFromDomain(aggregate *menu.Item) ItemDTO {
	return ItemDTO{
		ID:             aggregate.ID().Bytes(),
		CategoryID:     aggregate.CategoryID().Bytes(),
		NameEn:         aggregate.NameEn(),
		NameAm:         aggregate.NameAm(),
		Price:          aggregate.Price(),
		CostPerServing: aggregate.CostPerServing(),
		ImageURL:       aggregate.ImageURL(),
		InStock:        aggregate.IsInStock(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func itemToDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(
		id,
		categoryID,
		dto.NameEn,
		dto.NameAm,
		dto.Price,
		dto.CostPerServing,
		dto.ImageURL,
		dto.InStock,
		dto.CreatedAt,
	)
}

func addOnFromDomain(aggregate *menu.AddOn) AddOnDTO {
	return AddOnDTO{
		ID:        aggregate.ID().Bytes(),
		NameEn:    aggregate.NameEn(),
		NameAm:    aggregate.NameAm(),
		Price:     aggregate.Price(),
		Cost:      aggregate.Cost(),
		Station:   aggregate.Station().String(),
		Available: aggregate.IsAvailable(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func addOnToDomain(dto AddOnDTO) (*menu.AddOn, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreAddOn(
		id,
		dto.NameEn,
		dto.NameAm,
		dto.Price,
		dto.Cost,
		order.Station(dto.Station),
		dto.Available,
		dto.CreatedAt,
	)
}
