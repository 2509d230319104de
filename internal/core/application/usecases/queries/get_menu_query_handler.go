package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inatpos/internal/core/domain/model/kernel"
)

// GetMenuQueryHandler reads the full catalog from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for the full catalog.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle retrieves every category with its items, plus all add-ons.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var categoryRows []struct {
		ID      uuid.UUID
		NameEn  string
		NameAm  string
		Station string
	}
	err := db.Raw(`
		SELECT id, name_en, name_am, station
		FROM categories
		ORDER BY created_at
	`).Scan(&categoryRows).Error
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	var itemRows []struct {
		ID             uuid.UUID
		CategoryID     uuid.UUID
		NameEn         string
		NameAm         string
		Price          float64
		CostPerServing float64
		ImageURL       string
		InStock        bool
		CreatedAt      time.Time
	}
	err = db.Raw(`
		SELECT id, category_id, name_en, name_am, price, cost_per_serving, image_url, in_stock, created_at
		FROM menu_items
		ORDER BY created_at
	`).Scan(&itemRows).Error
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	var addOnRows []struct {
		ID        uuid.UUID
		NameEn    string
		NameAm    string
		Price     float64
		Cost      float64
		Station   string
		Available bool
	}
	err = db.Raw(`
		SELECT id, name_en, name_am, price, cost, station, available
		FROM add_ons
		ORDER BY created_at
	`).Scan(&addOnRows).Error
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	itemsByCategory := make(map[uuid.UUID][]MenuItemResponse, len(categoryRows))
	for _, row := range itemRows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return GetMenuQueryResponse{}, idErr
		}
		categoryID, idErr := kernel.UUIDFromBytes(row.CategoryID[:])
		if idErr != nil {
			return GetMenuQueryResponse{}, idErr
		}
		itemsByCategory[row.CategoryID] = append(itemsByCategory[row.CategoryID], MenuItemResponse{
			ID:             id,
			CategoryID:     categoryID,
			NameEn:         row.NameEn,
			NameAm:         row.NameAm,
			Price:          row.Price,
			CostPerServing: row.CostPerServing,
			ImageURL:       row.ImageURL,
			InStock:        row.InStock,
			CreatedAt:      row.CreatedAt,
		})
	}

	categories := make([]MenuCategoryResponse, 0, len(categoryRows))
	for _, row := range categoryRows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return GetMenuQueryResponse{}, idErr
		}
		items := itemsByCategory[row.ID]
		if items == nil {
			items = []MenuItemResponse{}
		}
		categories = append(categories, MenuCategoryResponse{
			ID:      id,
			NameEn:  row.NameEn,
			NameAm:  row.NameAm,
			Station: row.Station,
			Items:   items,
		})
	}

	addOns := make([]AddOnResponse, 0, len(addOnRows))
	for _, row := range addOnRows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return GetMenuQueryResponse{}, idErr
		}
		addOns = append(addOns, AddOnResponse{
			ID:        id,
			NameEn:    row.NameEn,
			NameAm:    row.NameAm,
			Price:     row.Price,
			Cost:      row.Cost,
			Station:   row.Station,
			Available: row.Available,
		})
	}

	return GetMenuQueryResponse{Categories: categories, AddOns: addOns}, nil
}
