package queries

import (
	"errors"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the whole catalog: every category with its items,
// plus the add-on list. All roles read it; the waitress terminal renders
// it as the order pad.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the full catalog.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuItemResponse is one menu item read model.
type MenuItemResponse struct {
	ID             kernel.UUID `json:"id"`
	CategoryID     kernel.UUID `json:"categoryId"`
	NameEn         string      `json:"nameEn"`
	NameAm         string      `json:"nameAm"`
	Price          float64     `json:"price"`
	CostPerServing float64     `json:"costPerServing"`
	ImageURL       string      `json:"imageUrl,omitempty"`
	InStock        bool        `json:"inStock"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// MenuCategoryResponse is one category with its items.
type MenuCategoryResponse struct {
	ID      kernel.UUID        `json:"id"`
	NameEn  string             `json:"nameEn"`
	NameAm  string             `json:"nameAm"`
	Station string             `json:"station"`
	Items   []MenuItemResponse `json:"items"`
}

// AddOnResponse is one add-on read model.
type AddOnResponse struct {
	ID        kernel.UUID `json:"id"`
	NameEn    string      `json:"nameEn"`
	NameAm    string      `json:"nameAm"`
	Price     float64     `json:"price"`
	Cost      float64     `json:"cost"`
	Station   string      `json:"station"`
	Available bool        `json:"available"`
}

// GetMenuQueryResponse is the full catalog read model.
type GetMenuQueryResponse struct {
	Categories []MenuCategoryResponse `json:"categories"`
	AddOns     []AddOnResponse        `json:"addOns"`
}
