// Package queries contains the read side of the CQRS split. Query handlers
// bypass the aggregates and read their models straight from the database.
package queries

import (
	"errors"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order that has not been completed,
// newest first. All roles read the same list; the station screens filter
// client-side.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active order board.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OrderLineAddOnResponse is one add-on snapshot on an order line.
type OrderLineAddOnResponse struct {
	AddOnID string  `json:"addOnId"`
	NameEn  string  `json:"nameEn"`
	NameAm  string  `json:"nameAm"`
	Price   float64 `json:"price"`
}

// OrderLineResponse is one line of an order read model.
type OrderLineResponse struct {
	MenuItemID   string                   `json:"menuItemId"`
	NameEn       string                   `json:"nameEn"`
	NameAm       string                   `json:"nameAm"`
	Quantity     int                      `json:"quantity"`
	Price        float64                  `json:"price"`
	AddOns       []OrderLineAddOnResponse `json:"addOns,omitempty"`
	Station      string                   `json:"station"`
	SpecialNotes string                   `json:"specialNotes,omitempty"`
}

// GetActiveOrdersQueryResponse is the read model of one active order.
type GetActiveOrdersQueryResponse struct {
	ID             kernel.UUID         `json:"id"`
	Number         string              `json:"orderNumber"`
	Lines          []OrderLineResponse `json:"items"`
	KitchenStatus  *string             `json:"kitchenStatus,omitempty"`
	JuicebarStatus *string             `json:"juicebarStatus,omitempty"`
	OverallStatus  string              `json:"overallStatus"`
	Total          float64             `json:"total"`
	WaitressID     kernel.UUID         `json:"waitressId"`
	WaitressName   string              `json:"waitressName"`
	CustomerName   string              `json:"customerName,omitempty"`
	CustomerPhone  string              `json:"customerPhone,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	ReadyAt        *time.Time          `json:"readyAt,omitempty"`
}
