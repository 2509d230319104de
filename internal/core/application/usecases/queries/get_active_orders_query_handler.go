package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler reads the active order board from the database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the active order board.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

type activeOrderRow struct {
	ID             uuid.UUID
	Number         string
	KitchenStatus  *string
	JuicebarStatus *string
	OverallStatus  string
	Total          float64
	WaitressID     uuid.UUID
	WaitressName   string
	CustomerName   string
	CustomerPhone  string
	CreatedAt      time.Time
	ReadyAt        *time.Time
}

type orderLineRow struct {
	OrderID      uuid.UUID
	MenuItemID   uuid.UUID
	NameEn       string
	NameAm       string
	Quantity     int
	Price        float64
	AddOns       []byte
	Station      string
	SpecialNotes string
}

// Handle retrieves every non-completed order, newest first, with its lines.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orderRows []activeOrderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			kitchen_status,
			juicebar_status,
			overall_status,
			total,
			waitress_id,
			waitress_name,
			customer_name,
			customer_phone,
			created_at,
			ready_at
		FROM orders
		WHERE overall_status != ?
		ORDER BY created_at DESC
	`, order.OverallStatusCompleted).Scan(&orderRows).Error
	if err != nil {
		return nil, err
	}

	if len(orderRows) == 0 {
		return []GetActiveOrdersQueryResponse{}, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orderRows))
	for _, row := range orderRows {
		orderIDs = append(orderIDs, row.ID)
	}

	var lineRows []orderLineRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name_en,
			name_am,
			quantity,
			price,
			add_ons,
			station,
			special_notes
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, idx
	`, orderIDs).Scan(&lineRows).Error
	if err != nil {
		return nil, err
	}

	linesByOrder := make(map[uuid.UUID][]OrderLineResponse, len(orderRows))
	for _, row := range lineRows {
		line, lineErr := row.toResponse()
		if lineErr != nil {
			return nil, lineErr
		}
		linesByOrder[row.OrderID] = append(linesByOrder[row.OrderID], line)
	}

	orders := make([]GetActiveOrdersQueryResponse, 0, len(orderRows))
	for _, row := range orderRows {
		response, respErr := row.toResponse(linesByOrder[row.ID])
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, response)
	}

	return orders, nil
}

func (r orderLineRow) toResponse() (OrderLineResponse, error) {
	var addOns []OrderLineAddOnResponse
	if len(r.AddOns) > 0 {
		if err := json.Unmarshal(r.AddOns, &addOns); err != nil {
			return OrderLineResponse{}, err
		}
	}

	return OrderLineResponse{
		MenuItemID:   r.MenuItemID.String(),
		NameEn:       r.NameEn,
		NameAm:       r.NameAm,
		Quantity:     r.Quantity,
		Price:        r.Price,
		AddOns:       addOns,
		Station:      r.Station,
		SpecialNotes: r.SpecialNotes,
	}, nil
}

func (r activeOrderRow) toResponse(lines []OrderLineResponse) (GetActiveOrdersQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	waitressID, err := kernel.UUIDFromBytes(r.WaitressID[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	return GetActiveOrdersQueryResponse{
		ID:             id,
		Number:         r.Number,
		Lines:          lines,
		KitchenStatus:  r.KitchenStatus,
		JuicebarStatus: r.JuicebarStatus,
		OverallStatus:  r.OverallStatus,
		Total:          r.Total,
		WaitressID:     waitressID,
		WaitressName:   r.WaitressName,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		CreatedAt:      r.CreatedAt,
		ReadyAt:        r.ReadyAt,
	}, nil
}
