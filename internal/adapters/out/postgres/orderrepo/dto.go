// Package orderrepo persists order aggregates. It maps the aggregate to an
// orders row plus one order_lines row per line; add-on snapshots are stored
// as a JSON column on the line since they are immutable and never queried
// individually.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column is the optimistic concurrency token checked on update.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number                string    `gorm:"index"`
	KitchenStatus         *string
	JuicebarStatus        *string
	OverallStatus         string `gorm:"index"`
	Total                 float64
	PaymentMethod         *string
	PaymentAmountReceived *float64
	PaymentChange         *float64
	PaymentMobileProvider *string
	WaitressID            uuid.UUID `gorm:"type:uuid;index"`
	WaitressName          string
	CustomerName          string
	CustomerPhone         string
	CreatedAt             time.Time `gorm:"index"`
	ReadyAt               *time.Time
	CompletedAt           *time.Time
	Version               int64

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line row. Lines are immutable after
// creation and keyed by their position within the order.
type OrderLineDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Idx          int       `gorm:"primaryKey"`
	MenuItemID   uuid.UUID `gorm:"type:uuid"`
	NameEn       string
	NameAm       string
	Quantity     int
	Price        float64
	AddOns       []byte `gorm:"type:jsonb"`
	Station      string
	SpecialNotes string
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

type lineAddOnJSON struct {
	AddOnID string  `json:"addOnId"`
	NameEn  string  `json:"nameEn"`
	NameAm  string  `json:"nameAm"`
	Price   float64 `json:"price"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		OverallStatus: aggregate.OverallStatus().String(),
		Total:         aggregate.Total(),
		WaitressID:    aggregate.WaitressID().Bytes(),
		WaitressName:  aggregate.WaitressName(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		CreatedAt:     aggregate.CreatedAt(),
		ReadyAt:       aggregate.ReadyAt(),
		CompletedAt:   aggregate.CompletedAt(),
		Version:       aggregate.Version(),
	}

	if status := aggregate.KitchenStatus(); status != nil {
		value := status.String()
		dto.KitchenStatus = &value
	}
	if status := aggregate.JuicebarStatus(); status != nil {
		value := status.String()
		dto.JuicebarStatus = &value
	}

	if payment := aggregate.Payment(); payment != nil {
		method := payment.Method().String()
		amount := payment.AmountReceived()
		change := payment.Change()
		dto.PaymentMethod = &method
		dto.PaymentAmountReceived = &amount
		dto.PaymentChange = &change
		if provider := payment.MobileProvider(); provider != "" {
			dto.PaymentMobileProvider = &provider
		}
	}

	for idx, line := range aggregate.Lines() {
		lineDTO, err := lineFromDomain(aggregate.ID().Bytes(), idx, line)
		if err != nil {
			return OrderDTO{}, err
		}
		dto.Lines = append(dto.Lines, lineDTO)
	}

	return dto, nil
}

func lineFromDomain(orderID uuid.UUID, idx int, line order.Line) (OrderLineDTO, error) {
	addOns := make([]lineAddOnJSON, 0, len(line.AddOns()))
	for _, addOn := range line.AddOns() {
		addOns = append(addOns, lineAddOnJSON{
			AddOnID: addOn.AddOnID().String(),
			NameEn:  addOn.NameEn(),
			NameAm:  addOn.NameAm(),
			Price:   addOn.Price(),
		})
	}

	raw, err := json.Marshal(addOns)
	if err != nil {
		return OrderLineDTO{}, err
	}

	return OrderLineDTO{
		OrderID:      orderID,
		Idx:          idx,
		MenuItemID:   line.MenuItemID().Bytes(),
		NameEn:       line.NameEn(),
		NameAm:       line.NameAm(),
		Quantity:     line.Quantity(),
		Price:        line.Price(),
		AddOns:       raw,
		Station:      line.Station().String(),
		SpecialNotes: line.SpecialNotes(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, taking stored statuses and timestamps as-is.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	waitressID, err := kernel.UUIDFromBytes(dto.WaitressID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var kitchenStatus, juicebarStatus *order.StationStatus
	if dto.KitchenStatus != nil {
		status := order.StationStatus(*dto.KitchenStatus)
		kitchenStatus = &status
	}
	if dto.JuicebarStatus != nil {
		status := order.StationStatus(*dto.JuicebarStatus)
		juicebarStatus = &status
	}

	var payment *order.Payment
	if dto.PaymentMethod != nil {
		provider := ""
		if dto.PaymentMobileProvider != nil {
			provider = *dto.PaymentMobileProvider
		}
		restored, paymentErr := order.NewPayment(
			order.PaymentMethod(*dto.PaymentMethod),
			*dto.PaymentAmountReceived,
			*dto.PaymentChange,
			provider,
		)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payment = &restored
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		lines,
		kitchenStatus, juicebarStatus,
		order.OverallStatus(dto.OverallStatus),
		dto.Total,
		payment,
		waitressID,
		dto.WaitressName,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.CreatedAt,
		dto.ReadyAt, dto.CompletedAt,
		dto.Version,
	)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	var rawAddOns []lineAddOnJSON
	if len(dto.AddOns) > 0 {
		if err = json.Unmarshal(dto.AddOns, &rawAddOns); err != nil {
			return order.Line{}, err
		}
	}

	addOns := make([]order.LineAddOn, 0, len(rawAddOns))
	for _, raw := range rawAddOns {
		addOnID, idErr := kernel.UUIDFromString(raw.AddOnID)
		if idErr != nil {
			return order.Line{}, idErr
		}
		addOn, addOnErr := order.NewLineAddOn(addOnID, raw.NameEn, raw.NameAm, raw.Price)
		if addOnErr != nil {
			return order.Line{}, addOnErr
		}
		addOns = append(addOns, addOn)
	}

	return order.NewLine(
		menuItemID,
		dto.NameEn,
		dto.NameAm,
		dto.Quantity,
		dto.Price,
		addOns,
		order.Station(dto.Station),
		dto.SpecialNotes,
	)
}
