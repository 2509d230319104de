package order

// Event is a lifecycle notification payload published to station displays
// after a state transition has been committed. Delivery is fire-and-forget:
// events are not part of the transactional contract.
type Event interface {
	// EventName returns the wire name of the event.
	EventName() string
}

// Event wire names.
const (
	EventNameNewOrder           = "new_order"
	EventNameOrderStatusUpdated = "order_status_updated"
	EventNameOrderCompleted     = "order_completed"
)

// CreatedEventPayload announces a newly created order. Station statuses are
// present only for stations that have lines on the order.
type CreatedEventPayload struct {
	OrderID        string         `json:"orderId"`
	OrderNumber    string         `json:"orderNumber"`
	KitchenStatus  *StationStatus `json:"kitchenStatus,omitempty"`
	JuicebarStatus *StationStatus `json:"juicebarStatus,omitempty"`
}

// EventName implements Event.
func (CreatedEventPayload) EventName() string { return EventNameNewOrder }

// StatusUpdatedEventPayload announces a station status change and the
// resulting overall status.
type StatusUpdatedEventPayload struct {
	OrderID       string        `json:"orderId"`
	OrderNumber   string        `json:"orderNumber"`
	Station       Station       `json:"station"`
	NewStatus     StationStatus `json:"newStatus"`
	OverallStatus OverallStatus `json:"overallStatus"`
}

// EventName implements Event.
func (StatusUpdatedEventPayload) EventName() string { return EventNameOrderStatusUpdated }

// CompletedEventPayload announces that payment was processed and the order
// left the active set.
type CompletedEventPayload struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// EventName implements Event.
func (CompletedEventPayload) EventName() string { return EventNameOrderCompleted }

// CreatedEvent builds the new_order payload for the order.
func (o *Order) CreatedEvent() CreatedEventPayload {
	payload := CreatedEventPayload{
		OrderID:     o.id.String(),
		OrderNumber: o.number,
	}
	if o.kitchenStatus != nil {
		status := *o.kitchenStatus
		payload.KitchenStatus = &status
	}
	if o.juicebarStatus != nil {
		status := *o.juicebarStatus
		payload.JuicebarStatus = &status
	}
	return payload
}

// StatusUpdatedEvent builds the order_status_updated payload for a station
// transition that has just been applied to the order.
func (o *Order) StatusUpdatedEvent(station Station, newStatus StationStatus) StatusUpdatedEventPayload {
	return StatusUpdatedEventPayload{
		OrderID:       o.id.String(),
		OrderNumber:   o.number,
		Station:       station,
		NewStatus:     newStatus,
		OverallStatus: o.overallStatus,
	}
}

// CompletedEvent builds the order_completed payload for the order.
func (o *Order) CompletedEvent() CompletedEventPayload {
	return CompletedEventPayload{
		OrderID:     o.id.String(),
		OrderNumber: o.number,
	}
}
