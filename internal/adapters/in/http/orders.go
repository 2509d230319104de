package http

import (
	"net/http"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/application/usecases/queries"
	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type createOrderLineRequest struct {
	MenuItemID   string   `json:"menuItemId"`
	Quantity     int      `json:"quantity"`
	AddOnIDs     []string `json:"addOnIds,omitempty"`
	SpecialNotes string   `json:"specialNotes,omitempty"`
}

type createOrderRequest struct {
	Items         []createOrderLineRequest `json:"items"`
	CustomerName  string                   `json:"customerName,omitempty"`
	CustomerPhone string                   `json:"customerPhone,omitempty"`
}

type updateStationStatusRequest struct {
	Station string `json:"station"`
	Status  string `json:"status"`
}

type processPaymentRequest struct {
	Method         string  `json:"method"`
	AmountReceived float64 `json:"amountReceived"`
	Change         float64 `json:"change"`
	MobileProvider string  `json:"mobileProvider,omitempty"`
}

// CreateOrder handles POST /api/orders. The waitress identity comes from
// the authenticated principal, never from the body.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.CreateOrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid menu item id: "+item.MenuItemID)
		}

		addOnIDs := make([]kernel.UUID, 0, len(item.AddOnIDs))
		for _, raw := range item.AddOnIDs {
			addOnID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return errorJSON(ctx, http.StatusBadRequest, "Invalid add-on id: "+raw)
			}
			addOnIDs = append(addOnIDs, addOnID)
		}

		lines = append(lines, commands.CreateOrderLine{
			MenuItemID:   menuItemID,
			Quantity:     item.Quantity,
			AddOnIDs:     addOnIDs,
			SpecialNotes: item.SpecialNotes,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		lines,
		principal.ID,
		principal.DisplayName,
		req.CustomerName,
		req.CustomerPhone,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetActiveOrders handles GET /api/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// UpdateStationStatus handles PATCH /api/orders/:id/station-status.
func (s *Server) UpdateStationStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req updateStationStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateStationStatusCommand(
		orderID,
		order.Station(req.Station),
		order.StationStatus(req.Status),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateStationStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ProcessPayment handles POST /api/orders/:id/payment.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req processPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	payment, err := order.NewPayment(
		order.PaymentMethod(req.Method),
		req.AmountReceived,
		req.Change,
		req.MobileProvider,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewProcessPaymentCommand(orderID, payment)
	if err != nil {
		return writeError(ctx, err)
	}

	completed, err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(completed))
}

// toOrderResponse projects a domain order into the same read model the
// active order board serves, so clients see one shape everywhere.
func toOrderResponse(o *order.Order) queries.GetActiveOrdersQueryResponse {
	lines := make([]queries.OrderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		addOns := make([]queries.OrderLineAddOnResponse, 0, len(line.AddOns()))
		for _, addOn := range line.AddOns() {
			addOns = append(addOns, queries.OrderLineAddOnResponse{
				AddOnID: addOn.AddOnID().String(),
				NameEn:  addOn.NameEn(),
				NameAm:  addOn.NameAm(),
				Price:   addOn.Price(),
			})
		}
		if len(addOns) == 0 {
			addOns = nil
		}

		lines = append(lines, queries.OrderLineResponse{
			MenuItemID:   line.MenuItemID().String(),
			NameEn:       line.NameEn(),
			NameAm:       line.NameAm(),
			Quantity:     line.Quantity(),
			Price:        line.Price(),
			AddOns:       addOns,
			Station:      line.Station().String(),
			SpecialNotes: line.SpecialNotes(),
		})
	}

	response := queries.GetActiveOrdersQueryResponse{
		ID:            o.ID(),
		Number:        o.Number(),
		Lines:         lines,
		OverallStatus: o.OverallStatus().String(),
		Total:         o.Total(),
		WaitressID:    o.WaitressID(),
		WaitressName:  o.WaitressName(),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		CreatedAt:     o.CreatedAt(),
		ReadyAt:       o.ReadyAt(),
	}

	if status := o.KitchenStatus(); status != nil {
		value := status.String()
		response.KitchenStatus = &value
	}
	if status := o.JuicebarStatus(); status != nil {
		value := status.String()
		response.JuicebarStatus = &value
	}

	return response
}
