// Package http exposes the POS over a JSON API. Handlers translate
// requests into commands and queries; every route except login and the
// health check sits behind bearer-token auth and a role gate.
package http

import (
	"net/http"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/application/usecases/queries"
	"inatpos/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokens ports.TokenIssuer

	// Command handlers
	loginHandler               commands.LoginCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	updateStationStatusHandler commands.UpdateStationStatusCommandHandler
	processPaymentHandler      commands.ProcessPaymentCommandHandler
	createStaffHandler         commands.CreateStaffCommandHandler
	updateStaffHandler         commands.UpdateStaffCommandHandler
	deleteStaffHandler         commands.DeleteStaffCommandHandler
	createCategoryHandler      commands.CreateCategoryCommandHandler
	updateCategoryHandler      commands.UpdateCategoryCommandHandler
	deleteCategoryHandler      commands.DeleteCategoryCommandHandler
	saveMenuItemHandler        commands.SaveMenuItemCommandHandler
	deleteMenuItemHandler      commands.DeleteMenuItemCommandHandler
	saveAddOnHandler           commands.SaveAddOnCommandHandler
	deleteAddOnHandler         commands.DeleteAddOnCommandHandler
	resetDashboardHandler      commands.ResetDashboardCommandHandler

	// Query handlers
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getStaffHandler          queries.GetStaffQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler
}

// Handlers bundles every use case the server needs.
type Handlers struct {
	Login               commands.LoginCommandHandler
	CreateOrder         commands.CreateOrderCommandHandler
	UpdateStationStatus commands.UpdateStationStatusCommandHandler
	ProcessPayment      commands.ProcessPaymentCommandHandler
	CreateStaff         commands.CreateStaffCommandHandler
	UpdateStaff         commands.UpdateStaffCommandHandler
	DeleteStaff         commands.DeleteStaffCommandHandler
	CreateCategory      commands.CreateCategoryCommandHandler
	UpdateCategory      commands.UpdateCategoryCommandHandler
	DeleteCategory      commands.DeleteCategoryCommandHandler
	SaveMenuItem        commands.SaveMenuItemCommandHandler
	DeleteMenuItem      commands.DeleteMenuItemCommandHandler
	SaveAddOn           commands.SaveAddOnCommandHandler
	DeleteAddOn         commands.DeleteAddOnCommandHandler
	ResetDashboard      commands.ResetDashboardCommandHandler
	GetActiveOrders     queries.GetActiveOrdersQueryHandler
	GetStaff            queries.GetStaffQueryHandler
	GetMenu             queries.GetMenuQueryHandler
	GetDashboardStats   queries.GetDashboardStatsQueryHandler
}

// NewServer creates a new HTTP server with the required use case handlers.
func NewServer(tokens ports.TokenIssuer, handlers Handlers) *Server {
	return &Server{
		tokens:                     tokens,
		loginHandler:               handlers.Login,
		createOrderHandler:         handlers.CreateOrder,
		updateStationStatusHandler: handlers.UpdateStationStatus,
		processPaymentHandler:      handlers.ProcessPayment,
		createStaffHandler:         handlers.CreateStaff,
		updateStaffHandler:         handlers.UpdateStaff,
		deleteStaffHandler:         handlers.DeleteStaff,
		createCategoryHandler:      handlers.CreateCategory,
		updateCategoryHandler:      handlers.UpdateCategory,
		deleteCategoryHandler:      handlers.DeleteCategory,
		saveMenuItemHandler:        handlers.SaveMenuItem,
		deleteMenuItemHandler:      handlers.DeleteMenuItem,
		saveAddOnHandler:           handlers.SaveAddOn,
		deleteAddOnHandler:         handlers.DeleteAddOn,
		resetDashboardHandler:      handlers.ResetDashboard,
		getActiveOrdersHandler:     handlers.GetActiveOrders,
		getStaffHandler:            handlers.GetStaff,
		getMenuHandler:             handlers.GetMenu,
		getDashboardStatsHandler:   handlers.GetDashboardStats,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)
	e.POST("/api/auth/login", s.Login)

	api := e.Group("/api", s.Authenticate)

	api.GET("/auth/me", s.Me)

	api.POST("/orders", s.CreateOrder, s.RequireOrderTaking)
	api.GET("/orders/active", s.GetActiveOrders)
	api.PATCH("/orders/:id/station-status", s.UpdateStationStatus, s.RequireStationDisplay)
	api.POST("/orders/:id/payment", s.ProcessPayment, s.RequireOrderTaking)

	api.GET("/menu", s.GetMenu)

	owner := api.Group("", s.RequireManagement)
	owner.GET("/staff", s.GetStaff)
	owner.POST("/staff", s.CreateStaff)
	owner.PUT("/staff/:id", s.UpdateStaff)
	owner.DELETE("/staff/:id", s.DeleteStaff)

	owner.POST("/categories", s.CreateCategory)
	owner.PUT("/categories/:id", s.UpdateCategory)
	owner.DELETE("/categories/:id", s.DeleteCategory)

	owner.POST("/menu-items", s.CreateMenuItem)
	owner.PUT("/menu-items/:id", s.UpdateMenuItem)
	owner.DELETE("/menu-items/:id", s.DeleteMenuItem)

	owner.POST("/add-ons", s.CreateAddOn)
	owner.PUT("/add-ons/:id", s.UpdateAddOn)
	owner.DELETE("/add-ons/:id", s.DeleteAddOn)

	owner.GET("/dashboard/stats", s.GetDashboardStats)
	owner.POST("/dashboard/reset", s.ResetDashboard)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
