package cmd

import (
	"time"

	inathttp "inatpos/internal/adapters/in/http"
	"inatpos/internal/adapters/out/jwtauth"
	"inatpos/internal/adapters/out/postgres"
	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/application/usecases/queries"
	"inatpos/internal/core/ports"
	"inatpos/internal/pkg/keylock"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. The keyed lock is
// shared between the two order-mutating handlers so a payment and a status
// change on the same order serialize in-process.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	orderLocks *keylock.KeyLock
	publisher  ports.NotificationPublisher
	tokens     ports.TokenIssuer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.NotificationPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderLocks: keylock.New(),
		publisher:  publisher,
		tokens: jwtauth.NewHMACTokenIssuer(
			[]byte(config.JWTSecret),
			time.Duration(config.JWTTTLHours)*time.Hour,
		),
	}
}

// TokenIssuer exposes the issuer for the HTTP auth middleware.
func (c *CompositionRoot) TokenIssuer() ports.TokenIssuer {
	return c.tokens
}

func (c *CompositionRoot) createOrderUoWFactory() commands.CreateOrderUoWFactory {
	return FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.staffUoWFactory(), c.tokens)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.createOrderUoWFactory(), c.orderLocks, c.publisher)
}

func (c *CompositionRoot) CreateUpdateStationStatusCommandHandler() commands.UpdateStationStatusCommandHandler {
	return commands.NewUpdateStationStatusCommandHandler(c.orderUoWFactory(), c.orderLocks, c.publisher)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.orderUoWFactory(), c.orderLocks, c.publisher)
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() commands.CreateStaffCommandHandler {
	return commands.NewCreateStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStaffCommandHandler() commands.UpdateStaffCommandHandler {
	return commands.NewUpdateStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateDeleteStaffCommandHandler() commands.DeleteStaffCommandHandler {
	return commands.NewDeleteStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	return commands.NewUpdateCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() commands.DeleteCategoryCommandHandler {
	return commands.NewDeleteCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateSaveMenuItemCommandHandler() commands.SaveMenuItemCommandHandler {
	return commands.NewSaveMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateSaveAddOnCommandHandler() commands.SaveAddOnCommandHandler {
	return commands.NewSaveAddOnCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAddOnCommandHandler() commands.DeleteAddOnCommandHandler {
	return commands.NewDeleteAddOnCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateResetDashboardCommandHandler() commands.ResetDashboardCommandHandler {
	return commands.NewResetDashboardCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaffQueryHandler() queries.GetStaffQueryHandler {
	return queries.NewGetStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the API server from every handler above.
func (c *CompositionRoot) CreateHTTPServer() *inathttp.Server {
	return inathttp.NewServer(c.tokens, inathttp.Handlers{
		Login:               c.CreateLoginCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateStationStatus: c.CreateUpdateStationStatusCommandHandler(),
		ProcessPayment:      c.CreateProcessPaymentCommandHandler(),
		CreateStaff:         c.CreateCreateStaffCommandHandler(),
		UpdateStaff:         c.CreateUpdateStaffCommandHandler(),
		DeleteStaff:         c.CreateDeleteStaffCommandHandler(),
		CreateCategory:      c.CreateCreateCategoryCommandHandler(),
		UpdateCategory:      c.CreateUpdateCategoryCommandHandler(),
		DeleteCategory:      c.CreateDeleteCategoryCommandHandler(),
		SaveMenuItem:        c.CreateSaveMenuItemCommandHandler(),
		DeleteMenuItem:      c.CreateDeleteMenuItemCommandHandler(),
		SaveAddOn:           c.CreateSaveAddOnCommandHandler(),
		DeleteAddOn:         c.CreateDeleteAddOnCommandHandler(),
		ResetDashboard:      c.CreateResetDashboardCommandHandler(),
		GetActiveOrders:     c.CreateGetActiveOrdersQueryHandler(),
		GetStaff:            c.CreateGetStaffQueryHandler(),
		GetMenu:             c.CreateGetMenuQueryHandler(),
		GetDashboardStats:   c.CreateGetDashboardStatsQueryHandler(),
	})
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
