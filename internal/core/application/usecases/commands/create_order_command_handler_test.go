package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/menu"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/pkg/errs"
	"inatpos/internal/pkg/keylock"
)

type createOrderFixture struct {
	category *menu.Category
	item     *menu.Item
	addOn    *menu.AddOn
}

func newCreateOrderFixture(t *testing.T) createOrderFixture {
	t.Helper()
	now := time.Now().UTC()

	category, err := menu.NewCategory(kernel.NewUUID(), "Burgers", "በርገር", order.StationKitchen, now)
	require.NoError(t, err)

	item, err := menu.NewItem(kernel.NewUUID(), category.ID(), "Classic Burger", "ክላሲክ በርገር", 250, 90, "", true, now)
	require.NoError(t, err)

	addOn, err := menu.NewAddOn(kernel.NewUUID(), "Extra Cheese", "ተጨማሪ ቺዝ", 30, 12, order.StationKitchen, true, now)
	require.NoError(t, err)

	return createOrderFixture{category: category, item: item, addOn: addOn}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)

	lines := []commands.CreateOrderLine{{
		MenuItemID: fx.item.ID(),
		Quantity:   2,
		AddOnIDs:   []kernel.UUID{fx.addOn.ID()},
	}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), lines, kernel.NewUUID(), "Sara", "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	categoryRepo := new(MockCategoryRepository)
	addOnRepo := new(MockAddOnRepository)
	allocator := new(MockOrderNumberAllocator)
	publisher := new(MockNotificationPublisher)

	uow := new(MockCreateOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("CategoryRepository").Return(categoryRepo).Once()
	uow.On("AddOnRepository").Return(addOnRepo).Once()
	uow.On("OrderNumberAllocator").Return(allocator).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	itemRepo.On("Get", ctx, fx.item.ID()).Return(fx.item, nil).Once()
	categoryRepo.On("Get", ctx, fx.category.ID()).Return(fx.category, nil).Once()
	addOnRepo.On("Get", ctx, fx.addOn.ID()).Return(fx.addOn, nil).Once()
	allocator.On("Next", ctx).Return("042", nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	publisher.On("Publish", ctx, mock.AnythingOfType("order.CreatedEventPayload")).Return(nil).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, keylock.New(), publisher)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "042", created.Number())
	// (250 + 30) * 2
	assert.Equal(t, 560.0, created.Total())
	assert.Equal(t, order.StationStatusPending, *created.KitchenStatus())
	assert.Nil(t, created.JuicebarStatus())
	assert.Equal(t, order.OverallStatusPending, created.OverallStatus())

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_OutOfStockItem(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)
	fx.item.SetInStock(false)

	lines := []commands.CreateOrderLine{{MenuItemID: fx.item.ID(), Quantity: 1}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), lines, kernel.NewUUID(), "Sara", "", "")
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	itemRepo.On("Get", ctx, fx.item.ID()).Return(fx.item, nil).Once()

	uow := new(MockCreateOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("CategoryRepository").Return(new(MockCategoryRepository)).Once()
	uow.On("AddOnRepository").Return(new(MockAddOnRepository)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, keylock.New(), new(MockNotificationPublisher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestCreateOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()

	lines := []commands.CreateOrderLine{{MenuItemID: itemID, Quantity: 1}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), lines, kernel.NewUUID(), "Sara", "", "")
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("item", itemID)
	itemRepo := new(MockItemRepository)
	itemRepo.On("Get", ctx, itemID).Return(nil, notFound).Once()

	uow := new(MockCreateOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("CategoryRepository").Return(new(MockCategoryRepository)).Once()
	uow.On("AddOnRepository").Return(new(MockAddOnRepository)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, keylock.New(), new(MockNotificationPublisher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_AddOnForWrongStation(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)

	juiceAddOn, err := menu.NewAddOn(kernel.NewUUID(), "Extra Mango", "ተጨማሪ ማንጎ", 20, 8, order.StationJuicebar, true, time.Now().UTC())
	require.NoError(t, err)

	lines := []commands.CreateOrderLine{{
		MenuItemID: fx.item.ID(),
		Quantity:   1,
		AddOnIDs:   []kernel.UUID{juiceAddOn.ID()},
	}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), lines, kernel.NewUUID(), "Sara", "", "")
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	itemRepo.On("Get", ctx, fx.item.ID()).Return(fx.item, nil).Once()
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("Get", ctx, fx.category.ID()).Return(fx.category, nil).Once()
	addOnRepo := new(MockAddOnRepository)
	addOnRepo.On("Get", ctx, juiceAddOn.ID()).Return(juiceAddOn, nil).Once()

	uow := new(MockCreateOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("CategoryRepository").Return(categoryRepo).Once()
	uow.On("AddOnRepository").Return(addOnRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, keylock.New(), new(MockNotificationPublisher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestCreateOrderCommandHandler_Handle_AllocatorError(t *testing.T) {
	ctx := t.Context()
	fx := newCreateOrderFixture(t)

	lines := []commands.CreateOrderLine{{MenuItemID: fx.item.ID(), Quantity: 1}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), lines, kernel.NewUUID(), "Sara", "", "")
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	itemRepo.On("Get", ctx, fx.item.ID()).Return(fx.item, nil).Once()
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("Get", ctx, fx.category.ID()).Return(fx.category, nil).Once()
	allocator := new(MockOrderNumberAllocator)
	allocator.On("Next", ctx).Return("", errors.New("sequence unavailable")).Once()

	uow := new(MockCreateOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("CategoryRepository").Return(categoryRepo).Once()
	uow.On("AddOnRepository").Return(new(MockAddOnRepository)).Once()
	uow.On("OrderNumberAllocator").Return(allocator).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, keylock.New(), new(MockNotificationPublisher))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewCreateOrderCommandHandler(new(MockCreateOrderUoWFactory), keylock.New(), new(MockNotificationPublisher))
	_, err := h.Handle(ctx, commands.CreateOrderCommand{})
	require.Error(t, err)
}
