package commands

import (
	"context"
	"time"

	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/core/ports"
	"inatpos/internal/pkg/errs"
	"inatpos/internal/pkg/keylock"
)

// CreateOrderCommandHandler handles order creation. It resolves the
// requested catalog references into price/name/station snapshots, allocates
// the next order number and persists the order in one transaction. The
// new_order notification is published only after the commit succeeds, under
// the per-order lock, so a status update racing in right after the commit
// cannot emit its event first.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	locks      *keylock.KeyLock
	publisher  ports.NotificationPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. The lock set must be shared with every other handler that
// mutates orders.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	locks *keylock.KeyLock,
	publisher ports.NotificationPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		publisher:  publisher,
	}
}

// Handle processes the order creation command and returns the created order.
// An unknown menu item or add-on produces errs.ObjectNotFoundError; an
// out-of-stock item or an add-on for the wrong station produces
// errs.ConflictError.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(cmd.OrderID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lines, err := h.resolveLines(ctx, uow, cmd.Lines())
	if err != nil {
		return nil, err
	}

	number, err := uow.OrderNumberAllocator().Next(ctx)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		number,
		lines,
		cmd.WaitressID(),
		cmd.WaitressName(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// State is committed; notification failures are the publisher's problem.
	_ = h.publisher.Publish(ctx, newOrder.CreatedEvent())

	return newOrder, nil
}

func (h CreateOrderCommandHandler) resolveLines(
	ctx context.Context,
	uow CreateOrderUoW,
	requested []CreateOrderLine,
) ([]order.Line, error) {
	itemRepo := uow.ItemRepository()
	categoryRepo := uow.CategoryRepository()
	addOnRepo := uow.AddOnRepository()

	lines := make([]order.Line, 0, len(requested))
	for _, req := range requested {
		item, err := itemRepo.Get(ctx, req.MenuItemID)
		if err != nil {
			return nil, err
		}
		if !item.IsInStock() {
			return nil, errs.NewConflictError("menuItemId", item.NameEn()+" is out of stock")
		}

		category, err := categoryRepo.Get(ctx, item.CategoryID())
		if err != nil {
			return nil, err
		}
		station := category.Station()

		addOns, err := h.resolveAddOns(ctx, addOnRepo, req.AddOnIDs, station)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(
			item.ID(),
			item.NameEn(),
			item.NameAm(),
			req.Quantity,
			item.Price(),
			addOns,
			station,
			req.SpecialNotes,
		)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}

func (h CreateOrderCommandHandler) resolveAddOns(
	ctx context.Context,
	addOnRepo ports.AddOnRepository,
	addOnIDs []kernel.UUID,
	station order.Station,
) ([]order.LineAddOn, error) {
	if len(addOnIDs) == 0 {
		return nil, nil
	}

	addOns := make([]order.LineAddOn, 0, len(addOnIDs))
	for _, addOnID := range addOnIDs {
		addOn, err := addOnRepo.Get(ctx, addOnID)
		if err != nil {
			return nil, err
		}
		if !addOn.IsAvailable() {
			return nil, errs.NewConflictError("addOnId", addOn.NameEn()+" is not available")
		}
		if addOn.Station() != station {
			return nil, errs.NewConflictError("addOnId", addOn.NameEn()+" does not apply to "+station.String()+" items")
		}

		lineAddOn, err := order.NewLineAddOn(addOn.ID(), addOn.NameEn(), addOn.NameAm(), addOn.Price())
		if err != nil {
			return nil, err
		}

		addOns = append(addOns, lineAddOn)
	}

	return addOns, nil
}
