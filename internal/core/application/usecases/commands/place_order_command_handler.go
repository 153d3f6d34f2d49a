package commands

import (
	"context"

	"eshop/internal/core/domain/model/order"
	"eshop/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Reserves stock for every requested line atomically, snapshots unit prices
// from the catalog, and persists the new order in Reserved status.
//
// Placement is all-or-nothing: if any line cannot be reserved, units already
// reserved for earlier lines are released again and the order is not created.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory spanning order and product repositories.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the placed order.
// Fails with UnknownProductError when a line references a product that does
// not exist, and with InsufficientStockError when the ledger cannot cover a
// requested quantity. In both cases no stock remains reserved.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	var reserved []OrderLine
	items := make([]order.LineItem, 0, len(cmd.Lines()))

	for _, line := range cmd.Lines() {
		aggregate, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			h.releaseAll(ctx, productRepo, reserved)
			return nil, err
		}

		if err = productRepo.Reserve(ctx, line.ProductID, line.Quantity); err != nil {
			h.releaseAll(ctx, productRepo, reserved)
			return nil, err
		}
		reserved = append(reserved, line)

		item, err := order.NewLineItem(line.ProductID, line.Quantity, aggregate.Price())
		if err != nil {
			h.releaseAll(ctx, productRepo, reserved)
			return nil, err
		}
		items = append(items, item)
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), cmd.Address(), items)
	if err != nil {
		h.releaseAll(ctx, productRepo, reserved)
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		h.releaseAll(ctx, productRepo, reserved)
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// releaseAll compensates partial reservations of a failed placement.
// Works with ledgers that have no transactional rollback of their own;
// inside a real database transaction the rollback makes it a no-op.
func (h *PlaceOrderCommandHandler) releaseAll(
	ctx context.Context,
	productRepo ports.ProductRepository,
	reserved []OrderLine,
) {
	for _, line := range reserved {
		_ = productRepo.Release(ctx, line.ProductID, line.Quantity)
	}
}
