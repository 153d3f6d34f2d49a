package commands

import (
	"context"

	"eshop/internal/core/domain/model/product"
)

// AddProductCommandHandler handles the business logic for adding catalog
// entries. Builds the aggregate and persists it through a product-only unit
// of work.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddProductCommandHandler creates a handler for catalog additions.
// Requires a ProductUoWFactory since only the product aggregate is touched.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the added product.
// Fails with ValueIsInvalidError when the ID is already taken.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Stock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
