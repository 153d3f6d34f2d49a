package ports

import (
	"context"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates,
// including the atomic stock ledger operations that order placement and
// release depend on.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// Stock is never written through Update; Reserve and Release own it.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns UnknownProductError when no product has the given id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the full catalog with current stock levels.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Reserve atomically decrements stock for a single product.
	// The decrement succeeds only if at least quantity units remain;
	// otherwise it fails with InsufficientStockError and stock is
	// unchanged. Two concurrent reservations competing for the last
	// units never both succeed.
	//
	// Example:
	//   if err := repo.Reserve(ctx, productID, 2); err != nil {
	//       var stockErr *product.InsufficientStockError
	//       if errors.As(err, &stockErr) {
	//           // not enough units left, reject the order
	//       }
	//       return err
	//   }
	Reserve(ctx context.Context, id kernel.UUID, quantity int) error

	// Release atomically returns previously reserved units to stock.
	// Used when an order is canceled or rejected, and to compensate
	// partial reservations of a failed placement.
	Release(ctx context.Context, id kernel.UUID, quantity int) error
}
