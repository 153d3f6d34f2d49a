package inmem

import (
	"context"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/product"
	"eshop/internal/pkg/errs"
)

// ProductLedger implements ports.ProductRepository over the shared Store.
// Reserve performs the availability check and the decrement under one lock
// acquisition, mirroring the conditional UPDATE of the database repository.
type ProductLedger struct {
	store *Store
}

// NewProductLedger creates a product repository bound to the given store.
func NewProductLedger(store *Store) *ProductLedger {
	return &ProductLedger{store: store}
}

// Add saves a new product. Fails when the ID is already taken.
func (l *ProductLedger) Add(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	if _, exists := l.store.products[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("productId")
	}

	l.store.products[aggregate.ID()] = &productRecord{
		name:  aggregate.Name(),
		price: aggregate.Price(),
		stock: aggregate.Stock(),
	}
	return nil
}

// Update persists catalog changes. Stock is not written here.
func (l *ProductLedger) Update(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	record, exists := l.store.products[aggregate.ID()]
	if !exists {
		return product.NewUnknownProductError(aggregate.ID())
	}

	record.name = aggregate.Name()
	record.price = aggregate.Price()
	return nil
}

// Get retrieves a product by ID.
func (l *ProductLedger) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	record, exists := l.store.products[id]
	if !exists {
		return nil, product.NewUnknownProductError(id)
	}

	return product.RestoreProduct(id, record.name, record.price, record.stock)
}

// GetAll retrieves the full catalog.
func (l *ProductLedger) GetAll(_ context.Context) ([]*product.Product, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	products := make([]*product.Product, 0, len(l.store.products))
	for id, record := range l.store.products {
		aggregate, err := product.RestoreProduct(id, record.name, record.price, record.stock)
		if err != nil {
			return nil, err
		}
		products = append(products, aggregate)
	}
	return products, nil
}

// Reserve atomically decrements stock if enough units remain.
func (l *ProductLedger) Reserve(_ context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	record, exists := l.store.products[id]
	if !exists {
		return product.NewUnknownProductError(id)
	}
	if record.stock < quantity {
		return product.NewInsufficientStockError(id, quantity, record.stock)
	}

	record.stock -= quantity
	return nil
}

// Release atomically returns previously reserved units to stock.
func (l *ProductLedger) Release(_ context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	record, exists := l.store.products[id]
	if !exists {
		return product.NewUnknownProductError(id)
	}

	record.stock += quantity
	return nil
}
