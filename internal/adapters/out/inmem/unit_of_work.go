package inmem

import (
	"context"

	"eshop/internal/core/ports"
)

// Factory creates units of work sharing one in-memory store.
type Factory struct {
	store *Store
}

// NewFactory creates a unit of work factory over the given store.
func NewFactory(store *Store) *Factory {
	return &Factory{store: store}
}

// Create produces a new unit of work over the shared store.
func (f *Factory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is the in-memory stand-in for a database transaction.
//
// There is no transaction log to rewind, so Begin, Commit and Rollback are
// no-ops. Handlers written against this unit of work therefore cannot rely
// on rollback to undo partial work; they must compensate explicitly, which
// is exactly the behavior the command handlers implement.
type UnitOfWork struct {
	store *Store
}

// Begin is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit is a no-op.
func (uow *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op.
func (uow *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns an order repository over the shared store.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return NewOrderStore(uow.store)
}

// ProductRepository returns a product repository over the shared store.
func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return NewProductLedger(uow.store)
}
