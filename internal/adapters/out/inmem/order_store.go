package inmem

import (
	"context"
	"sort"
	"time"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/pkg/errs"
)

// OrderStore implements ports.OrderRepository over the shared Store.
type OrderStore struct {
	store *Store
}

// NewOrderStore creates an order repository bound to the given store.
func NewOrderStore(store *Store) *OrderStore {
	return &OrderStore{store: store}
}

// Add saves a new order. Fails when the ID is already taken.
func (s *OrderStore) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("orderId")
	}

	s.store.orders[aggregate.ID()] = &orderRecord{
		userID:    aggregate.UserID(),
		address:   aggregate.Address(),
		items:     aggregate.Items(),
		status:    aggregate.Status(),
		createdAt: aggregate.CreatedAt(),
		version:   aggregate.Version(),
	}
	return nil
}

// Update persists a status transition with the same optimistic version check
// the database repository applies: a stale aggregate fails with
// ErrVersionIsInvalid and the stored record is unchanged.
func (s *OrderStore) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	record, exists := s.store.orders[aggregate.ID()]
	if !exists || record.version != aggregate.Version() {
		return errs.NewVersionIsInvalidErrorWithCause("order")
	}

	record.status = aggregate.Status()
	record.version++
	return nil
}

// Get retrieves an order by ID.
func (s *OrderStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	record, exists := s.store.orders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return restore(id, record)
}

// GetAll retrieves every order, newest first.
func (s *OrderStore) GetAll(_ context.Context) ([]*order.Order, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return s.collect(func(*orderRecord) bool { return true })
}

// GetAllByUser retrieves all orders owned by the given user, newest first.
func (s *OrderStore) GetAllByUser(_ context.Context, userID kernel.UUID) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return s.collect(func(record *orderRecord) bool {
		return record.userID.IsEqual(userID)
	})
}

// GetAllReservedBefore retrieves reserved orders created before the cutoff.
func (s *OrderStore) GetAllReservedBefore(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return s.collect(func(record *orderRecord) bool {
		return record.status == order.Reserved && record.createdAt.Before(cutoff)
	})
}

func (s *OrderStore) collect(match func(*orderRecord) bool) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	for id, record := range s.store.orders {
		if !match(record) {
			continue
		}

		aggregate, err := restore(id, record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders, nil
}

func restore(id kernel.UUID, record *orderRecord) (*order.Order, error) {
	return order.RestoreOrder(id, record.userID, record.address, record.items,
		record.status, record.createdAt, record.version)
}
