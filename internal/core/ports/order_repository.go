// Package ports defines repository interfaces for the eshop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and ownership.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is conditional on the version the aggregate was loaded
	// with: when a concurrent writer advanced the stored version first,
	// Update fails with ErrVersionIsInvalid and the aggregate state must
	// be considered stale.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items and current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first.
	// Used by staff to review the pending queue and order history.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByUser retrieves all orders owned by the given user, newest first.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetAllReservedBefore retrieves orders still in Reserved status that
	// were created before the cutoff. Used by the reservation timeout job
	// to find stale reservations holding stock.
	GetAllReservedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
