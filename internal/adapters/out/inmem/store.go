// Package inmem provides an in-memory implementation of the persistence
// ports. It backs unit tests and local experiments where spinning up a
// database is not worth it, while keeping the same consistency guarantees:
// conditional stock decrements and version-checked status transitions.
//
// A single mutex serializes all state access. The store is a test double,
// not a cache; contention is irrelevant at test scale and the coarse lock
// makes the atomicity of check-and-decrement trivial to reason about.
package inmem

import (
	"sync"
	"time"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type orderRecord struct {
	userID    kernel.UUID
	address   string
	items     []order.LineItem
	status    order.Status
	createdAt time.Time
	version   int
}

type productRecord struct {
	name  string
	price decimal.Decimal
	stock int
}

// Store holds all in-memory state shared by the units of work created from
// one Factory. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	orders   map[kernel.UUID]*orderRecord
	products map[kernel.UUID]*productRecord
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		orders:   make(map[kernel.UUID]*orderRecord),
		products: make(map[kernel.UUID]*productRecord),
	}
}
