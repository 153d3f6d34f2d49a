// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning lightweight read models shaped for the API.
package queries

import (
	"errors"
	"time"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders with their line items and totals.
// The unscoped form returns every order for staff review; the per-user form
// returns only the orders owned by one customer.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetOrdersQuery struct {
	userID kernel.UUID
	scoped bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query retrieving every order, newest first.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryForUser creates a query retrieving only the orders owned
// by the given user, newest first. Returns an error if the user ID is invalid.
func NewGetOrdersQueryForUser(userID kernel.UUID) (GetOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		userID: userID,
		scoped: true,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ForUser returns the owning user filter and whether it is set.
func (q GetOrdersQuery) ForUser() (kernel.UUID, bool) {
	return q.userID, q.scoped
}

// GetOrdersQueryResponseItem is one line of an order read model.
type GetOrdersQueryResponseItem struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// GetOrdersQueryResponse represents one order with its lines and the total
// amount computed from the unit prices snapshotted at placement time.
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Address     string
	Status      order.Status
	CreatedAt   time.Time
	TotalAmount decimal.Decimal
	Items       []GetOrdersQueryResponseItem
}
