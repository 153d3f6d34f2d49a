package queries

import (
	"errors"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the catalog with current stock levels.
// This is a parameterless query backing the product listing endpoint.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve the full catalog.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse represents one catalog entry.
// Stock reflects units not currently held by reserved orders.
type GetProductsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
	Stock int
}
