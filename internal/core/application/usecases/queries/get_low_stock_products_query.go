package queries

import (
	"errors"

	"eshop/internal/pkg/guard"
)

var (
	ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
		"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// GetLowStockProductsQuery retrieves catalog entries whose stock dropped to
// or below a threshold. Backs the periodic low stock report.
type GetLowStockProductsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a query for products running low.
// Returns an error if the threshold is not positive.
func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	if threshold <= 0 {
		return GetLowStockProductsQuery{}, ErrThresholdIsInvalid
	}

	return GetLowStockProductsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockProductsQueryIsNotConstructed if validation fails.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// Threshold returns the inclusive stock level cutoff.
func (q GetLowStockProductsQuery) Threshold() int {
	return q.threshold
}
