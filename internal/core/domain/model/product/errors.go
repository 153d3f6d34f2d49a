package product

import (
	"errors"
	"fmt"

	"eshop/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is the sentinel error for all InsufficientStockError
// instances. Use errors.Is(err, ErrInsufficientStock) to classify failed
// reservations.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports that a reservation asked for more units of a
// product than the ledger currently holds. The ledger state is unchanged.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given product.
func NewInsufficientStockError(productID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s has %d unit(s), %d requested",
		ErrInsufficientStock, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// ErrUnknownProduct is the sentinel error for all UnknownProductError instances.
var ErrUnknownProduct = errors.New("unknown product")

// UnknownProductError reports that a ledger operation referenced a product
// that does not exist (or no longer exists) in the catalog.
type UnknownProductError struct {
	ProductID kernel.UUID
}

// NewUnknownProductError creates an UnknownProductError for the given product.
func NewUnknownProductError(productID kernel.UUID) *UnknownProductError {
	return &UnknownProductError{ProductID: productID}
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownProduct, e.ProductID)
}

func (e *UnknownProductError) Unwrap() error {
	return ErrUnknownProduct
}
