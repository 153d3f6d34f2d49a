package product

import (
	"errors"
	"fmt"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory functions.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product represents a catalog item with finite stock. It is the aggregate
// root behind the product ledger.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price is never negative
//   - Stock is never negative and changes only through Reserve/Release
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the display name shown in the catalog
	name string

	// price is the current unit price; orders snapshot it at creation time
	price decimal.Decimal

	// stock is the number of units currently available for reservation
	stock int

	// isConstructed ensures the product was created via a factory function
	isConstructed bool
}

// NewProduct creates a new Product instance with validation. This is the only
// way (besides RestoreProduct) to obtain a valid Product, ensuring all
// business invariants hold from the start.
func NewProduct(id kernel.UUID, name string, price decimal.Decimal, stock int) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a Product from its persisted state.
// The same validation rules as NewProduct apply, so corrupt rows are
// rejected instead of silently entering the domain.
func RestoreProduct(id kernel.UUID, name string, price decimal.Decimal, stock int) (*Product, error) {
	return NewProduct(id, name, price, stock)
}

// Validate ensures the Product instance was properly constructed.
// Returns ErrProductIsNotConstructed otherwise.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the number of units currently available.
func (p *Product) Stock() int {
	return p.stock
}

// ChangePrice updates the product's current price.
// Orders placed earlier keep their snapshotted unit price.
func (p *Product) ChangePrice(price decimal.Decimal) error {
	return p.setPrice(price)
}

// Reserve decrements available stock by quantity, holding inventory for a
// pending order. The check and the decrement are one step on the aggregate;
// callers that share a Product across goroutines must serialize access (the
// repository adapters do).
//
// Fails with InsufficientStockError when fewer than quantity units are
// available, leaving the stock count unchanged.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if p.stock < quantity {
		return NewInsufficientStockError(p.id, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Release returns quantity units to the available stock.
// It is the exact inverse of Reserve; the caller is responsible for calling
// it at most once per reservation.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

// setID validates and sets the product's unique identifier.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the product's display name.
func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setPrice validates and sets the product's price.
// Price must not be negative; a zero price is allowed.
func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

// setStock validates and sets the product's stock count.
func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
