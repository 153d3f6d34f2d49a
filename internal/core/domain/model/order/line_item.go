package order

import (
	"errors"
	"fmt"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")

// LineItem is a value object pairing a product reference with an ordered
// quantity and the unit price snapshotted when the order was placed.
//
// The snapshot makes orders immune to later catalog price changes: totals are
// always computed from the price the customer saw. LineItems are owned by
// exactly one Order and copied in, never shared.
type LineItem struct {
	// productID is a non-owning reference into the product catalog
	productID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the product price frozen at order-creation time
	unitPrice decimal.Decimal

	// isConstructed ensures the line item was created via NewLineItem
	isConstructed bool
}

// NewLineItem creates a LineItem with validation.
// The quantity must be positive and the unit price must not be negative;
// a zero unit price is valid (the catalog may legitimately price items at 0).
func NewLineItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	item := LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price snapshot taken at order-creation time.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Total returns quantity times the snapshotted unit price.
func (li LineItem) Total() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}
