package commands

import (
	"errors"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/pkg/errs"
	"eshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand represents a request to add a product to the catalog
// with an initial stock count.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     decimal.Decimal
	stock     int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to add a catalog entry.
// Validates that the ID is valid, the name is non-empty, the price is not
// negative, and the initial stock is not negative.
func NewAddProductCommand(
	productID kernel.UUID,
	name string,
	price decimal.Decimal,
	stock int,
) (AddProductCommand, error) {
	addCommand := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setProductID(productID),
		addCommand.setName(name),
		addCommand.setPrice(price),
		addCommand.setStock(stock),
	); err != nil {
		return AddProductCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddProductCommandIsNotConstructed if validation fails.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new catalog entry.
func (c AddProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the display name for the new catalog entry.
func (c AddProductCommand) Name() string {
	return c.name
}

// Price returns the unit price for the new catalog entry.
func (c AddProductCommand) Price() decimal.Decimal {
	return c.price
}

// Stock returns the initial stock count.
func (c AddProductCommand) Stock() int {
	return c.stock
}

func (c *AddProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *AddProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}

	c.stock = stock
	return nil
}
