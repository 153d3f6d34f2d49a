package commands

import (
	"errors"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
	ErrLinesAreRequired  = errors.New("at least one order line is required")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// OrderLine is one requested catalog position of a placement: which product
// and how many units. Prices are not part of the request; the handler
// snapshots them from the catalog at placement time.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand represents a request to place a new order.
// Encapsulates the customer, the shipping address, and the requested lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, customerID, "123 Main Street",
//	    []OrderLine{{ProductID: productID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s reserved, total %s", placed.ID(), placed.TotalAmount())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID
	address string
	lines   []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that both IDs are valid, the address is not empty, and every
// line references a valid product with a positive quantity.
// Returns an error if any validation fails.
func NewPlaceOrderCommand(
	orderID, userID kernel.UUID,
	address string,
	lines []OrderLine,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setUserID(userID),
		placeCommand.setAddress(address),
		placeCommand.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the customer placing the order.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Address returns the shipping address for the order.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
