package order

import (
	"errors"
	"time"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from placement through the staff decision
// or customer cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Must have a non-empty delivery address
//   - Must have at least one line item, each with positive quantity
//   - Status transitions follow the state machine in Status
//   - Once in a terminal status the order is immutable
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Line items are copied in and
// never shared with callers.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the owning customer
	userID kernel.UUID

	// address is the delivery destination
	address string

	// items holds the ordered line items with their unit-price snapshots
	items []LineItem

	// status represents the current state in the order lifecycle
	status Status

	// createdAt records when the order was placed
	createdAt time.Time

	// version is the optimistic concurrency counter maintained by the repository
	version int

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Reserved status with validation. This is
// the only way (besides RestoreOrder) to create a valid Order, ensuring all
// business invariants are maintained.
//
// The caller is responsible for having reserved stock for every line item
// before persisting the order; the aggregate itself only guards its own
// shape (valid IDs, non-empty address, at least one item).
func NewOrder(id, userID kernel.UUID, address string, items []LineItem) (*Order, error) {
	o := &Order{
		status:        Reserved,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from its persisted state, including status,
// creation time, and optimistic-lock version. The same structural validation
// as NewOrder applies, so corrupt rows are rejected at the boundary.
func RestoreOrder(
	id, userID kernel.UUID,
	address string,
	items []LineItem,
	status Status,
	createdAt time.Time,
	version int,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	o := &Order{
		status:        status,
		createdAt:     createdAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Address returns the delivery address for the order.
func (o *Order) Address() string {
	return o.address
}

// Items returns a copy of the order's line items.
// The copy preserves the aggregate's exclusive ownership of its items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic concurrency counter.
// The repository increments it on every successful update; a stale version
// on write signals a concurrent transition.
func (o *Order) Version() int {
	return o.version
}

// IsOwnedBy reports whether the given user owns this order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// TransitionTo moves the order to the target status.
//
// The only legal transitions are from Reserved to Validated, Canceled, or
// Rejected. Any other request, including any transition out of a terminal
// status, fails with InvalidTransitionError and leaves the order unchanged.
//
// The caller owns the ledger side effect that accompanies the transition
// (release for Canceled/Rejected, nothing for Validated); the aggregate only
// guards the state machine.
func (o *Order) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(target) {
		return NewInvalidTransitionError(o.id, o.status, target)
	}

	o.status = target
	return nil
}

// TotalAmount returns the order total: the sum of unitPrice * quantity over
// all line items, computed from the unit-price snapshots taken at creation
// time. Later catalog price changes never affect it.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates and sets the owning customer's identifier.
func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

// setAddress validates and sets the delivery address.
func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

// setItems validates and copies the line items into the aggregate.
// The list must be non-empty and every item must be properly constructed.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
