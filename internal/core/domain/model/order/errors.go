package order

import (
	"errors"
	"fmt"

	"eshop/internal/core/domain/model/kernel"
)

// ErrInvalidTransition is the sentinel error for all InvalidTransitionError
// instances. Use errors.Is(err, ErrInvalidTransition) to classify rejected
// status changes.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError reports that a requested status change is not
// permitted by the order state machine. The order is left unchanged and no
// ledger side effect occurs.
type InvalidTransitionError struct {
	OrderID kernel.UUID
	From    Status
	To      Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given order.
func NewInvalidTransitionError(orderID kernel.UUID, from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		OrderID: orderID,
		From:    from,
		To:      to,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: order %s cannot move from %s to %s",
		ErrInvalidTransition, e.OrderID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
