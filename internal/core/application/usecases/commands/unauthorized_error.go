package commands

import (
	"errors"
	"fmt"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
)

// ErrUnauthorized is the sentinel error for all UnauthorizedError instances.
// Use errors.Is(err, ErrUnauthorized) to classify denied transition requests.
var ErrUnauthorized = errors.New("actor is not authorized")

// UnauthorizedError reports that an actor requested an order status
// transition the transition policy does not grant to their role.
type UnauthorizedError struct {
	ActorID kernel.UUID
	OrderID kernel.UUID
	Target  order.Status
}

// NewUnauthorizedError creates an UnauthorizedError for the given request.
func NewUnauthorizedError(actorID, orderID kernel.UUID, target order.Status) *UnauthorizedError {
	return &UnauthorizedError{
		ActorID: actorID,
		OrderID: orderID,
		Target:  target,
	}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: actor %s may not move order %s to %s",
		ErrUnauthorized, e.ActorID, e.OrderID, e.Target)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
