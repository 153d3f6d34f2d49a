package ports

import (
	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
)

// TransitionAuthorizer decides whether an actor may request a given order
// status transition. The default implementation is services.TransitionPolicy;
// handlers depend on this interface so authorization rules stay swappable
// in tests.
type TransitionAuthorizer interface {
	CanTransition(actor kernel.Actor, o *order.Order, target order.Status) bool
}
