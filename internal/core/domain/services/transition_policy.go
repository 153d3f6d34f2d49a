package services

import (
	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
)

// TransitionPolicy is a domain service deciding whether an actor may request
// a given order status transition. It is the default implementation of the
// ports.TransitionAuthorizer capability check.
//
// Business rules:
//   - Staff decide the fate of pending orders: only staff may target
//     Validated or Rejected
//   - Customers may withdraw their own pending orders: only the owning
//     customer may target Canceled
//   - Every other combination is denied
//
// The policy is deliberately ignorant of how identities are authenticated;
// it only maps actor classes to permitted targets, so the lifecycle engine
// stays testable with any authorizer implementation.
type TransitionPolicy struct{}

// NewTransitionPolicy creates the default transition capability check.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// CanTransition reports whether actor may move the given order to target.
func (TransitionPolicy) CanTransition(actor kernel.Actor, o *order.Order, target order.Status) bool {
	if actor.Validate() != nil || o.Validate() != nil {
		return false
	}

	switch target {
	case order.Validated, order.Rejected:
		return actor.IsStaff()
	case order.Canceled:
		return actor.IsCustomer() && o.IsOwnedBy(actor.UserID())
	default:
		return false
	}
}
