package commands

import (
	"errors"

	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrTargetStatusIsInvalid = errors.New("target status must be VALIDATED, CANCELED or REJECTED")
)

// TransitionOrderCommand represents a request to move an order to a terminal
// status: staff validating or rejecting, or a customer canceling their own
// order. The acting identity travels with the command so the transition
// policy can authorize it.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to finalize an order.
// Validates that the order ID and actor are valid and that the target is a
// terminal status. Returns an error if any validation fails.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.Actor,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setTarget(target),
		transitionCommand.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to finalize.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested terminal status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns the identity requesting the transition.
func (c TransitionOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if !target.IsTerminal() {
		return ErrTargetStatusIsInvalid
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
