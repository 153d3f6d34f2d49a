package commands

import (
	"context"
	"errors"

	"eshop/internal/core/domain/model/order"
	"eshop/internal/core/ports"
	"eshop/internal/pkg/errs"
)

// TransitionOrderCommandHandler handles the business logic for finalizing
// orders. Authorizes the actor, claims the status change with an optimistic
// version check, and releases reserved stock when the target status returns
// units to the ledger.
//
// The status claim is written before any ledger release. Under concurrent
// requests for the same order exactly one claim wins; the losers observe a
// version conflict and fail with InvalidTransitionError, so stock is never
// released twice.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	authorizer ports.TransitionAuthorizer
}

// NewTransitionOrderCommandHandler creates a handler for order finalization.
// Requires a UoWFactory spanning order and product repositories, and the
// transition authorization policy.
func NewTransitionOrderCommandHandler(
	uowFactory UoWFactory,
	authorizer ports.TransitionAuthorizer,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the transition command.
// Fails with ObjectNotFoundError when the order does not exist, with
// InvalidTransitionError when the order already left Reserved status,
// whether before this call or through a concurrent winner, and with
// UnauthorizedError when the policy denies the actor. The status gate
// runs before authorization, so finalized orders report the same error
// to every caller.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	if from != order.Reserved {
		return order.NewInvalidTransitionError(aggregate.ID(), from, cmd.Target())
	}

	if !h.authorizer.CanTransition(cmd.Actor(), aggregate, cmd.Target()) {
		return NewUnauthorizedError(cmd.Actor().UserID(), cmd.OrderID(), cmd.Target())
	}

	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return order.NewInvalidTransitionError(aggregate.ID(), from, cmd.Target())
		}
		return err
	}

	if cmd.Target().ReleasesStock() {
		productRepo := uow.ProductRepository()
		for _, item := range aggregate.Items() {
			if err = productRepo.Release(ctx, item.ProductID(), item.Quantity()); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
