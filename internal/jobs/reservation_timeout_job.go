package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eshop/internal/core/application/usecases/commands"
	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ReservationTimeoutJob rejects orders that stayed reserved longer than the
// configured TTL. Runs every minute.
//
// Expired orders go through the regular transition engine under a staff-role
// system actor, so the state machine and the single release of reserved stock
// hold exactly as they do for interactive staff decisions.
type ReservationTimeoutJob struct {
	uowFactory commands.UoWFactory
	handler    commands.TransitionOrderCommandHandler
	actor      kernel.Actor
	ttl        time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewReservationTimeoutJob creates a job rejecting expired reservations.
// The TTL must be positive.
func NewReservationTimeoutJob(
	uowFactory commands.UoWFactory,
	handler commands.TransitionOrderCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) (*ReservationTimeoutJob, error) {
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleStaff)
	if err != nil {
		return nil, err
	}

	return &ReservationTimeoutJob{
		uowFactory: uowFactory,
		handler:    handler,
		actor:      actor,
		ttl:        ttl,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "reservation_timeout_job"),
	}, nil
}

// Start begins the reservation timeout job to run every minute.
func (j *ReservationTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Reservation timeout sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Reservation timeout job started (running every minute)", "ttl", j.ttl.String())
	return nil
}

// Stop stops the reservation timeout job.
func (j *ReservationTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation timeout job stopped")
}

// RunOnce performs a single sweep: every order still reserved past the TTL is
// rejected. Orders finalized concurrently between the listing and the
// transition are skipped.
func (j *ReservationTimeoutJob) RunOnce(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.ttl)

	expired, err := j.uowFactory.Create().OrderRepository().GetAllReservedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range expired {
		cmd, cmdErr := commands.NewTransitionOrderCommand(aggregate.ID(), order.Rejected, j.actor)
		if cmdErr != nil {
			return cmdErr
		}

		if err = j.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, order.ErrInvalidTransition) || errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}

		j.logger.InfoContext(ctx, "Rejected expired reservation",
			"order_id", aggregate.ID().String(), "reserved_at", aggregate.CreatedAt())
	}

	return nil
}
