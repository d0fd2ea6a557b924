package commands

import (
	"context"
	"log/slog"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/pkg/clock"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownLeaseEvent = errs.New("unknown lease event type")

const (
	outcomeAllocated = "allocated"
	outcomeError     = "error"
	outcomeSkipped   = "skipped"
	outcomeHandled   = "handled"
	outcomeUnknown   = "unknown_lease"
	outcomeIgnored   = "ignored"
)

type LeaseCommands interface {
	// CreateLease provisions the lease for a PENDING_CREATE reservation. Safe to redeliver.
	CreateLease(ctx context.Context, reservationID uuid.UUID) error
	// HandleLeaseEvent applies a lease provider notification to its reservation.
	HandleLeaseEvent(ctx context.Context, eventType, leaseID string) error
}

type leaseUseCaseImpl struct {
	uow       shared.UnitOfWork
	provider  LeaseProvider
	notifier  UserNotifier
	publisher EventPublisher
	metrics   shared.Metrics
	clock     clock.Clock
}

func NewLeaseUseCase(
	uow shared.UnitOfWork,
	provider LeaseProvider,
	notifier UserNotifier,
	publisher EventPublisher,
	metrics shared.Metrics,
	clk clock.Clock,
) LeaseCommands {
	return &leaseUseCaseImpl{
		uow:       uow,
		provider:  provider,
		notifier:  notifier,
		publisher: publisher,
		metrics:   metrics,
		clock:     clk,
	}
}

func (uc *leaseUseCaseImpl) CreateLease(ctx context.Context, reservationID uuid.UUID) error {
	log := slog.With(slog.String("reservation_id", reservationID.String()))

	var (
		res *reservation.Reservation
		f   *flavor.Flavor
	)
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		f, err = tx.Flavors().FindByID(ctx, res.FlavorID())
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			log.WarnContext(ctx, "reservation vanished before its lease was created")
			uc.metrics.ObserveLeaseJob(string(shared.LeaseJobCreate), outcomeSkipped)
			return nil
		}
		return err
	}
	if res.Status() != reservation.StatusPendingCreate {
		log.InfoContext(ctx, "lease already handled", slog.String("status", res.Status().String()))
		uc.metrics.ObserveLeaseJob(string(shared.LeaseJobCreate), outcomeSkipped)
		return nil
	}

	log.InfoContext(ctx, "creating lease")
	lease, leaseErr := uc.provider.CreateLease(ctx, res, f)

	var final *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if current.Status() != reservation.StatusPendingCreate {
			return nil
		}
		now := uc.clock.Now()
		if leaseErr != nil {
			if err := current.MarkError(leaseErr.Error(), now); err != nil {
				return err
			}
		} else if err := current.MarkAllocated(lease.ID, lease.ComputeFlavor, now); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, current); err != nil {
			return err
		}
		final = current
		return nil
	})
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return err
	}

	if final == nil {
		// Deleted or handled elsewhere while the provider call was in flight.
		if leaseErr == nil {
			uc.releaseOrphan(ctx, lease.ID)
		}
		uc.metrics.ObserveLeaseJob(string(shared.LeaseJobCreate), outcomeSkipped)
		return nil
	}

	if leaseErr != nil {
		log.ErrorContext(ctx, "lease creation failed", slog.String("error", leaseErr.Error()))
		uc.metrics.ObserveLeaseJob(string(shared.LeaseJobCreate), outcomeError)
		return nil
	}

	log.InfoContext(ctx, "lease created", slog.String("lease_id", lease.ID))
	uc.metrics.ObserveLeaseJob(string(shared.LeaseJobCreate), outcomeAllocated)
	uc.notify(ctx, final, f, reservation.EventCreate)
	return nil
}

func (uc *leaseUseCaseImpl) HandleLeaseEvent(ctx context.Context, eventType, leaseID string) error {
	event, ok := reservation.EventForLease(eventType)
	if !ok {
		return errs.Wrapf(ErrUnknownLeaseEvent, "event type %q", eventType)
	}
	log := slog.With(slog.String("lease_id", leaseID), slog.String("event", event.String()))

	var (
		res *reservation.Reservation
		f   *flavor.Flavor
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().FindByLeaseID(ctx, leaseID)
		if err != nil {
			return err
		}
		f, err = tx.Flavors().FindByID(ctx, res.FlavorID())
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		switch event {
		case reservation.EventStart:
			err = res.Activate(now)
		case reservation.EventEnd:
			err = res.Complete(now)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, res)
	})
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		log.WarnContext(ctx, "no reservation for lease, dropping event")
		uc.metrics.ObserveLeaseEvent(event.String(), outcomeUnknown)
		return nil
	case errs.Is(err, reservation.ErrInvalidTransition):
		log.WarnContext(ctx, "lease event does not apply to reservation status",
			slog.String("reservation_id", res.ID().String()),
			slog.String("status", res.Status().String()))
		uc.metrics.ObserveLeaseEvent(event.String(), outcomeIgnored)
		return nil
	case err != nil:
		return err
	}

	log.InfoContext(ctx, "lease event handled",
		slog.String("reservation_id", res.ID().String()),
		slog.String("status", res.Status().String()))
	uc.metrics.ObserveLeaseEvent(event.String(), outcomeHandled)

	switch event {
	case reservation.EventStart:
		uc.publish(ctx, AuditReservationStart, res, f)
	case reservation.EventEnd:
		uc.publish(ctx, AuditReservationEnd, res, f)
	}
	uc.notify(ctx, res, f, event)
	return nil
}

func (uc *leaseUseCaseImpl) releaseOrphan(ctx context.Context, leaseID string) {
	if err := uc.provider.DeleteLease(ctx, leaseID); err != nil {
		slog.ErrorContext(ctx, "failed to release orphaned lease",
			slog.String("lease_id", leaseID),
			slog.String("error", err.Error()))
	}
}

func (uc *leaseUseCaseImpl) notify(ctx context.Context, r *reservation.Reservation, f *flavor.Flavor, event reservation.Event) {
	if err := uc.notifier.SendMessage(ctx, r, f, event); err != nil {
		slog.WarnContext(ctx, "user notification failed",
			slog.String("reservation_id", r.ID().String()),
			slog.String("event", event.String()),
			slog.String("error", err.Error()))
	}
}

func (uc *leaseUseCaseImpl) publish(ctx context.Context, eventType string, r *reservation.Reservation, f *flavor.Flavor) {
	if err := uc.publisher.Publish(ctx, eventType, NewAuditPayload(r, f)); err != nil {
		slog.WarnContext(ctx, "audit event failed",
			slog.String("reservation_id", r.ID().String()),
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}
