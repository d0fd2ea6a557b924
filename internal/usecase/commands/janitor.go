package commands

import (
	"context"
	"log/slog"
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/pkg/clock"
	"flavor-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobCleanOldReservations = "clean_old_reservations"
	JobNotifyExists         = "notify_exists"
)

type JanitorCommands interface {
	// CleanOldReservations deletes COMPLETE reservations that ended before the retention window.
	CleanOldReservations(ctx context.Context) (int, error)
	// NotifyExists completes ACTIVE reservations past their end and emits
	// usage events for the rest.
	NotifyExists(ctx context.Context) error
}

type janitorUseCaseImpl struct {
	uow       shared.UnitOfWork
	pool      ResourcePool
	publisher EventPublisher
	metrics   shared.Metrics
	clock     clock.Clock
	retention time.Duration
}

func NewJanitorUseCase(
	uow shared.UnitOfWork,
	pool ResourcePool,
	publisher EventPublisher,
	metrics shared.Metrics,
	clk clock.Clock,
	retention time.Duration,
) JanitorCommands {
	return &janitorUseCaseImpl{
		uow:       uow,
		pool:      pool,
		publisher: publisher,
		metrics:   metrics,
		clock:     clk,
		retention: retention,
	}
}

func (uc *janitorUseCaseImpl) CleanOldReservations(ctx context.Context) (int, error) {
	cutoff := uc.clock.Now().Add(-uc.retention)

	deleted := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		old, err := tx.Reservations().ListByStatus(ctx, reservation.StatusComplete, &cutoff)
		if err != nil {
			return err
		}
		for _, r := range old {
			if err := tx.Reservations().Delete(ctx, r.ID()); err != nil {
				return err
			}
			slog.InfoContext(ctx, "deleting finished reservation",
				slog.String("reservation_id", r.ID().String()),
				slog.Time("end", r.End()))
		}
		deleted = len(old)
		return nil
	})
	if err != nil {
		return 0, err
	}
	uc.metrics.AddJanitorReservations(JobCleanOldReservations, "deleted", deleted)
	return deleted, nil
}

type activeReservation struct {
	r *reservation.Reservation
	f *flavor.Flavor
}

func (uc *janitorUseCaseImpl) NotifyExists(ctx context.Context) error {
	now := uc.clock.Now()

	var live []activeReservation
	completed := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, err := tx.Reservations().ListByStatus(ctx, reservation.StatusActive, nil)
		if err != nil {
			return err
		}
		flavors := map[uuid.UUID]*flavor.Flavor{}
		for _, r := range active {
			if r.HasEnded(now) {
				slog.WarnContext(ctx, "reservation has ended but is still active, marking complete",
					slog.String("reservation_id", r.ID().String()))
				if err := r.Complete(now); err != nil {
					return err
				}
				if err := tx.Reservations().Update(ctx, r); err != nil {
					return err
				}
				completed++
				continue
			}
			f, ok := flavors[r.FlavorID()]
			if !ok {
				f, err = tx.Flavors().FindByID(ctx, r.FlavorID())
				if err != nil {
					return err
				}
				flavors[r.FlavorID()] = f
			}
			live = append(live, activeReservation{r: r, f: f})
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.metrics.AddJanitorReservations(JobNotifyExists, "completed", completed)

	for _, a := range live {
		uc.reportUsage(ctx, a)
	}
	uc.metrics.AddJanitorReservations(JobNotifyExists, "notified", len(live))
	return nil
}

func (uc *janitorUseCaseImpl) reportUsage(ctx context.Context, a activeReservation) {
	log := slog.With(slog.String("reservation_id", a.r.ID().String()))
	payload := NewAuditPayload(a.r, a.f)

	if cf := a.r.ComputeFlavor(); cf != nil && *cf != "" {
		inUse, err := uc.pool.InUse(ctx, a.r.ProjectID(), *cf)
		switch {
		case err != nil:
			log.WarnContext(ctx, "failed to check resource usage", slog.String("error", err.Error()))
		case inUse:
			if err := uc.publisher.Publish(ctx, AuditReservationInUse, payload); err != nil {
				log.WarnContext(ctx, "in_use event failed", slog.String("error", err.Error()))
			}
		}
	}
	if err := uc.publisher.Publish(ctx, AuditReservationExists, payload); err != nil {
		log.WarnContext(ctx, "exists event failed", slog.String("error", err.Error()))
	}
}
