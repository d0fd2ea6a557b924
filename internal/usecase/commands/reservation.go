package commands

import (
	"context"
	"log/slog"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/domain/schedule"
	reqdto "flavor-reservation/internal/handler/dto/request"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/pkg/clock"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/queries"
	"flavor-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	admissionAdmitted = "admitted"
	admissionRejected = "rejected"
)

type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Identity, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	Extend(ctx context.Context, actor shared.Identity, id uuid.UUID, req reqdto.ExtendReservationRequest) (*queries.ReservationView, error)
	Delete(ctx context.Context, actor shared.Identity, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	quota    QuotaEnforcer
	provider LeaseProvider
	metrics  shared.Metrics
	clock    clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	quota QuotaEnforcer,
	provider LeaseProvider,
	metrics shared.Metrics,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		quota:    quota,
		provider: provider,
		metrics:  metrics,
		clock:    clk,
	}
}

// Create admits a reservation under the flavor lock and queues its lease.
func (uc *reservationUseCaseImpl) Create(ctx context.Context, actor shared.Identity, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	owner, err := reservation.NewOwner(actor.UserID, actor.ProjectID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	window := req.Window()
	count := req.GetInstanceCount()

	if err := uc.quota.Check(ctx, owner.ProjectID, window.TotalHours()); err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locks().LockFlavor(ctx, req.FlavorID); err != nil {
			return err
		}
		f, err := findFlavor(ctx, tx, req.FlavorID)
		if err != nil {
			return err
		}
		granted, err := isGranted(ctx, tx, f, owner.ProjectID)
		if err != nil {
			return err
		}
		if err := reservation.CheckTerms(f, window, granted); err != nil {
			return err
		}

		committed, err := tx.Reservations().SumInstanceCount(ctx, shared.OverlapFilter{
			FlavorID: f.ID(),
			From:     window.Start(),
			To:       window.End(),
			Statuses: reservation.EffectiveStatuses(),
		})
		if err != nil {
			return err
		}
		if err := reservation.CheckCapacity(f, committed, count); err != nil {
			return err
		}

		now := uc.clock.Now()
		res, err := reservation.NewReservation(f.ID(), owner, window, count, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		if err := tx.LeaseJobs().Enqueue(ctx, shared.NewCreateLeaseJob(res.ID(), now)); err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		uc.observeRejection(err)
		return nil, err
	}

	uc.metrics.ObserveAdmission(admissionAdmitted)
	slog.InfoContext(ctx, "reservation admitted",
		slog.String("reservation_id", created.ID().String()),
		slog.String("flavor_id", created.FlavorID().String()),
		slog.String("project_id", created.ProjectID()),
		slog.Int("instance_count", created.InstanceCount()))
	return queries.NewReservationView(created), nil
}

// Extend moves the end of an active reservation when the time after it is free.
func (uc *reservationUseCaseImpl) Extend(ctx context.Context, actor shared.Identity, id uuid.UUID, req reqdto.ExtendReservationRequest) (*queries.ReservationView, error) {
	newEnd := req.NewEnd()

	var extended *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findOwnedReservation(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		if err := tx.Locks().LockFlavor(ctx, res.FlavorID()); err != nil {
			return err
		}
		f, err := findFlavor(ctx, tx, res.FlavorID())
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := reservation.CheckExtension(res, f, newEnd, now); err != nil {
			return err
		}

		self := res.ID()
		slots, err := shared.FreeSlots(ctx, tx.Reservations(), f, res.End(), newEnd, reservation.EffectiveStatuses(), &self)
		if err != nil {
			return err
		}
		if !schedule.CoversExtension(slots, res.End(), newEnd) {
			return reservation.RejectNoCapacity()
		}

		if err := uc.provider.UpdateLease(ctx, *res.LeaseID(), newEnd); err != nil {
			slog.ErrorContext(ctx, "failed to extend lease",
				slog.String("reservation_id", res.ID().String()),
				slog.String("lease_id", *res.LeaseID()),
				slog.String("error", err.Error()))
			return reservation.RejectExtendFailed()
		}

		res.ExtendTo(newEnd, now)
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		extended = res
		return nil
	})
	if err != nil {
		uc.observeRejection(err)
		return nil, err
	}
	return queries.NewReservationView(extended), nil
}

// Delete releases the lease first, so a provider failure leaves the reservation in place.
func (uc *reservationUseCaseImpl) Delete(ctx context.Context, actor shared.Identity, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findOwnedReservation(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		if res.HasLease() {
			if err := uc.provider.DeleteLease(ctx, *res.LeaseID()); err != nil {
				return errs.Mark(errs.Wrap(err, "failed to delete lease"), errs.ErrProviderUnavailable)
			}
		}
		if err := tx.Reservations().Delete(ctx, res.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return err
		}
		slog.InfoContext(ctx, "reservation deleted",
			slog.String("reservation_id", res.ID().String()),
			slog.Bool("had_lease", res.HasLease()))
		return nil
	})
}

func (uc *reservationUseCaseImpl) observeRejection(err error) {
	if rej, ok := reservation.AsRejection(err); ok {
		uc.metrics.ObserveAdmission(admissionRejected)
		uc.metrics.ObserveRejection(rej.Reason.String())
	}
}

func findFlavor(ctx context.Context, tx shared.Tx, id uuid.UUID) (*flavor.Flavor, error) {
	f, err := tx.Flavors().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFlavorNotFound
		}
		return nil, err
	}
	return f, nil
}

func isGranted(ctx context.Context, tx shared.Tx, f *flavor.Flavor, projectID string) (bool, error) {
	if f.IsPublic() {
		return true, nil
	}
	return tx.FlavorProjects().Exists(ctx, f.ID(), projectID)
}

// findOwnedReservation hides other projects' reservations behind not found.
func findOwnedReservation(ctx context.Context, tx shared.Tx, actor shared.Identity, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	if !actor.CanAccessProject(res.ProjectID()) {
		return nil, errs.ErrReservationNotFound
	}
	return res, nil
}
