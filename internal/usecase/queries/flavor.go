package queries

import (
	"context"
	"time"

	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/pkg/clock"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// FreeSlotHorizon is the default search window when the caller gives no end.
const FreeSlotHorizon = 365 * 24 * time.Hour

type FlavorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FlavorView, error)
	List(ctx context.Context, filter FlavorFilter) ([]*FlavorView, error)
	IsGranted(ctx context.Context, flavorID uuid.UUID, projectID string) (bool, error)
}

type FlavorQueries interface {
	List(ctx context.Context, actor shared.Identity, filter FlavorFilter) ([]*FlavorView, error)
	Get(ctx context.Context, actor shared.Identity, id uuid.UUID) (*FlavorView, error)
	FreeSlots(ctx context.Context, actor shared.Identity, id uuid.UUID, start, end *time.Time) ([]SlotView, error)
}

type flavorQueriesImpl struct {
	store FlavorReadStore
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFlavorQueries(store FlavorReadStore, uow shared.UnitOfWork, clk clock.Clock) FlavorQueries {
	return &flavorQueriesImpl{store: store, uow: uow, clock: clk}
}

func (q *flavorQueriesImpl) List(ctx context.Context, actor shared.Identity, filter FlavorFilter) ([]*FlavorView, error) {
	filter.AllProjects = filter.AllProjects && actor.IsAdmin()
	filter.ProjectID = actor.ProjectID
	limit := ValidateLimit(filter.Limit)

	rows, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (q *flavorQueriesImpl) Get(ctx context.Context, actor shared.Identity, id uuid.UUID) (*FlavorView, error) {
	f, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFlavorNotFound
		}
		return nil, err
	}
	if f.IsPublic || actor.IsAdmin() {
		return f, nil
	}
	granted, err := q.store.IsGranted(ctx, id, actor.ProjectID)
	if err != nil {
		return nil, err
	}
	if !granted {
		return nil, errs.ErrFlavorNotFound
	}
	return f, nil
}

func (q *flavorQueriesImpl) FreeSlots(ctx context.Context, actor shared.Identity, id uuid.UUID, start, end *time.Time) ([]SlotView, error) {
	from := q.clock.Now()
	if start != nil {
		from = *start
	}
	to := from.Add(FreeSlotHorizon)
	if end != nil {
		to = *end
	}

	var out []SlotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Flavors().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrFlavorNotFound
			}
			return err
		}
		if !f.IsPublic() && !actor.IsAdmin() {
			granted, err := tx.FlavorProjects().Exists(ctx, id, actor.ProjectID)
			if err != nil {
				return err
			}
			if !granted {
				return errs.ErrFlavorNotFound
			}
		}

		slots, err := shared.FreeSlots(ctx, tx.Reservations(), f, from, to, reservation.SlotStatuses(), nil)
		if err != nil {
			return err
		}
		out = make([]SlotView, len(slots))
		for i, s := range slots {
			out[i] = SlotView{Start: s.Start, End: s.End}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
