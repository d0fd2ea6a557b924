package queries

import (
	"context"

	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
}

type ReservationQueries interface {
	Get(ctx context.Context, actor shared.Identity, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, actor shared.Identity, filter ReservationFilter, allProjects bool) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// Get hides reservations of other projects behind not found.
func (q *reservationQueriesImpl) Get(ctx context.Context, actor shared.Identity, id uuid.UUID) (*ReservationView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	if !actor.CanAccessProject(r.ProjectID) {
		return nil, errs.ErrReservationNotFound
	}
	return r, nil
}

// List scopes to the caller's project. Admins may ask for another project or,
// with allProjects, every project.
func (q *reservationQueriesImpl) List(ctx context.Context, actor shared.Identity, filter ReservationFilter, allProjects bool) ([]*ReservationView, error) {
	switch {
	case !actor.IsAdmin():
		filter.ProjectID = &actor.ProjectID
	case filter.ProjectID != nil:
	case allProjects:
		filter.ProjectID = nil
	default:
		filter.ProjectID = &actor.ProjectID
	}
	filter.Limit = ValidateLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return q.store.List(ctx, filter)
}
