package shared

import (
	"context"
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/domain/schedule"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Flavors() FlavorRepository
	FlavorProjects() FlavorProjectRepository
	Reservations() ReservationRepository
	LeaseJobs() LeaseJobRepository
	Locks() LockRepository
}

type FlavorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*flavor.Flavor, error)
	Create(ctx context.Context, f *flavor.Flavor) error
	Update(ctx context.Context, f *flavor.Flavor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FlavorProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*flavor.Grant, error)
	Exists(ctx context.Context, flavorID uuid.UUID, projectID string) (bool, error)
	Create(ctx context.Context, g *flavor.Grant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OverlapFilter selects reservations of a flavor whose closed window touches [From, To].
type OverlapFilter struct {
	FlavorID  uuid.UUID
	From      time.Time
	To        time.Time
	Statuses  []reservation.Status
	ExcludeID *uuid.UUID
}

// OccupancyLister is the read needed to compute free slots.
type OccupancyLister interface {
	ListOccupancy(ctx context.Context, filter OverlapFilter) ([]schedule.Occupancy, error)
}

type ReservationRepository interface {
	OccupancyLister
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByLeaseID(ctx context.Context, leaseID string) (*reservation.Reservation, error)
	SumInstanceCount(ctx context.Context, filter OverlapFilter) (int, error)
	CountByFlavor(ctx context.Context, flavorID uuid.UUID) (int, error)
	ListByStatus(ctx context.Context, status reservation.Status, endBefore *time.Time) ([]*reservation.Reservation, error)
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type LeaseJobRepository interface {
	Enqueue(ctx context.Context, job LeaseJob) error
	// Claim returns nil when nothing is ready.
	Claim(ctx context.Context, now time.Time, ttl time.Duration) (*LeaseJob, error)
	Complete(ctx context.Context, id uuid.UUID, now time.Time) error
	Retry(ctx context.Context, id uuid.UUID, runAt time.Time, lastErr string, now time.Time) error
	Fail(ctx context.Context, id uuid.UUID, lastErr string, now time.Time) error
}

type LockRepository interface {
	// LockFlavor serializes admission for one flavor until the transaction ends.
	LockFlavor(ctx context.Context, flavorID uuid.UUID) error
}
