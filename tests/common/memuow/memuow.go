//go:build unit

// Package memuow is an in-memory UnitOfWork for use case tests. Transactions
// are serialized and roll back every write when fn returns an error.
package memuow

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/domain/schedule"
	"flavor-reservation/internal/infra"
	"flavor-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type JobState string

const (
	JobQueued     JobState = "queued"
	JobProcessing JobState = "processing"
	JobDone       JobState = "done"
	JobFailed     JobState = "failed"
)

// Job is a stored lease job with its queue bookkeeping.
type Job struct {
	shared.LeaseJob
	State        JobState
	ClaimedUntil time.Time
}

type state struct {
	flavors      map[uuid.UUID]*flavor.Flavor
	grants       map[uuid.UUID]*flavor.Grant
	reservations map[uuid.UUID]*reservation.Reservation
	jobs         map[uuid.UUID]*Job
}

func (s state) clone() state {
	jobs := make(map[uuid.UUID]*Job, len(s.jobs))
	for id, j := range s.jobs {
		cp := *j
		jobs[id] = &cp
	}
	return state{
		flavors:      maps.Clone(s.flavors),
		grants:       maps.Clone(s.grants),
		reservations: maps.Clone(s.reservations),
		jobs:         jobs,
	}
}

type Store struct {
	mu    sync.Mutex
	state state

	// Locked records every flavor id passed to LockFlavor.
	Locked []uuid.UUID
	// FailNext makes the next Within fail with this error before running fn.
	FailNext error
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{state: state{
		flavors:      map[uuid.UUID]*flavor.Flavor{},
		grants:       map[uuid.UUID]*flavor.Grant{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		jobs:         map[uuid.UUID]*Job{},
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.FailNext; err != nil {
		s.FailNext = nil
		return err
	}

	tx := &memTx{store: s, state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, state: s.state.clone()}
	return fn(ctx, tx)
}

// Seed helpers write directly, outside any transaction.

func (s *Store) PutFlavor(f *flavor.Flavor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.flavors[f.ID()] = f
}

func (s *Store) PutGrant(g *flavor.Grant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.grants[g.ID()] = g
}

func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.reservations[r.ID()] = copyReservation(r)
}

func (s *Store) PutJob(j shared.LeaseJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.jobs[j.ID] = &Job{LeaseJob: j, State: JobQueued}
}

func (s *Store) RemoveReservation(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.reservations, id)
}

func (s *Store) Flavor(id uuid.UUID) (*flavor.Flavor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.state.flavors[id]
	return f, ok
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.reservations[id]
	if !ok {
		return nil, false
	}
	return copyReservation(r), true
}

func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reservation.Reservation, 0, len(s.state.reservations))
	for _, r := range s.state.reservations {
		out = append(out, copyReservation(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) Grants() []*flavor.Grant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.state.grants))
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Job, 0, len(s.state.jobs))
	for _, j := range s.state.jobs {
		out = append(out, *j)
	}
	return out
}

// Usage implements shared.UsageReader over the stored reservations.
func (s *Store) ProjectUsage(_ context.Context, projectID string) (shared.Usage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var u shared.Usage
	for _, r := range s.state.reservations {
		if r.ProjectID() == projectID && r.Status().IsEffective() {
			u.Reservations++
			u.Hours += r.TotalHours()
		}
	}
	return u, nil
}

func copyReservation(r *reservation.Reservation) *reservation.Reservation {
	cp, err := reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:            r.ID(),
		FlavorID:      r.FlavorID(),
		Owner:         r.Owner(),
		Window:        r.Window(),
		InstanceCount: r.InstanceCount(),
		Status:        r.Status(),
		LeaseID:       r.LeaseID(),
		ComputeFlavor: r.ComputeFlavor(),
		StatusReason:  r.StatusReason(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	})
	if err != nil {
		panic(err)
	}
	return cp
}

func copyFlavor(f *flavor.Flavor) *flavor.Flavor {
	return flavor.ReconstructFlavor(f.ID(), f.Spec(), f.CreatedAt(), f.UpdatedAt())
}

type memTx struct {
	store *Store
	state state
}

func (t *memTx) Flavors() shared.FlavorRepository               { return flavorRepo{t} }
func (t *memTx) FlavorProjects() shared.FlavorProjectRepository { return grantRepo{t} }
func (t *memTx) Reservations() shared.ReservationRepository     { return reservationRepo{t} }
func (t *memTx) LeaseJobs() shared.LeaseJobRepository           { return jobRepo{t} }
func (t *memTx) Locks() shared.LockRepository                   { return lockRepo{t} }

type flavorRepo struct{ tx *memTx }

func (r flavorRepo) FindByID(_ context.Context, id uuid.UUID) (*flavor.Flavor, error) {
	f, ok := r.tx.state.flavors[id]
	if !ok {
		return nil, infra.NotFound("flavor not found")
	}
	return copyFlavor(f), nil
}

func (r flavorRepo) Create(_ context.Context, f *flavor.Flavor) error {
	r.tx.state.flavors[f.ID()] = copyFlavor(f)
	return nil
}

func (r flavorRepo) Update(_ context.Context, f *flavor.Flavor) error {
	if _, ok := r.tx.state.flavors[f.ID()]; !ok {
		return infra.NotFound("flavor not found")
	}
	r.tx.state.flavors[f.ID()] = copyFlavor(f)
	return nil
}

func (r flavorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.state.flavors[id]; !ok {
		return infra.NotFound("flavor not found")
	}
	delete(r.tx.state.flavors, id)
	for gid, g := range r.tx.state.grants {
		if g.FlavorID() == id {
			delete(r.tx.state.grants, gid)
		}
	}
	return nil
}

type grantRepo struct{ tx *memTx }

func (r grantRepo) FindByID(_ context.Context, id uuid.UUID) (*flavor.Grant, error) {
	g, ok := r.tx.state.grants[id]
	if !ok {
		return nil, infra.NotFound("flavor project not found")
	}
	return g, nil
}

func (r grantRepo) Exists(_ context.Context, flavorID uuid.UUID, projectID string) (bool, error) {
	for _, g := range r.tx.state.grants {
		if g.FlavorID() == flavorID && g.ProjectID() == projectID {
			return true, nil
		}
	}
	return false, nil
}

func (r grantRepo) Create(ctx context.Context, g *flavor.Grant) error {
	if _, ok := r.tx.state.flavors[g.FlavorID()]; !ok {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	if exists, _ := r.Exists(ctx, g.FlavorID(), g.ProjectID()); exists {
		return infra.RepositoryError{Kind: infra.KindDuplicateKey}
	}
	r.tx.state.grants[g.ID()] = g
	return nil
}

func (r grantRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.state.grants[id]; !ok {
		return infra.NotFound("flavor project not found")
	}
	delete(r.tx.state.grants, id)
	return nil
}

type reservationRepo struct{ tx *memTx }

func (r reservationRepo) overlapping(filter shared.OverlapFilter) []*reservation.Reservation {
	var out []*reservation.Reservation
	for _, res := range r.tx.state.reservations {
		if res.FlavorID() != filter.FlavorID || !slices.Contains(filter.Statuses, res.Status()) {
			continue
		}
		if filter.ExcludeID != nil && res.ID() == *filter.ExcludeID {
			continue
		}
		if res.End().Before(filter.From) || res.Start().After(filter.To) {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start().Before(out[j].Start()) })
	return out
}

func (r reservationRepo) ListOccupancy(_ context.Context, filter shared.OverlapFilter) ([]schedule.Occupancy, error) {
	var occ []schedule.Occupancy
	for _, res := range r.overlapping(filter) {
		occ = append(occ, schedule.Occupancy{Start: res.Start(), End: res.End(), Units: res.InstanceCount()})
	}
	return occ, nil
}

func (r reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.tx.state.reservations[id]
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return copyReservation(res), nil
}

func (r reservationRepo) FindByLeaseID(_ context.Context, leaseID string) (*reservation.Reservation, error) {
	for _, res := range r.tx.state.reservations {
		if res.LeaseID() != nil && *res.LeaseID() == leaseID {
			return copyReservation(res), nil
		}
	}
	return nil, infra.NotFound("reservation not found")
}

func (r reservationRepo) SumInstanceCount(_ context.Context, filter shared.OverlapFilter) (int, error) {
	total := 0
	for _, res := range r.overlapping(filter) {
		total += res.InstanceCount()
	}
	return total, nil
}

func (r reservationRepo) CountByFlavor(_ context.Context, flavorID uuid.UUID) (int, error) {
	n := 0
	for _, res := range r.tx.state.reservations {
		if res.FlavorID() == flavorID {
			n++
		}
	}
	return n, nil
}

func (r reservationRepo) ListByStatus(_ context.Context, status reservation.Status, endBefore *time.Time) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.tx.state.reservations {
		if res.Status() != status {
			continue
		}
		if endBefore != nil && !res.End().Before(*endBefore) {
			continue
		}
		out = append(out, copyReservation(res))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start().Before(out[j].Start()) })
	return out, nil
}

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.tx.state.flavors[res.FlavorID()]; !ok {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	r.tx.state.reservations[res.ID()] = copyReservation(res)
	return nil
}

func (r reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.tx.state.reservations[res.ID()]; !ok {
		return infra.NotFound("reservation not found")
	}
	r.tx.state.reservations[res.ID()] = copyReservation(res)
	return nil
}

func (r reservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.state.reservations[id]; !ok {
		return infra.NotFound("reservation not found")
	}
	delete(r.tx.state.reservations, id)
	for jid, j := range r.tx.state.jobs {
		if j.ReservationID == id {
			delete(r.tx.state.jobs, jid)
		}
	}
	return nil
}

type jobRepo struct{ tx *memTx }

func (r jobRepo) Enqueue(_ context.Context, job shared.LeaseJob) error {
	r.tx.state.jobs[job.ID] = &Job{LeaseJob: job, State: JobQueued}
	return nil
}

func (r jobRepo) Claim(_ context.Context, now time.Time, ttl time.Duration) (*shared.LeaseJob, error) {
	var ready []*Job
	for _, j := range r.tx.state.jobs {
		queued := j.State == JobQueued && !j.RunAt.After(now)
		expired := j.State == JobProcessing && j.ClaimedUntil.Before(now)
		if queued || expired {
			ready = append(ready, j)
		}
	}
	if len(ready) == 0 {
		return nil, nil
	}
	sort.Slice(ready, func(i, k int) bool { return ready[i].RunAt.Before(ready[k].RunAt) })

	j := ready[0]
	j.State = JobProcessing
	j.Attempts++
	j.ClaimedUntil = now.Add(ttl)
	out := j.LeaseJob
	return &out, nil
}

func (r jobRepo) find(id uuid.UUID) (*Job, error) {
	j, ok := r.tx.state.jobs[id]
	if !ok {
		return nil, infra.NotFound("lease job not found")
	}
	return j, nil
}

func (r jobRepo) Complete(_ context.Context, id uuid.UUID, _ time.Time) error {
	j, err := r.find(id)
	if err != nil {
		return err
	}
	j.State = JobDone
	return nil
}

func (r jobRepo) Retry(_ context.Context, id uuid.UUID, runAt time.Time, lastErr string, _ time.Time) error {
	j, err := r.find(id)
	if err != nil {
		return err
	}
	j.State = JobQueued
	j.RunAt = runAt
	j.LastError = &lastErr
	return nil
}

func (r jobRepo) Fail(_ context.Context, id uuid.UUID, lastErr string, _ time.Time) error {
	j, err := r.find(id)
	if err != nil {
		return err
	}
	j.State = JobFailed
	j.LastError = &lastErr
	return nil
}

type lockRepo struct{ tx *memTx }

func (r lockRepo) LockFlavor(_ context.Context, flavorID uuid.UUID) error {
	r.tx.store.Locked = append(r.tx.store.Locked, flavorID)
	return nil
}
