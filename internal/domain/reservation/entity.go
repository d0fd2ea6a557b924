package reservation

import (
	"strings"
	"time"

	"flavor-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errs.New("invalid reservation status transition")
	ErrInvalidStatus     = errs.New("invalid reservation status")
	ErrInvalidLeaseID    = errs.New("lease id is required")
)

type Reservation struct {
	id            uuid.UUID
	flavorID      uuid.UUID
	owner         Owner
	window        Window
	instanceCount int
	status        Status
	leaseID       *string
	computeFlavor *string
	statusReason  *string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation builds a PENDING_CREATE reservation. Admission rules are applied separately.
func NewReservation(flavorID uuid.UUID, owner Owner, window Window, instanceCount int, now time.Time) (*Reservation, error) {
	if owner.UserID == "" || owner.ProjectID == "" {
		return nil, ErrInvalidOwner
	}
	if instanceCount < 1 {
		return nil, ErrInvalidInstanceCount
	}
	return &Reservation{
		id:            uuid.New(),
		flavorID:      flavorID,
		owner:         owner,
		window:        window,
		instanceCount: instanceCount,
		status:        StatusPendingCreate,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	FlavorID      uuid.UUID
	Owner         Owner
	Window        Window
	InstanceCount int
	Status        Status
	LeaseID       *string
	ComputeFlavor *string
	StatusReason  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructReservation(p ReconstructParams) (*Reservation, error) {
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:            p.ID,
		flavorID:      p.FlavorID,
		owner:         p.Owner,
		window:        p.Window,
		instanceCount: p.InstanceCount,
		status:        p.Status,
		leaseID:       p.LeaseID,
		computeFlavor: p.ComputeFlavor,
		statusReason:  p.StatusReason,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) FlavorID() uuid.UUID    { return r.flavorID }
func (r *Reservation) Owner() Owner           { return r.owner }
func (r *Reservation) UserID() string         { return r.owner.UserID }
func (r *Reservation) ProjectID() string      { return r.owner.ProjectID }
func (r *Reservation) Window() Window         { return r.window }
func (r *Reservation) Start() time.Time       { return r.window.start }
func (r *Reservation) End() time.Time         { return r.window.end }
func (r *Reservation) InstanceCount() int     { return r.instanceCount }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) LeaseID() *string       { return r.leaseID }
func (r *Reservation) ComputeFlavor() *string { return r.computeFlavor }
func (r *Reservation) StatusReason() *string  { return r.statusReason }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }

func (r *Reservation) TotalHours() int {
	return r.window.TotalHours()
}

func (r *Reservation) HasLease() bool {
	return r.leaseID != nil && *r.leaseID != ""
}

// HasEnded reports whether the end time is strictly in the past.
func (r *Reservation) HasEnded(now time.Time) bool {
	return r.window.end.Before(now)
}

// MarkAllocated records the lease the provider created for this reservation.
func (r *Reservation) MarkAllocated(leaseID string, computeFlavor *string, now time.Time) error {
	if r.status != StatusPendingCreate {
		return ErrInvalidTransition
	}
	leaseID = strings.TrimSpace(leaseID)
	if leaseID == "" {
		return ErrInvalidLeaseID
	}
	r.leaseID = &leaseID
	r.computeFlavor = computeFlavor
	r.status = StatusAllocated
	r.statusReason = nil
	r.updatedAt = now
	return nil
}

func (r *Reservation) MarkError(reason string, now time.Time) error {
	if r.status != StatusPendingCreate {
		return ErrInvalidTransition
	}
	r.status = StatusError
	r.statusReason = &reason
	r.updatedAt = now
	return nil
}

func (r *Reservation) Activate(now time.Time) error {
	if r.status != StatusAllocated {
		return ErrInvalidTransition
	}
	r.status = StatusActive
	r.updatedAt = now
	return nil
}

// Complete accepts ALLOCATED as well, for leases whose start event never arrived.
func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusActive && r.status != StatusAllocated {
		return ErrInvalidTransition
	}
	r.status = StatusComplete
	r.updatedAt = now
	return nil
}

// ExtendTo moves the end time. Extension rules are applied separately.
func (r *Reservation) ExtendTo(end time.Time, now time.Time) {
	r.window = r.window.WithEnd(end)
	r.updatedAt = now
}
