//go:build unit || e2e

package builder

import (
	"time"

	"flavor-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	FlavorID      uuid.UUID
	UserID        string
	ProjectID     string
	Start         time.Time
	End           time.Time
	InstanceCount int
	Status        reservation.Status
	LeaseID       *string
	ComputeFlavor *string
	StatusReason  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:            uuid.New(),
		FlavorID:      uuid.New(),
		UserID:        "user-1",
		ProjectID:     "project-1",
		Start:         time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC),
		InstanceCount: 1,
		Status:        reservation.StatusPendingCreate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Window() reservation.Window {
	return reservation.NewWindow(b.Start, b.End)
}

// BuildDomain runs the validating constructor; the result is PENDING_CREATE.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(b.FlavorID, reservation.Owner{UserID: b.UserID, ProjectID: b.ProjectID}, b.Window(), b.InstanceCount, b.CreatedAt)
}

// Build reconstructs a persisted reservation in the builder's status. It panics on invalid status.
func (b *ReservationBuilder) Build() *reservation.Reservation {
	r, err := reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:            b.ID,
		FlavorID:      b.FlavorID,
		Owner:         reservation.Owner{UserID: b.UserID, ProjectID: b.ProjectID},
		Window:        b.Window(),
		InstanceCount: b.InstanceCount,
		Status:        b.Status,
		LeaseID:       b.LeaseID,
		ComputeFlavor: b.ComputeFlavor,
		StatusReason:  b.StatusReason,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	})
	if err != nil {
		panic(err)
	}
	return r
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithFlavorID(id uuid.UUID) *ReservationBuilder {
	b.FlavorID = id
	return b
}

func (b *ReservationBuilder) WithOwner(userID, projectID string) *ReservationBuilder {
	b.UserID = userID
	b.ProjectID = projectID
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) WithInstanceCount(n int) *ReservationBuilder {
	b.InstanceCount = n
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithLease(leaseID string) *ReservationBuilder {
	b.LeaseID = &leaseID
	return b
}

func (b *ReservationBuilder) WithComputeFlavor(id string) *ReservationBuilder {
	b.ComputeFlavor = &id
	return b
}

// AsActive puts the reservation in ACTIVE with a lease.
func (b *ReservationBuilder) AsActive() *ReservationBuilder {
	b.Status = reservation.StatusActive
	if b.LeaseID == nil {
		b.WithLease("lease-" + b.ID.String()[:8])
	}
	return b
}

func (b *ReservationBuilder) AsAllocated() *ReservationBuilder {
	b.AsActive()
	b.Status = reservation.StatusAllocated
	return b
}
