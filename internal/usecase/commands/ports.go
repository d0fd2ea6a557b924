package commands

import (
	"context"
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// Lease is what the provider returns for a created lease.
type Lease struct {
	ID            string
	ComputeFlavor *string
}

// LeaseProvider provisions the capacity behind a reservation.
// DeleteLease treats a lease the provider no longer knows as deleted.
type LeaseProvider interface {
	CreateLease(ctx context.Context, r *reservation.Reservation, f *flavor.Flavor) (*Lease, error)
	UpdateLease(ctx context.Context, leaseID string, end time.Time) error
	DeleteLease(ctx context.Context, leaseID string) error
}

// ResourcePool reports whether a project runs servers on a provisioned compute flavor.
type ResourcePool interface {
	InUse(ctx context.Context, projectID, computeFlavor string) (bool, error)
}

// UserNotifier tells the reservation owner about a lifecycle event. Delivery is best effort.
type UserNotifier interface {
	SendMessage(ctx context.Context, r *reservation.Reservation, f *flavor.Flavor, event reservation.Event) error
}

const (
	AuditReservationStart  = "reservation.start"
	AuditReservationEnd    = "reservation.end"
	AuditReservationExists = "reservation.exists"
	AuditReservationInUse  = "reservation.in_use"
)

// EventPublisher emits audit events for usage accounting.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload AuditPayload) error
}

type AuditFlavor struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	VCPU             int        `json:"vcpu"`
	MemoryMB         int        `json:"memory_mb"`
	DiskGB           int        `json:"disk_gb"`
	Active           bool       `json:"active"`
	Category         *string    `json:"category"`
	AvailabilityZone *string    `json:"availability_zone"`
	Start            *time.Time `json:"start"`
	End              *time.Time `json:"end"`
}

type AuditPayload struct {
	ID            uuid.UUID   `json:"id"`
	Flavor        AuditFlavor `json:"flavor"`
	UserID        string      `json:"user_id"`
	ProjectID     string      `json:"project_id"`
	LeaseID       *string     `json:"lease_id"`
	Start         time.Time   `json:"start"`
	End           time.Time   `json:"end"`
	InstanceCount int         `json:"instance_count"`
}

func NewAuditPayload(r *reservation.Reservation, f *flavor.Flavor) AuditPayload {
	return AuditPayload{
		ID: r.ID(),
		Flavor: AuditFlavor{
			ID:               f.ID(),
			Name:             f.Name(),
			VCPU:             f.VCPU(),
			MemoryMB:         f.MemoryMB(),
			DiskGB:           f.DiskGB(),
			Active:           f.Active(),
			Category:         f.Category(),
			AvailabilityZone: f.AvailabilityZone(),
			Start:            f.Start(),
			End:              f.End(),
		},
		UserID:        r.UserID(),
		ProjectID:     r.ProjectID(),
		LeaseID:       r.LeaseID(),
		Start:         r.Start(),
		End:           r.End(),
		InstanceCount: r.InstanceCount(),
	}
}
