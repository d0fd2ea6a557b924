package shared

import (
	"time"

	"github.com/google/uuid"
)

type LeaseJobKind string

const (
	LeaseJobCreate LeaseJobKind = "create_lease"
)

// LeaseJob is an outbox row asking the worker to provision a lease.
type LeaseJob struct {
	ID            uuid.UUID
	Kind          LeaseJobKind
	ReservationID uuid.UUID
	Attempts      int
	RunAt         time.Time
	LastError     *string
}

func NewCreateLeaseJob(reservationID uuid.UUID, now time.Time) LeaseJob {
	return LeaseJob{
		ID:            uuid.New(),
		Kind:          LeaseJobCreate,
		ReservationID: reservationID,
		RunAt:         now,
	}
}
