package request

import (
	"time"

	"flavor-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	FlavorID      uuid.UUID `json:"flavor_id" binding:"required"`
	Start         time.Time `json:"start" binding:"required"`
	End           time.Time `json:"end" binding:"required"`
	InstanceCount *int      `json:"instance_count,omitempty" binding:"omitempty,min=1"`
}

func (r CreateReservationRequest) Window() reservation.Window {
	return reservation.NewWindow(r.Start, r.End)
}

func (r CreateReservationRequest) GetInstanceCount() int {
	if r.InstanceCount == nil {
		return 1
	}
	return *r.InstanceCount
}

type ExtendReservationRequest struct {
	End time.Time `json:"end" binding:"required"`
}

// NewEnd is the requested end truncated to the minute.
func (r ExtendReservationRequest) NewEnd() time.Time {
	return r.End.UTC().Truncate(time.Minute)
}

type ListReservationsQuery struct {
	AllProjects bool       `form:"all_projects"`
	ProjectID   *string    `form:"project_id"`
	FlavorID    *string    `form:"flavor_id" binding:"omitempty,uuid"`
	Status      *string    `form:"status" binding:"omitempty,oneof=PENDING_CREATE ALLOCATED ACTIVE ERROR COMPLETE"`
	Limit       int        `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset      int        `form:"offset" binding:"omitempty,min=0"`
}

func (q ListReservationsQuery) FlavorUUID() *uuid.UUID {
	if q.FlavorID == nil {
		return nil
	}
	id := uuid.MustParse(*q.FlavorID)
	return &id
}
