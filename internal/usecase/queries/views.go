package queries

import (
	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
)

// Write-side results are rendered through the same views the read side serves.

func NewFlavorView(f *flavor.Flavor) *FlavorView {
	return &FlavorView{
		ID:               f.ID(),
		Name:             f.Name(),
		Description:      f.Description(),
		VCPU:             int32(f.VCPU()),
		MemoryMB:         int32(f.MemoryMB()),
		DiskGB:           int32(f.DiskGB()),
		EphemeralGB:      int32(f.EphemeralGB()),
		Properties:       f.Properties(),
		ExtraSpecs:       f.ExtraSpecs(),
		Category:         f.Category(),
		AvailabilityZone: f.AvailabilityZone(),
		Active:           f.Active(),
		IsPublic:         f.IsPublic(),
		MaxLengthHours:   int32(f.MaxLengthHours()),
		Slots:            int32(f.Slots()),
		Start:            f.Start(),
		End:              f.End(),
		CreatedAt:        f.CreatedAt(),
		UpdatedAt:        f.UpdatedAt(),
	}
}

func NewFlavorProjectView(g *flavor.Grant) *FlavorProjectView {
	return &FlavorProjectView{
		ID:        g.ID(),
		FlavorID:  g.FlavorID(),
		ProjectID: g.ProjectID(),
		CreatedAt: g.CreatedAt(),
	}
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:            r.ID(),
		FlavorID:      r.FlavorID(),
		UserID:        r.UserID(),
		ProjectID:     r.ProjectID(),
		Start:         r.Start(),
		End:           r.End(),
		InstanceCount: int32(r.InstanceCount()),
		TotalHours:    int32(r.TotalHours()),
		Status:        r.Status().String(),
		LeaseID:       r.LeaseID(),
		ComputeFlavor: r.ComputeFlavor(),
		StatusReason:  r.StatusReason(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}
