//go:build unit || e2e

package builder

import (
	reqdto "flavor-reservation/internal/handler/dto/request"
	"flavor-reservation/internal/usecase/queries"
)

func (b *FlavorBuilder) BuildView() *queries.FlavorView {
	return queries.NewFlavorView(b.Build())
}

func (b *FlavorBuilder) BuildCreateRequestDTO() reqdto.CreateFlavorRequest {
	s := b.Spec
	return reqdto.CreateFlavorRequest{
		Name:             s.Name,
		Description:      s.Description,
		VCPU:             s.VCPU,
		MemoryMB:         s.MemoryMB,
		DiskGB:           s.DiskGB,
		EphemeralGB:      s.EphemeralGB,
		Properties:       s.Properties,
		ExtraSpecs:       s.ExtraSpecs,
		Category:         s.Category,
		AvailabilityZone: s.AvailabilityZone,
		Active:           &s.Active,
		IsPublic:         &s.IsPublic,
		MaxLengthHours:   s.MaxLengthHours,
		Slots:            s.Slots,
		Start:            s.Start,
		End:              s.End,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.NewReservationView(b.Build())
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	n := b.InstanceCount
	return reqdto.CreateReservationRequest{
		FlavorID:      b.FlavorID,
		Start:         b.Start,
		End:           b.End,
		InstanceCount: &n,
	}
}
