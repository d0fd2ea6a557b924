//go:build unit || e2e

package builder

import (
	"time"

	"flavor-reservation/internal/domain/flavor"

	"github.com/google/uuid"
)

type FlavorBuilder struct {
	ID        uuid.UUID
	Spec      flavor.Spec
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewFlavorBuilder() *FlavorBuilder {
	now := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	return &FlavorBuilder{
		ID: uuid.New(),
		Spec: flavor.Spec{
			Name:           "compute_haswell",
			Description:    "Haswell bare metal node",
			VCPU:           48,
			MemoryMB:       131072,
			DiskGB:         400,
			EphemeralGB:    0,
			Properties:     "node_type=compute_haswell",
			ExtraSpecs:     map[string]string{"resources:CUSTOM_BAREMETAL": "1"},
			Active:         true,
			IsPublic:       true,
			MaxLengthHours: 168,
			Slots:          1,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *FlavorBuilder) With(mutate func(*FlavorBuilder)) *FlavorBuilder {
	mutate(b)
	return b
}

// BuildDomain runs the validating constructor.
func (b *FlavorBuilder) BuildDomain() (*flavor.Flavor, error) {
	return flavor.NewFlavor(b.Spec, b.CreatedAt)
}

// Build reconstructs a persisted flavor with the builder's ID.
func (b *FlavorBuilder) Build() *flavor.Flavor {
	return flavor.ReconstructFlavor(b.ID, b.Spec, b.CreatedAt, b.UpdatedAt)
}

// Fluent builder methods
func (b *FlavorBuilder) WithID(id uuid.UUID) *FlavorBuilder {
	b.ID = id
	return b
}

func (b *FlavorBuilder) WithName(name string) *FlavorBuilder {
	b.Spec.Name = name
	return b
}

func (b *FlavorBuilder) WithSlots(slots int) *FlavorBuilder {
	b.Spec.Slots = slots
	return b
}

func (b *FlavorBuilder) WithMaxLengthHours(hours int) *FlavorBuilder {
	b.Spec.MaxLengthHours = hours
	return b
}

func (b *FlavorBuilder) WithActive(active bool) *FlavorBuilder {
	b.Spec.Active = active
	return b
}

func (b *FlavorBuilder) WithPublic(public bool) *FlavorBuilder {
	b.Spec.IsPublic = public
	return b
}

func (b *FlavorBuilder) WithWindow(start, end *time.Time) *FlavorBuilder {
	b.Spec.Start = start
	b.Spec.End = end
	return b
}

func (b *FlavorBuilder) WithCategory(category string) *FlavorBuilder {
	b.Spec.Category = &category
	return b
}

func (b *FlavorBuilder) WithAvailabilityZone(zone string) *FlavorBuilder {
	b.Spec.AvailabilityZone = &zone
	return b
}
