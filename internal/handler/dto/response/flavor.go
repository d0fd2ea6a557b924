package response

import (
	"time"

	"flavor-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FlavorResponse struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	VCPU             int32             `json:"vcpu"`
	MemoryMB         int32             `json:"memory_mb"`
	DiskGB           int32             `json:"disk_gb"`
	EphemeralGB      int32             `json:"ephemeral_gb"`
	Properties       string            `json:"properties"`
	ExtraSpecs       map[string]string `json:"extra_specs"`
	Category         *string           `json:"category"`
	AvailabilityZone *string           `json:"availability_zone"`
	Active           bool              `json:"active"`
	IsPublic         bool              `json:"is_public"`
	MaxLengthHours   int32             `json:"max_length_hours"`
	Slots            int32             `json:"slots"`
	Start            *time.Time        `json:"start"`
	End              *time.Time        `json:"end"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func FromFlavorView(v *queries.FlavorView) *FlavorResponse {
	res := &FlavorResponse{}
	_ = copier.CopyWithOption(res, v, copier.Option{DeepCopy: true})
	if res.ExtraSpecs == nil {
		res.ExtraSpecs = map[string]string{}
	}
	return res
}

func FromFlavorViews(vs []*queries.FlavorView) []*FlavorResponse {
	res := make([]*FlavorResponse, len(vs))
	for i, v := range vs {
		res[i] = FromFlavorView(v)
	}
	return res
}

type FlavorProjectResponse struct {
	ID        uuid.UUID `json:"id"`
	FlavorID  uuid.UUID `json:"flavor_id"`
	ProjectID string    `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromFlavorProjectViews(vs []*queries.FlavorProjectView) []*FlavorProjectResponse {
	res := make([]*FlavorProjectResponse, 0, len(vs))
	_ = copier.Copy(&res, vs)
	return res
}

func FromFlavorProjectView(v *queries.FlavorProjectView) *FlavorProjectResponse {
	res := &FlavorProjectResponse{}
	_ = copier.Copy(res, v)
	return res
}

// SlotResponse is one free interval. Both ends are inclusive to the minute.
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func FromSlotViews(vs []queries.SlotView) []SlotResponse {
	res := make([]SlotResponse, len(vs))
	for i, v := range vs {
		res[i] = SlotResponse{Start: v.Start.UTC(), End: v.End.UTC()}
	}
	return res
}
