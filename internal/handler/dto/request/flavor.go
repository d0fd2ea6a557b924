package request

import (
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/pkg/patch"
)

type CreateFlavorRequest struct {
	Name             string            `json:"name" binding:"required,max=64"`
	Description      string            `json:"description" binding:"max=255"`
	VCPU             int               `json:"vcpu" binding:"required,min=0"`
	MemoryMB         int               `json:"memory_mb" binding:"required,min=0"`
	DiskGB           int               `json:"disk_gb" binding:"min=0"`
	EphemeralGB      int               `json:"ephemeral_gb" binding:"min=0"`
	Properties       string            `json:"properties"`
	ExtraSpecs       map[string]string `json:"extra_specs"`
	Category         *string           `json:"category,omitempty"`
	AvailabilityZone *string           `json:"availability_zone,omitempty"`
	Active           *bool             `json:"active,omitempty"`
	IsPublic         *bool             `json:"is_public,omitempty"`
	MaxLengthHours   int               `json:"max_length_hours" binding:"required,min=1"`
	Slots            int               `json:"slots" binding:"required,min=1"`
	Start            *time.Time        `json:"start,omitempty"`
	End              *time.Time        `json:"end,omitempty"`
}

// ToSpec fills defaults: flavors are active and public unless told otherwise.
func (r CreateFlavorRequest) ToSpec() flavor.Spec {
	return flavor.Spec{
		Name:             r.Name,
		Description:      r.Description,
		VCPU:             r.VCPU,
		MemoryMB:         r.MemoryMB,
		DiskGB:           r.DiskGB,
		EphemeralGB:      r.EphemeralGB,
		Properties:       r.Properties,
		ExtraSpecs:       r.ExtraSpecs,
		Category:         r.Category,
		AvailabilityZone: r.AvailabilityZone,
		Active:           patch.Coalesce(r.Active, true),
		IsPublic:         patch.Coalesce(r.IsPublic, true),
		MaxLengthHours:   r.MaxLengthHours,
		Slots:            r.Slots,
		Start:            r.Start,
		End:              r.End,
	}
}

type UpdateFlavorRequest struct {
	Name             *string           `json:"name,omitempty" binding:"omitempty,max=64"`
	Description      *string           `json:"description,omitempty" binding:"omitempty,max=255"`
	VCPU             *int              `json:"vcpu,omitempty" binding:"omitempty,min=0"`
	MemoryMB         *int              `json:"memory_mb,omitempty" binding:"omitempty,min=0"`
	DiskGB           *int              `json:"disk_gb,omitempty" binding:"omitempty,min=0"`
	EphemeralGB      *int              `json:"ephemeral_gb,omitempty" binding:"omitempty,min=0"`
	Properties       *string           `json:"properties,omitempty"`
	ExtraSpecs       map[string]string `json:"extra_specs,omitempty"`
	Category         *string           `json:"category,omitempty"`
	AvailabilityZone *string           `json:"availability_zone,omitempty"`
	Active           *bool             `json:"active,omitempty"`
	IsPublic         *bool             `json:"is_public,omitempty"`
	MaxLengthHours   *int              `json:"max_length_hours,omitempty" binding:"omitempty,min=1"`
	Slots            *int              `json:"slots,omitempty" binding:"omitempty,min=1"`
	Start            *time.Time        `json:"start,omitempty"`
	End              *time.Time        `json:"end,omitempty"`
}

func (r UpdateFlavorRequest) ToPatch() flavor.Patch {
	return flavor.Patch{
		Name:             r.Name,
		Description:      r.Description,
		VCPU:             r.VCPU,
		MemoryMB:         r.MemoryMB,
		DiskGB:           r.DiskGB,
		EphemeralGB:      r.EphemeralGB,
		Properties:       r.Properties,
		ExtraSpecs:       r.ExtraSpecs,
		Category:         r.Category,
		AvailabilityZone: r.AvailabilityZone,
		Active:           r.Active,
		IsPublic:         r.IsPublic,
		MaxLengthHours:   r.MaxLengthHours,
		Slots:            r.Slots,
		Start:            r.Start,
		End:              r.End,
	}
}

type ListFlavorsQuery struct {
	Category         *string `form:"category"`
	AvailabilityZone *string `form:"availability_zone"`
	AllProjects      bool    `form:"all_projects"`
	Limit            int     `form:"limit" binding:"omitempty,min=1,max=1000"`
}

type FreeSlotsQuery struct {
	Start *time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End   *time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
}

type CreateFlavorProjectRequest struct {
	FlavorID  string `json:"flavor_id" binding:"required,uuid"`
	ProjectID string `json:"project_id" binding:"required,max=64"`
}

type ListFlavorProjectsQuery struct {
	FlavorID  *string `form:"flavor_id" binding:"omitempty,uuid"`
	ProjectID *string `form:"project_id"`
}
