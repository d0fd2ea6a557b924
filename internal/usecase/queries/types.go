package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 1000
)

type FlavorView struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	VCPU             int32             `json:"vcpu"`
	MemoryMB         int32             `json:"memory_mb"`
	DiskGB           int32             `json:"disk_gb"`
	EphemeralGB      int32             `json:"ephemeral_gb"`
	Properties       string            `json:"properties"`
	ExtraSpecs       map[string]string `json:"extra_specs"`
	Category         *string           `json:"category,omitempty"`
	AvailabilityZone *string           `json:"availability_zone,omitempty"`
	Active           bool              `json:"active"`
	IsPublic         bool              `json:"is_public"`
	MaxLengthHours   int32             `json:"max_length_hours"`
	Slots            int32             `json:"slots"`
	Start            *time.Time        `json:"start,omitempty"`
	End              *time.Time        `json:"end,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type FlavorProjectView struct {
	ID        uuid.UUID `json:"id"`
	FlavorID  uuid.UUID `json:"flavor_id"`
	ProjectID string    `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	FlavorID      uuid.UUID `json:"flavor_id"`
	UserID        string    `json:"user_id"`
	ProjectID     string    `json:"project_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	InstanceCount int32     `json:"instance_count"`
	TotalHours    int32     `json:"total_hours"`
	Status        string    `json:"status"`
	LeaseID       *string   `json:"lease_id,omitempty"`
	ComputeFlavor *string   `json:"compute_flavor,omitempty"`
	StatusReason  *string   `json:"status_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LimitsView is a project's quota and what it currently uses. Zero limits mean unlimited.
type LimitsView struct {
	MaxHours              int `json:"maxHours"`
	MaxReservations       int `json:"maxReservations"`
	TotalHoursUsed        int `json:"totalHoursUsed"`
	TotalReservationsUsed int `json:"totalReservationsUsed"`
}

type FlavorFilter struct {
	Category         *string
	AvailabilityZone *string
	AllProjects      bool
	ProjectID        string
	Limit            int
}

type FlavorProjectFilter struct {
	FlavorID  *uuid.UUID
	ProjectID *string
}

type ReservationFilter struct {
	ProjectID *string
	FlavorID  *uuid.UUID
	Status    *string
	Limit     int
	Offset    int
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
