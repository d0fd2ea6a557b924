package flavor

import (
	"strings"
	"time"

	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 64
	MaxDescriptionLength = 255
)

var (
	ErrInvalidName        = errs.New("flavor name must be 1-64 characters")
	ErrInvalidDescription = errs.New("flavor description must be at most 255 characters")
	ErrInvalidShape       = errs.New("vcpu, memory_mb, disk_gb and ephemeral_gb must not be negative")
	ErrInvalidSlots       = errs.New("slots must be at least 1")
	ErrInvalidMaxLength   = errs.New("max_length_hours must be at least 1")
	ErrInvalidWindow      = errs.New("flavor start must be before flavor end")
	ErrCapacityLocked     = errs.New("slots, vcpu, memory_mb and disk_gb cannot change while the flavor is in use")
)

// Spec is the full set of operator-editable attributes.
type Spec struct {
	Name             string
	Description      string
	VCPU             int
	MemoryMB         int
	DiskGB           int
	EphemeralGB      int
	Properties       string
	ExtraSpecs       map[string]string
	Category         *string
	AvailabilityZone *string
	Active           bool
	IsPublic         bool
	MaxLengthHours   int
	Slots            int
	Start            *time.Time
	End              *time.Time
}

// Patch holds the attributes an update may change; nil fields are left untouched.
type Patch struct {
	Name             *string
	Description      *string
	VCPU             *int
	MemoryMB         *int
	DiskGB           *int
	EphemeralGB      *int
	Properties       *string
	ExtraSpecs       map[string]string
	Category         *string
	AvailabilityZone *string
	Active           *bool
	IsPublic         *bool
	MaxLengthHours   *int
	Slots            *int
	Start            *time.Time
	End              *time.Time
}

type Flavor struct {
	id        uuid.UUID
	spec      Spec
	createdAt time.Time
	updatedAt time.Time
}

func NewFlavor(spec Spec, now time.Time) (*Flavor, error) {
	spec = normalize(spec)
	if err := validate(spec); err != nil {
		return nil, err
	}
	return &Flavor{
		id:        uuid.New(),
		spec:      spec,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructFlavor(id uuid.UUID, spec Spec, createdAt, updatedAt time.Time) *Flavor {
	return &Flavor{
		id:        id,
		spec:      normalize(spec),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (f *Flavor) ID() uuid.UUID                 { return f.id }
func (f *Flavor) Name() string                  { return f.spec.Name }
func (f *Flavor) Description() string           { return f.spec.Description }
func (f *Flavor) VCPU() int                     { return f.spec.VCPU }
func (f *Flavor) MemoryMB() int                 { return f.spec.MemoryMB }
func (f *Flavor) DiskGB() int                   { return f.spec.DiskGB }
func (f *Flavor) EphemeralGB() int              { return f.spec.EphemeralGB }
func (f *Flavor) Properties() string            { return f.spec.Properties }
func (f *Flavor) ExtraSpecs() map[string]string { return f.spec.ExtraSpecs }
func (f *Flavor) Category() *string             { return f.spec.Category }
func (f *Flavor) AvailabilityZone() *string     { return f.spec.AvailabilityZone }
func (f *Flavor) Active() bool                  { return f.spec.Active }
func (f *Flavor) IsPublic() bool                { return f.spec.IsPublic }
func (f *Flavor) MaxLengthHours() int           { return f.spec.MaxLengthHours }
func (f *Flavor) Slots() int                    { return f.spec.Slots }
func (f *Flavor) Start() *time.Time             { return f.spec.Start }
func (f *Flavor) End() *time.Time               { return f.spec.End }
func (f *Flavor) CreatedAt() time.Time          { return f.createdAt }
func (f *Flavor) UpdatedAt() time.Time          { return f.updatedAt }

func (f *Flavor) Spec() Spec { return f.spec }

// Apply merges p into the flavor. inUse locks the capacity-defining fields.
func (f *Flavor) Apply(p Patch, inUse bool, now time.Time) error {
	if inUse && (patch.Changed(p.Slots, f.spec.Slots) ||
		patch.Changed(p.VCPU, f.spec.VCPU) ||
		patch.Changed(p.MemoryMB, f.spec.MemoryMB) ||
		patch.Changed(p.DiskGB, f.spec.DiskGB)) {
		return ErrCapacityLocked
	}

	next := f.spec
	next.Name = patch.Coalesce(p.Name, next.Name)
	next.Description = patch.Coalesce(p.Description, next.Description)
	next.VCPU = patch.Coalesce(p.VCPU, next.VCPU)
	next.MemoryMB = patch.Coalesce(p.MemoryMB, next.MemoryMB)
	next.DiskGB = patch.Coalesce(p.DiskGB, next.DiskGB)
	next.EphemeralGB = patch.Coalesce(p.EphemeralGB, next.EphemeralGB)
	next.Properties = patch.Coalesce(p.Properties, next.Properties)
	next.Active = patch.Coalesce(p.Active, next.Active)
	next.IsPublic = patch.Coalesce(p.IsPublic, next.IsPublic)
	next.MaxLengthHours = patch.Coalesce(p.MaxLengthHours, next.MaxLengthHours)
	next.Slots = patch.Coalesce(p.Slots, next.Slots)
	if p.ExtraSpecs != nil {
		next.ExtraSpecs = p.ExtraSpecs
	}
	if p.Category != nil {
		next.Category = p.Category
	}
	if p.AvailabilityZone != nil {
		next.AvailabilityZone = p.AvailabilityZone
	}
	if p.Start != nil {
		next.Start = p.Start
	}
	if p.End != nil {
		next.End = p.End
	}

	next = normalize(next)
	if err := validate(next); err != nil {
		return err
	}
	f.spec = next
	f.updatedAt = now
	return nil
}

// AvailableWindow narrows [start, end] to the flavor's availability window.
// ok is false when the narrowed window is empty.
func (f *Flavor) AvailableWindow(start, end time.Time) (time.Time, time.Time, bool) {
	if f.spec.Start != nil && f.spec.Start.After(start) {
		start = *f.spec.Start
	}
	if f.spec.End != nil && f.spec.End.Before(end) {
		end = *f.spec.End
	}
	return start, end, !start.After(end)
}

func normalize(s Spec) Spec {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	if s.ExtraSpecs == nil {
		s.ExtraSpecs = map[string]string{}
	}
	if s.Start != nil {
		t := s.Start.UTC().Truncate(time.Minute)
		s.Start = &t
	}
	if s.End != nil {
		t := s.End.UTC().Truncate(time.Minute)
		s.End = &t
	}
	return s
}

func validate(s Spec) error {
	if s.Name == "" || len(s.Name) > MaxNameLength {
		return ErrInvalidName
	}
	if len(s.Description) > MaxDescriptionLength {
		return ErrInvalidDescription
	}
	if s.VCPU < 0 || s.MemoryMB < 0 || s.DiskGB < 0 || s.EphemeralGB < 0 {
		return ErrInvalidShape
	}
	if s.Slots < 1 {
		return ErrInvalidSlots
	}
	if s.MaxLengthHours < 1 {
		return ErrInvalidMaxLength
	}
	if s.Start != nil && s.End != nil && !s.Start.Before(*s.End) {
		return ErrInvalidWindow
	}
	return nil
}
