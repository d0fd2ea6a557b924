package reservation

type Status string

const (
	StatusPendingCreate Status = "PENDING_CREATE"
	StatusAllocated     Status = "ALLOCATED"
	StatusActive        Status = "ACTIVE"
	StatusError         Status = "ERROR"
	StatusComplete      Status = "COMPLETE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingCreate, StatusAllocated, StatusActive, StatusError, StatusComplete:
		return true
	default:
		return false
	}
}

// IsEffective reports whether a reservation in this status holds capacity.
func (s Status) IsEffective() bool {
	switch s {
	case StatusPendingCreate, StatusAllocated, StatusActive:
		return true
	default:
		return false
	}
}

// EffectiveStatuses are counted by admission and quota usage.
func EffectiveStatuses() []Status {
	return []Status{StatusPendingCreate, StatusAllocated, StatusActive}
}

// SlotStatuses are the statuses shown as busy in the free-slot view.
func SlotStatuses() []Status {
	return []Status{StatusAllocated, StatusActive}
}

// Event names the user-facing notifications a reservation goes through.
type Event string

const (
	EventCreate    Event = "create"
	EventStart     Event = "start"
	EventEnd       Event = "end"
	EventBeforeEnd Event = "before_end"
)

func (e Event) String() string {
	return string(e)
}

func (e Event) IsValid() bool {
	switch e {
	case EventCreate, EventStart, EventEnd, EventBeforeEnd:
		return true
	default:
		return false
	}
}

// Lease provider notification types.
const (
	LeaseEventStart     = "lease.event.start_lease"
	LeaseEventEnd       = "lease.event.end_lease"
	LeaseEventBeforeEnd = "lease.event.before_end"
)

// EventForLease maps a lease provider notification type to the reservation event it drives.
func EventForLease(eventType string) (Event, bool) {
	switch eventType {
	case LeaseEventStart:
		return EventStart, true
	case LeaseEventEnd:
		return EventEnd, true
	case LeaseEventBeforeEnd:
		return EventBeforeEnd, true
	default:
		return "", false
	}
}
