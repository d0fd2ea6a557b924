package request

type LeaseEventRequest struct {
	EventType string `json:"event_type" binding:"required,oneof=lease.event.start_lease lease.event.end_lease lease.event.before_end"`
	LeaseID   string `json:"lease_id" binding:"required"`
}
