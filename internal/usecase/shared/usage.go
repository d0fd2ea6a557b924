package shared

import "context"

// Usage is what a project currently holds in effective-status reservations.
type Usage struct {
	Reservations int
	Hours        int
}

type UsageReader interface {
	ProjectUsage(ctx context.Context, projectID string) (Usage, error)
}
