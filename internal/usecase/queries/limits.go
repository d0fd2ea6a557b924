package queries

import (
	"context"

	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/shared"
)

type LimitsQueries interface {
	Get(ctx context.Context, actor shared.Identity, projectID string) (*LimitsView, error)
}

type limitsQueriesImpl struct {
	usage shared.UsageReader
	quota config.QuotaConfig
}

func NewLimitsQueries(usage shared.UsageReader, quota config.QuotaConfig) LimitsQueries {
	return &limitsQueriesImpl{usage: usage, quota: quota}
}

// Get reports limits for projectID, defaulting to the caller's project.
func (q *limitsQueriesImpl) Get(ctx context.Context, actor shared.Identity, projectID string) (*LimitsView, error) {
	if projectID == "" {
		projectID = actor.ProjectID
	}
	if !actor.CanAccessProject(projectID) {
		return nil, errs.ErrForbidden
	}

	u, err := q.usage.ProjectUsage(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &LimitsView{
		MaxHours:              max(q.quota.MaxHours, 0),
		MaxReservations:       max(q.quota.MaxReservations, 0),
		TotalHoursUsed:        u.Hours,
		TotalReservationsUsed: u.Reservations,
	}, nil
}
