package commands

import (
	"context"

	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/shared"
)

const (
	QuotaResourceReservation = "reservation"
	QuotaResourceHours       = "hours"
)

// QuotaExceededError names the project limit a request would break.
type QuotaExceededError struct {
	Resource string
}

func (e *QuotaExceededError) Error() string {
	return "Quota exceeded for resource " + e.Resource
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == errs.ErrQuotaExceeded
}

type QuotaEnforcer interface {
	// Check admits one more reservation of hours for projectID.
	Check(ctx context.Context, projectID string, hours int) error
}

type quotaEnforcerImpl struct {
	usage  shared.UsageReader
	limits config.QuotaConfig
}

func NewQuotaEnforcer(usage shared.UsageReader, limits config.QuotaConfig) QuotaEnforcer {
	return &quotaEnforcerImpl{usage: usage, limits: limits}
}

func (q *quotaEnforcerImpl) Check(ctx context.Context, projectID string, hours int) error {
	if q.limits.MaxReservations <= 0 && q.limits.MaxHours <= 0 {
		return nil
	}
	u, err := q.usage.ProjectUsage(ctx, projectID)
	if err != nil {
		return err
	}
	if q.limits.MaxReservations > 0 && u.Reservations+1 > q.limits.MaxReservations {
		return &QuotaExceededError{Resource: QuotaResourceReservation}
	}
	if q.limits.MaxHours > 0 && u.Hours+hours > q.limits.MaxHours {
		return &QuotaExceededError{Resource: QuotaResourceHours}
	}
	return nil
}
