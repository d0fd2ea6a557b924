package reservation

import (
	"math"
	"strings"
	"time"

	"flavor-reservation/internal/pkg/errs"
)

// DisplayLayout is the timestamp layout used in user-facing messages and lease names.
const DisplayLayout = "2006-01-02 15:04"

var (
	ErrInvalidOwner         = errs.New("user_id and project_id are required")
	ErrInvalidInstanceCount = errs.New("instance_count must be at least 1")
)

// Window is a closed interval at minute resolution.
type Window struct {
	start time.Time
	end   time.Time
}

// NewWindow truncates both bounds to the minute in UTC. Ordering is checked by admission.
func NewWindow(start, end time.Time) Window {
	return Window{
		start: start.UTC().Truncate(time.Minute),
		end:   end.UTC().Truncate(time.Minute),
	}
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// TotalHours is the duration rounded up to whole hours.
func (w Window) TotalHours() int {
	return CeilHours(w.Duration())
}

// Overlaps uses closed-interval semantics: touching windows overlap.
func (w Window) Overlaps(other Window) bool {
	return !w.end.Before(other.start) && !w.start.After(other.end)
}

func (w Window) WithEnd(end time.Time) Window {
	return NewWindow(w.start, end)
}

func CeilHours(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours()))
}

// Owner identifies who holds a reservation.
type Owner struct {
	UserID    string
	ProjectID string
}

func NewOwner(userID, projectID string) (Owner, error) {
	userID = strings.TrimSpace(userID)
	projectID = strings.TrimSpace(projectID)
	if userID == "" || projectID == "" {
		return Owner{}, ErrInvalidOwner
	}
	return Owner{UserID: userID, ProjectID: projectID}, nil
}
