package shared

import (
	"context"
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/domain/schedule"

	"github.com/google/uuid"
)

// FreeSlots computes the free slots of f within [start, end] counting reservations in statuses.
func FreeSlots(ctx context.Context, lister OccupancyLister, f *flavor.Flavor, start, end time.Time, statuses []reservation.Status, exclude *uuid.UUID) ([]schedule.Slot, error) {
	if !f.Active() {
		return []schedule.Slot{}, nil
	}
	start = start.UTC().Truncate(time.Minute)
	end = end.UTC().Truncate(time.Minute)
	from, to, ok := f.AvailableWindow(start, end)
	if !ok {
		return []schedule.Slot{}, nil
	}

	occ, err := lister.ListOccupancy(ctx, OverlapFilter{
		FlavorID:  f.ID(),
		From:      from,
		To:        to,
		Statuses:  statuses,
		ExcludeID: exclude,
	})
	if err != nil {
		return nil, err
	}
	return schedule.Available(f.Slots(), from, to, occ), nil
}
