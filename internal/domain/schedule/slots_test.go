//go:build unit

package schedule_test

import (
	"math/rand"
	"testing"
	"time"

	"flavor-reservation/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	layout := "2006-01-02"
	if len(s) > len(layout) {
		layout = "2006-01-02 15:04"
	}
	v, err := time.Parse(layout, s)
	require.NoError(t, err)
	return v
}

func occ(t *testing.T, start, end string, units int) schedule.Occupancy {
	t.Helper()
	return schedule.Occupancy{Start: at(t, start), End: at(t, end), Units: units}
}

func slot(t *testing.T, start, end string) schedule.Slot {
	t.Helper()
	return schedule.Slot{Start: at(t, start), End: at(t, end)}
}

func TestBuildEvents(t *testing.T) {
	t.Run("expands units and orders ends before starts", func(t *testing.T) {
		events := schedule.BuildEvents([]schedule.Occupancy{
			occ(t, "2021-03-01", "2021-04-01", 1),
			occ(t, "2021-02-01", "2021-03-01", 2),
		})

		want := []schedule.Event{
			{At: at(t, "2021-02-01"), Delta: 1},
			{At: at(t, "2021-02-01"), Delta: 1},
			{At: at(t, "2021-03-01"), Delta: -1},
			{At: at(t, "2021-03-01"), Delta: -1},
			{At: at(t, "2021-03-01"), Delta: 1},
			{At: at(t, "2021-04-01"), Delta: -1},
		}
		if diff := cmp.Diff(want, events); diff != "" {
			t.Errorf("events mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, schedule.BuildEvents(nil))
	})
}

func TestSweep(t *testing.T) {
	t.Run("segments only between distinct timestamps", func(t *testing.T) {
		segments := schedule.Sweep(schedule.BuildEvents([]schedule.Occupancy{
			occ(t, "2021-02-01", "2021-03-01", 1),
			occ(t, "2021-02-10", "2021-03-10", 1),
		}))

		want := []schedule.Segment{
			{Start: at(t, "2021-02-01"), End: at(t, "2021-02-10"), Occupancy: 1},
			{Start: at(t, "2021-02-10"), End: at(t, "2021-03-01"), Occupancy: 2},
			{Start: at(t, "2021-03-01"), End: at(t, "2021-03-10"), Occupancy: 1},
		}
		if diff := cmp.Diff(want, segments); diff != "" {
			t.Errorf("segments mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("back to back reservations never stack", func(t *testing.T) {
		segments := schedule.Sweep(schedule.BuildEvents([]schedule.Occupancy{
			occ(t, "2021-02-01", "2021-03-01", 1),
			occ(t, "2021-03-01", "2021-04-01", 1),
		}))
		for _, s := range segments {
			assert.LessOrEqual(t, s.Occupancy, 1)
		}
	})
}

func TestAvailable(t *testing.T) {
	year := [2]string{"2021-01-01", "2022-01-01"}

	cases := []struct {
		name     string
		capacity int
		window   [2]string
		occ      []schedule.Occupancy
		want     []schedule.Slot
	}{
		{
			name:     "no reservations leaves the whole window",
			capacity: 1,
			window:   year,
			want:     []schedule.Slot{slot(t, "2021-01-01", "2022-01-01")},
		},
		{
			name:     "single reservation splits the window",
			capacity: 1,
			window:   year,
			occ:      []schedule.Occupancy{occ(t, "2021-02-01", "2021-03-01", 1)},
			want: []schedule.Slot{
				slot(t, "2021-01-01", "2021-01-31 23:59"),
				slot(t, "2021-03-01 00:01", "2022-01-01"),
			},
		},
		{
			name:     "two reservations give three slots",
			capacity: 1,
			window:   year,
			occ: []schedule.Occupancy{
				occ(t, "2021-02-01", "2021-03-01", 1),
				occ(t, "2021-05-01", "2021-06-01", 1),
			},
			want: []schedule.Slot{
				slot(t, "2021-01-01", "2021-01-31 23:59"),
				slot(t, "2021-03-01 00:01", "2021-04-30 23:59"),
				slot(t, "2021-06-01 00:01", "2022-01-01"),
			},
		},
		{
			name:     "back to back reservations give two slots",
			capacity: 1,
			window:   year,
			occ: []schedule.Occupancy{
				occ(t, "2021-02-01", "2021-03-01", 1),
				occ(t, "2021-03-01", "2021-04-01", 1),
			},
			want: []schedule.Slot{
				slot(t, "2021-01-01", "2021-01-31 23:59"),
				slot(t, "2021-04-01 00:01", "2022-01-01"),
			},
		},
		{
			name:     "two slots with one reservation keeps the window free",
			capacity: 2,
			window:   year,
			occ:      []schedule.Occupancy{occ(t, "2021-02-01", "2021-03-01", 1)},
			want:     []schedule.Slot{slot(t, "2021-01-01", "2022-01-01")},
		},
		{
			name:     "two slots with disjoint reservations keeps the window free",
			capacity: 2,
			window:   year,
			occ: []schedule.Occupancy{
				occ(t, "2021-02-01", "2021-03-01", 1),
				occ(t, "2021-05-01", "2021-06-01", 1),
			},
			want: []schedule.Slot{slot(t, "2021-01-01", "2022-01-01")},
		},
		{
			name:     "two slots with overlapping reservations blocks the overlap",
			capacity: 2,
			window:   year,
			occ: []schedule.Occupancy{
				occ(t, "2021-02-01", "2021-03-01", 1),
				occ(t, "2021-02-10", "2021-03-10", 1),
			},
			want: []schedule.Slot{
				slot(t, "2021-01-01", "2021-02-09 23:59"),
				slot(t, "2021-03-01 00:01", "2022-01-01"),
			},
		},
		{
			name:     "minute resolution overlap",
			capacity: 2,
			window:   [2]string{"2021-02-01", "2022-02-02"},
			occ: []schedule.Occupancy{
				occ(t, "2021-02-01 11:00", "2021-02-01 20:00", 1),
				occ(t, "2021-02-01 16:00", "2021-02-01 22:00", 1),
			},
			want: []schedule.Slot{
				slot(t, "2021-02-01", "2021-02-01 15:59"),
				slot(t, "2021-02-01 20:01", "2022-02-02"),
			},
		},
		{
			name:     "window inside a busy segment has no slots",
			capacity: 1,
			window:   [2]string{"2021-05-01", "2021-09-01"},
			occ:      []schedule.Occupancy{occ(t, "2021-02-01", "2021-10-01", 1)},
			want:     []schedule.Slot{},
		},
		{
			name:     "window starting inside a busy segment",
			capacity: 1,
			window:   [2]string{"2021-05-01", "2022-01-01"},
			occ:      []schedule.Occupancy{occ(t, "2021-02-01", "2021-10-01", 1)},
			want:     []schedule.Slot{slot(t, "2021-10-01 00:01", "2022-01-01")},
		},
		{
			name:     "multi instance reservations",
			capacity: 5,
			window:   year,
			occ: []schedule.Occupancy{
				occ(t, "2021-02-12", "2021-02-20", 3),
				occ(t, "2021-02-17", "2021-02-27", 2),
				occ(t, "2021-02-22", "2021-03-05", 1),
			},
			want: []schedule.Slot{
				slot(t, "2021-01-01", "2021-02-16 23:59"),
				slot(t, "2021-02-20 00:01", "2022-01-01"),
			},
		},
		{
			name:     "busy segments outside the window are ignored",
			capacity: 1,
			window:   [2]string{"2021-05-01", "2021-06-01"},
			occ: []schedule.Occupancy{
				occ(t, "2021-02-01", "2021-03-01", 1),
				occ(t, "2021-07-01", "2021-08-01", 1),
			},
			want: []schedule.Slot{slot(t, "2021-05-01", "2021-06-01")},
		},
		{
			name:     "one minute gap between busy segments is dropped",
			capacity: 1,
			window:   year,
			occ: []schedule.Occupancy{
				occ(t, "2021-02-01", "2021-03-01", 1),
				occ(t, "2021-03-01 00:01", "2021-04-01", 1),
			},
			want: []schedule.Slot{
				slot(t, "2021-01-01", "2021-01-31 23:59"),
				slot(t, "2021-04-01 00:01", "2022-01-01"),
			},
		},
		{
			name:     "inverted window",
			capacity: 1,
			window:   [2]string{"2021-06-01", "2021-05-01"},
			want:     []schedule.Slot{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := schedule.Available(c.capacity, at(t, c.window[0]), at(t, c.window[1]), c.occ)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("slots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCoversExtension(t *testing.T) {
	end := at(t, "2021-01-02")
	newEnd := at(t, "2021-01-03")

	cases := []struct {
		name  string
		slots []schedule.Slot
		want  bool
	}{
		{name: "single slot from current end", slots: []schedule.Slot{{Start: end, End: newEnd}}, want: true},
		{name: "single slot beyond new end", slots: []schedule.Slot{{Start: end, End: newEnd.Add(time.Hour)}}, want: true},
		{name: "slot ends early", slots: []schedule.Slot{{Start: end, End: newEnd.Add(-time.Minute)}}},
		{name: "slot starts late", slots: []schedule.Slot{{Start: end.Add(time.Minute), End: newEnd}}},
		{name: "two slots", slots: []schedule.Slot{{Start: end, End: end.Add(time.Hour)}, {Start: end.Add(2 * time.Hour), End: newEnd}}},
		{name: "no slots", slots: []schedule.Slot{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, schedule.CoversExtension(c.slots, end, newEnd))
		})
	}
}

// occupancyAt counts units strictly covering p; probes never land on a minute boundary.
func occupancyAt(occ []schedule.Occupancy, p time.Time) int {
	n := 0
	for _, o := range occ {
		if o.Start.Before(p) && o.End.After(p) {
			n += o.Units
		}
	}
	return n
}

func TestAvailableRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := at(t, "2021-01-01")
	probe := 30 * time.Second

	for iter := 0; iter < 200; iter++ {
		capacity := 1 + rng.Intn(4)
		var occs []schedule.Occupancy
		n := rng.Intn(12)
		for i := 0; i < n; i++ {
			start := base.Add(time.Duration(rng.Intn(60*24*30)) * time.Minute)
			end := start.Add(time.Duration(1+rng.Intn(60*24*5)) * time.Minute)
			occs = append(occs, schedule.Occupancy{Start: start, End: end, Units: 1 + rng.Intn(2)})
		}
		windowStart := base.Add(time.Duration(rng.Intn(60*24*10)) * time.Minute)
		windowEnd := windowStart.Add(time.Duration(1+rng.Intn(60*24*30)) * time.Minute)

		segments := schedule.Sweep(schedule.BuildEvents(occs))
		busy := schedule.BusySegments(segments, capacity)
		slots := schedule.FreeSlots(windowStart, windowEnd, busy)

		for _, s := range segments {
			require.Equal(t, occupancyAt(occs, s.Start.Add(probe)), s.Occupancy, "segment occupancy")
		}

		for i, s := range slots {
			require.False(t, s.Start.After(s.End), "slot %d inverted", i)
			require.False(t, s.Start.Before(windowStart), "slot %d before window", i)
			require.False(t, s.End.After(windowEnd), "slot %d after window", i)
			if i > 0 {
				require.True(t, slots[i-1].End.Before(s.Start), "slots overlap")
			}
			if s.End.After(s.Start) {
				require.Less(t, occupancyAt(occs, s.Start.Add(probe)), capacity, "free slot is full")
			}
			for _, b := range busy {
				overlaps := s.Start.Before(b.End) && s.End.After(b.Start)
				require.False(t, overlaps, "free slot intersects busy segment")
			}
		}
	}
}
