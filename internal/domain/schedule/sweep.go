package schedule

import (
	"slices"
	"time"
)

// Occupancy is one reservation's claim on a flavor: Units instances over [Start, End].
type Occupancy struct {
	Start time.Time
	End   time.Time
	Units int
}

// Event is a unit change in occupancy at a point in time.
type Event struct {
	At    time.Time
	Delta int
}

// Segment is a maximal interval between two consecutive distinct event times.
type Segment struct {
	Start     time.Time
	End       time.Time
	Occupancy int
}

// BuildEvents expands every occupancy into Units start events and Units end events,
// ordered by time with ends before starts at equal times so back-to-back
// reservations do not stack.
func BuildEvents(occ []Occupancy) []Event {
	events := make([]Event, 0, len(occ)*2)
	for _, o := range occ {
		for range o.Units {
			events = append(events, Event{At: o.Start, Delta: 1}, Event{At: o.End, Delta: -1})
		}
	}
	slices.SortStableFunc(events, func(a, b Event) int {
		if c := a.At.Compare(b.At); c != 0 {
			return c
		}
		return a.Delta - b.Delta
	})
	return events
}

// Sweep walks ordered events and returns the occupancy of each segment.
func Sweep(events []Event) []Segment {
	var segments []Segment
	occupancy := 0
	for i, ev := range events {
		if i > 0 && ev.At.After(events[i-1].At) {
			segments = append(segments, Segment{
				Start:     events[i-1].At,
				End:       ev.At,
				Occupancy: occupancy,
			})
		}
		occupancy += ev.Delta
	}
	return segments
}

// BusySegments keeps the segments whose occupancy reaches capacity.
func BusySegments(segments []Segment, capacity int) []Segment {
	busy := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if s.Occupancy >= capacity {
			busy = append(busy, s)
		}
	}
	return busy
}
