package schedule

import "time"

// Nudge separates a free slot from the busy segment next to it.
const Nudge = time.Minute

type Slot struct {
	Start time.Time
	End   time.Time
}

// FreeSlots subtracts busy segments from [windowStart, windowEnd].
// Slots bordering a busy segment are pulled one Nudge away from it; a slot that
// begins at windowStart keeps it exactly. Inverted slots are dropped.
func FreeSlots(windowStart, windowEnd time.Time, busy []Segment) []Slot {
	slots := []Slot{}
	freeFrom := windowStart
	for _, b := range busy {
		if b.End.Before(windowStart) || b.Start.After(windowEnd) {
			continue
		}
		if !freeFrom.Before(b.Start) && !freeFrom.After(b.End) {
			freeFrom = b.End
			continue
		}
		if freeFrom.Before(b.Start) {
			slots = appendSlot(slots, windowStart, freeFrom, b.Start.Add(-Nudge))
			freeFrom = b.End
		}
	}
	if freeFrom.Before(windowEnd) {
		slots = appendSlot(slots, windowStart, freeFrom, windowEnd)
	}
	return slots
}

func appendSlot(slots []Slot, windowStart, from, to time.Time) []Slot {
	start := from
	if !from.Equal(windowStart) {
		start = from.Add(Nudge)
	}
	if start.After(to) {
		return slots
	}
	return append(slots, Slot{Start: start, End: to})
}

// Available runs the whole pipeline for a flavor with the given capacity over an
// already clamped window.
func Available(capacity int, windowStart, windowEnd time.Time, occ []Occupancy) []Slot {
	if windowStart.After(windowEnd) {
		return []Slot{}
	}
	busy := BusySegments(Sweep(BuildEvents(occ)), capacity)
	return FreeSlots(windowStart, windowEnd, busy)
}

// CoversExtension reports whether slots contain one uninterrupted slot running
// from currentEnd through newEnd.
func CoversExtension(slots []Slot, currentEnd, newEnd time.Time) bool {
	if len(slots) != 1 {
		return false
	}
	s := slots[0]
	return s.Start.Equal(currentEnd) && !s.End.Before(newEnd)
}
