package reservation

import (
	"time"

	"flavor-reservation/internal/domain/flavor"
)

// CheckTerms applies the flavor-level admission rules in their fixed order.
// granted reports whether the requesting project may use the flavor.
func CheckTerms(f *flavor.Flavor, w Window, granted bool) error {
	if !f.Active() {
		return reject(ReasonFlavorInactive, "Flavor is not available")
	}
	if !granted {
		return reject(ReasonFlavorInaccessible, "Flavor is not accessible")
	}
	if w.TotalHours() > f.MaxLengthHours() {
		return reject(ReasonTooLong, "Reservation is too long, max allowed is %d hours", f.MaxLengthHours())
	}
	if start := f.Start(); start != nil && w.Start().Before(*start) {
		return reject(ReasonBeforeFlavorStart, "Reservation start time before flavor start time of %s", start.Format(DisplayLayout))
	}
	if end := f.End(); end != nil && w.End().After(*end) {
		return reject(ReasonAfterFlavorEnd, "Reservation end time after flavor end time of %s", end.Format(DisplayLayout))
	}
	if !w.Start().Before(w.End()) {
		return reject(ReasonInvertedWindow, "Reservation start time of %s after reservation end time of %s",
			w.Start().Format(DisplayLayout), w.End().Format(DisplayLayout))
	}
	return nil
}

// CheckCapacity admits requested instances when the instances already committed
// to overlapping reservations leave room for them.
func CheckCapacity(f *flavor.Flavor, committed, requested int) error {
	if committed > f.Slots()-requested {
		return RejectNoCapacity()
	}
	return nil
}

// CheckExtension applies the rules that do not depend on other reservations.
func CheckExtension(r *Reservation, f *flavor.Flavor, newEnd, now time.Time) error {
	if !r.HasLease() {
		return reject(ReasonNoLease, "No lease")
	}
	if r.Status() != StatusActive {
		return reject(ReasonNotActive, "Reservation is not active")
	}
	if !newEnd.After(r.End()) {
		return reject(ReasonEndNotAfter, "New end time must be after current end time")
	}
	if CeilHours(newEnd.Sub(now)) > f.MaxLengthHours() {
		return reject(ReasonTooLong, "Reservation is too long, max allowed is %d hours", f.MaxLengthHours())
	}
	return nil
}
