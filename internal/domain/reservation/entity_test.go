//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("starts pending with minute resolution window", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().
			WithWindow(time.Date(2021, 1, 1, 10, 0, 59, 0, time.UTC), time.Date(2021, 1, 1, 12, 30, 1, 0, time.UTC)).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPendingCreate, r.Status())
		assert.Equal(t, time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC), r.Start())
		assert.Equal(t, time.Date(2021, 1, 1, 12, 30, 0, 0, time.UTC), r.End())
		assert.Equal(t, 3, r.TotalHours())
		assert.False(t, r.HasLease())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithInstanceCount(0).BuildDomain()
		require.ErrorIs(t, err, reservation.ErrInvalidInstanceCount)

		_, err = builder.NewReservationBuilder().WithOwner("", "project").BuildDomain()
		require.ErrorIs(t, err, reservation.ErrInvalidOwner)
	})
}

func TestReservationTransitions(t *testing.T) {
	now := time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC)
	cf := "compute-flavor-1"

	cases := []struct {
		name  string
		from  reservation.Status
		apply func(r *reservation.Reservation) error
		want  reservation.Status
		errIs error
	}{
		{name: "allocate pending", from: reservation.StatusPendingCreate, apply: func(r *reservation.Reservation) error { return r.MarkAllocated("lease-1", &cf, now) }, want: reservation.StatusAllocated},
		{name: "allocate twice", from: reservation.StatusAllocated, apply: func(r *reservation.Reservation) error { return r.MarkAllocated("lease-1", &cf, now) }, errIs: reservation.ErrInvalidTransition},
		{name: "allocate without lease id", from: reservation.StatusPendingCreate, apply: func(r *reservation.Reservation) error { return r.MarkAllocated(" ", nil, now) }, errIs: reservation.ErrInvalidLeaseID},
		{name: "error pending", from: reservation.StatusPendingCreate, apply: func(r *reservation.Reservation) error { return r.MarkError("boom", now) }, want: reservation.StatusError},
		{name: "error active", from: reservation.StatusActive, apply: func(r *reservation.Reservation) error { return r.MarkError("boom", now) }, errIs: reservation.ErrInvalidTransition},
		{name: "activate allocated", from: reservation.StatusAllocated, apply: func(r *reservation.Reservation) error { return r.Activate(now) }, want: reservation.StatusActive},
		{name: "activate pending", from: reservation.StatusPendingCreate, apply: func(r *reservation.Reservation) error { return r.Activate(now) }, errIs: reservation.ErrInvalidTransition},
		{name: "complete active", from: reservation.StatusActive, apply: func(r *reservation.Reservation) error { return r.Complete(now) }, want: reservation.StatusComplete},
		{name: "complete allocated", from: reservation.StatusAllocated, apply: func(r *reservation.Reservation) error { return r.Complete(now) }, want: reservation.StatusComplete},
		{name: "complete error", from: reservation.StatusError, apply: func(r *reservation.Reservation) error { return r.Complete(now) }, errIs: reservation.ErrInvalidTransition},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().WithStatus(c.from).Build()
			err := c.apply(r)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, c.from, r.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, r.Status())
			assert.Equal(t, now, r.UpdatedAt())
		})
	}

	t.Run("allocation records lease and compute flavor", func(t *testing.T) {
		r := builder.NewReservationBuilder().Build()
		require.NoError(t, r.MarkAllocated("lease-1", &cf, now))
		require.True(t, r.HasLease())
		assert.Equal(t, "lease-1", *r.LeaseID())
		assert.Equal(t, cf, *r.ComputeFlavor())
	})

	t.Run("error records the reason", func(t *testing.T) {
		r := builder.NewReservationBuilder().Build()
		require.NoError(t, r.MarkError("provider down", now))
		assert.Equal(t, "provider down", *r.StatusReason())
	})
}

func TestReconstructReservation(t *testing.T) {
	_, err := reservation.ReconstructReservation(reservation.ReconstructParams{Status: "BOGUS"})
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestWindow(t *testing.T) {
	base := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("total hours rounds up", func(t *testing.T) {
		assert.Equal(t, 1, reservation.NewWindow(base, base.Add(time.Minute)).TotalHours())
		assert.Equal(t, 72, reservation.NewWindow(base, base.Add(72*time.Hour)).TotalHours())
		assert.Equal(t, 73, reservation.NewWindow(base, base.Add(72*time.Hour+time.Minute)).TotalHours())
		assert.Equal(t, 0, reservation.NewWindow(base, base.Add(-time.Hour)).TotalHours())
	})

	t.Run("touching windows overlap", func(t *testing.T) {
		a := reservation.NewWindow(base, base.Add(time.Hour))
		b := reservation.NewWindow(base.Add(time.Hour), base.Add(2*time.Hour))
		c := reservation.NewWindow(base.Add(2*time.Hour+time.Minute), base.Add(3*time.Hour))
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
		assert.False(t, a.Overlaps(c))
	})

	t.Run("statuses", func(t *testing.T) {
		assert.ElementsMatch(t, []reservation.Status{
			reservation.StatusPendingCreate, reservation.StatusAllocated, reservation.StatusActive,
		}, reservation.EffectiveStatuses())
		assert.False(t, reservation.StatusComplete.IsEffective())
		assert.False(t, reservation.StatusError.IsEffective())
	})
}
