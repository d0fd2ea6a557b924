//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	reqdto "flavor-reservation/internal/handler/dto/request"
	"flavor-reservation/internal/pkg/clock"
	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/shared"
	"flavor-reservation/tests/common/builder"
	"flavor-reservation/tests/common/memuow"
	commandsmock "flavor-reservation/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	member = shared.Identity{UserID: "user-1", ProjectID: "project-1"}
	admin  = shared.Identity{UserID: "admin-1", ProjectID: "admin-project", Admin: true}
)

func day(d int) time.Time {
	return time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC)
}

type reservationFixture struct {
	store    *memuow.Store
	provider *commandsmock.MockLeaseProvider
	clock    *clock.MockClock
	uc       commands.ReservationCommands
}

func newReservationFixture(t *testing.T, limits config.QuotaConfig) *reservationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := memuow.New()
	provider := commandsmock.NewMockLeaseProvider(ctrl)
	clk := clock.NewMockClock(day(26))
	quota := commands.NewQuotaEnforcer(store, limits)
	return &reservationFixture{
		store:    store,
		provider: provider,
		clock:    clk,
		uc:       commands.NewReservationUseCase(store, quota, provider, shared.NoopMetrics{}, clk),
	}
}

func (fx *reservationFixture) flavor(b *builder.FlavorBuilder) *flavor.Flavor {
	f := b.Build()
	fx.store.PutFlavor(f)
	return f
}

func (fx *reservationFixture) reservation(b *builder.ReservationBuilder) *reservation.Reservation {
	r := b.Build()
	fx.store.PutReservation(r)
	return r
}

func createRequest(flavorID uuid.UUID, start, end time.Time, count int) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{FlavorID: flavorID, Start: start, End: end, InstanceCount: &count}
}

func requireRejection(t *testing.T, err error, reason reservation.Reason, message string) {
	t.Helper()
	require.ErrorIs(t, err, reservation.ErrRejected)
	rej, ok := reservation.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, reason, rej.Reason)
	assert.Equal(t, message, rej.Message)
}

func TestReservationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("admits and queues the lease", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder().WithSlots(2))

		view, err := fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(2), 2))
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPendingCreate.String(), view.Status)
		assert.Equal(t, "user-1", view.UserID)
		assert.Equal(t, "project-1", view.ProjectID)
		assert.EqualValues(t, 2, view.InstanceCount)
		assert.EqualValues(t, 24, view.TotalHours)
		assert.Nil(t, view.LeaseID)
		assert.Contains(t, fx.store.Locked, f.ID())

		stored, ok := fx.store.Reservation(view.ID)
		require.True(t, ok)
		assert.Equal(t, day(1), stored.Start())

		jobs := fx.store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, shared.LeaseJobCreate, jobs[0].Kind)
		assert.Equal(t, view.ID, jobs[0].ReservationID)
		assert.Equal(t, memuow.JobQueued, jobs[0].State)
	})

	t.Run("instance count defaults to one", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder())

		view, err := fx.uc.Create(ctx, member, reqdto.CreateReservationRequest{FlavorID: f.ID(), Start: day(1), End: day(2)})
		require.NoError(t, err)
		assert.EqualValues(t, 1, view.InstanceCount)
	})

	t.Run("identical window on a single slot flavor has no capacity", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder().WithSlots(1))
		start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
		fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithWindow(start, end).AsAllocated())

		_, err := fx.uc.Create(ctx, member, createRequest(f.ID(), start, end, 1))
		requireRejection(t, err, reservation.ReasonNoCapacity, "No capacity")
		assert.Len(t, fx.store.Reservations(), 1)
		assert.Empty(t, fx.store.Jobs())
	})

	t.Run("full multi slot flavor refuses one more instance", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder().WithSlots(5))
		fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithWindow(day(1), day(2)).WithInstanceCount(5))

		_, err := fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(2), 1))
		requireRejection(t, err, reservation.ReasonNoCapacity, "No capacity")
	})

	t.Run("finished reservations free their slots", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder().WithSlots(1))
		fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithWindow(day(1), day(2)).WithStatus(reservation.StatusComplete))
		fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithWindow(day(1), day(2)).WithStatus(reservation.StatusError))

		_, err := fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(2), 1))
		require.NoError(t, err)
	})

	t.Run("other flavors do not count", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder().WithSlots(1))
		other := fx.flavor(builder.NewFlavorBuilder().WithSlots(1))
		fx.reservation(builder.NewReservationBuilder().WithFlavorID(other.ID()).WithWindow(day(1), day(2)).AsActive())

		_, err := fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(2), 1))
		require.NoError(t, err)
	})

	t.Run("private flavor needs a grant", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder().WithPublic(false))

		_, err := fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(2), 1))
		requireRejection(t, err, reservation.ReasonFlavorInaccessible, "Flavor is not accessible")

		g, err := flavor.NewGrant(f.ID(), "project-1", day(1))
		require.NoError(t, err)
		fx.store.PutGrant(g)

		_, err = fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(2), 1))
		require.NoError(t, err)
	})

	t.Run("inactive flavor", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder().WithActive(false))

		_, err := fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(2), 1))
		requireRejection(t, err, reservation.ReasonFlavorInactive, "Flavor is not available")
	})

	t.Run("unknown flavor", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})

		_, err := fx.uc.Create(ctx, member, createRequest(uuid.New(), day(1), day(2), 1))
		require.ErrorIs(t, err, errs.ErrFlavorNotFound)
	})

	t.Run("caller without a project is invalid", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder())

		_, err := fx.uc.Create(ctx, shared.Identity{UserID: "user-1"}, createRequest(f.ID(), day(1), day(2), 1))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestReservationCreateQuota(t *testing.T) {
	ctx := context.Background()

	t.Run("reservation count", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{MaxReservations: 1})
		f := fx.flavor(builder.NewFlavorBuilder().WithSlots(10))
		fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithWindow(day(5), day(6)).AsActive())

		_, err := fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(2), 1))
		require.ErrorIs(t, err, errs.ErrQuotaExceeded)
		var quotaErr *commands.QuotaExceededError
		require.ErrorAs(t, err, &quotaErr)
		assert.Equal(t, commands.QuotaResourceReservation, quotaErr.Resource)
		assert.EqualError(t, err, "Quota exceeded for resource reservation")
	})

	t.Run("hours", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{MaxHours: 30})
		f := fx.flavor(builder.NewFlavorBuilder().WithSlots(10))
		fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithWindow(day(5), day(6)).AsActive())

		_, err := fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(1).Add(6*time.Hour), 1))
		require.NoError(t, err)

		_, err = fx.uc.Create(ctx, member, createRequest(f.ID(), day(2), day(2).Add(time.Hour), 1))
		var quotaErr *commands.QuotaExceededError
		require.ErrorAs(t, err, &quotaErr)
		assert.Equal(t, commands.QuotaResourceHours, quotaErr.Resource)
	})

	t.Run("other projects do not count", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{MaxReservations: 1})
		f := fx.flavor(builder.NewFlavorBuilder().WithSlots(10))
		fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithOwner("user-2", "project-2").AsActive())

		_, err := fx.uc.Create(ctx, member, createRequest(f.ID(), day(1), day(2), 1))
		require.NoError(t, err)
	})
}

func TestReservationExtend(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*reservationFixture, *flavor.Flavor, *reservation.Reservation) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder().WithSlots(1))
		r := fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithWindow(day(25), day(27)).WithLease("lease-a").AsActive())
		return fx, f, r
	}

	t.Run("free time after the end", func(t *testing.T) {
		fx, f, r := setup(t)
		fx.provider.EXPECT().UpdateLease(gomock.Any(), "lease-a", day(28)).Return(nil)

		view, err := fx.uc.Extend(ctx, member, r.ID(), reqdto.ExtendReservationRequest{End: day(28)})
		require.NoError(t, err)
		assert.Equal(t, day(28), view.End)

		stored, _ := fx.store.Reservation(r.ID())
		assert.Equal(t, day(28), stored.End())
		assert.Equal(t, day(25), stored.Start())
		assert.Contains(t, fx.store.Locked, f.ID())
	})

	t.Run("allocated neighbour blocks any extension", func(t *testing.T) {
		for _, newEnd := range []time.Time{day(27).Add(time.Minute), day(28), day(31)} {
			fx, f, r := setup(t)
			fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithOwner("user-2", "project-2").WithWindow(day(27), day(30)).AsAllocated())

			_, err := fx.uc.Extend(ctx, member, r.ID(), reqdto.ExtendReservationRequest{End: newEnd})
			requireRejection(t, err, reservation.ReasonNoCapacity, "No capacity")

			stored, _ := fx.store.Reservation(r.ID())
			assert.Equal(t, day(27), stored.End())
		}
	})

	t.Run("neighbour after the new end does not block", func(t *testing.T) {
		fx, f, r := setup(t)
		fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithOwner("user-2", "project-2").WithWindow(day(29), day(30)).AsAllocated())
		fx.provider.EXPECT().UpdateLease(gomock.Any(), "lease-a", day(28)).Return(nil)

		_, err := fx.uc.Extend(ctx, member, r.ID(), reqdto.ExtendReservationRequest{End: day(28)})
		require.NoError(t, err)
	})

	t.Run("new end must move forward", func(t *testing.T) {
		fx, _, r := setup(t)

		_, err := fx.uc.Extend(ctx, member, r.ID(), reqdto.ExtendReservationRequest{End: day(27)})
		requireRejection(t, err, reservation.ReasonEndNotAfter, "New end time must be after current end time")
	})

	t.Run("provider failure leaves the end unchanged", func(t *testing.T) {
		fx, _, r := setup(t)
		fx.provider.EXPECT().UpdateLease(gomock.Any(), "lease-a", day(28)).Return(errs.New("lease api returned 500"))

		_, err := fx.uc.Extend(ctx, member, r.ID(), reqdto.ExtendReservationRequest{End: day(28)})
		requireRejection(t, err, reservation.ReasonExtendFailed, "Failed to extend lease")

		stored, _ := fx.store.Reservation(r.ID())
		assert.Equal(t, day(27), stored.End())
	})

	t.Run("not active", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder())
		r := fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithWindow(day(25), day(27)).AsAllocated())

		_, err := fx.uc.Extend(ctx, member, r.ID(), reqdto.ExtendReservationRequest{End: day(28)})
		requireRejection(t, err, reservation.ReasonNotActive, "Reservation is not active")
	})

	t.Run("seconds are truncated", func(t *testing.T) {
		fx, _, r := setup(t)
		fx.provider.EXPECT().UpdateLease(gomock.Any(), "lease-a", day(28)).Return(nil)

		view, err := fx.uc.Extend(ctx, member, r.ID(), reqdto.ExtendReservationRequest{End: day(28).Add(42 * time.Second)})
		require.NoError(t, err)
		assert.Equal(t, day(28), view.End)
	})

	t.Run("other project sees not found", func(t *testing.T) {
		fx, _, r := setup(t)

		_, err := fx.uc.Extend(ctx, shared.Identity{UserID: "user-2", ProjectID: "project-2"}, r.ID(), reqdto.ExtendReservationRequest{End: day(28)})
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestReservationDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("without a lease never calls the provider", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder())
		r := fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()))
		fx.store.PutJob(shared.NewCreateLeaseJob(r.ID(), day(1)))

		require.NoError(t, fx.uc.Delete(ctx, member, r.ID()))
		_, ok := fx.store.Reservation(r.ID())
		assert.False(t, ok)
		assert.Empty(t, fx.store.Jobs())
	})

	t.Run("releases the lease first", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder())
		r := fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithLease("lease-a").AsActive())
		fx.provider.EXPECT().DeleteLease(gomock.Any(), "lease-a").Return(nil)

		require.NoError(t, fx.uc.Delete(ctx, member, r.ID()))
		_, ok := fx.store.Reservation(r.ID())
		assert.False(t, ok)
	})

	t.Run("provider failure keeps the reservation", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder())
		r := fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithLease("lease-a").AsActive())
		fx.provider.EXPECT().DeleteLease(gomock.Any(), "lease-a").Return(errs.New("connection refused"))

		err := fx.uc.Delete(ctx, member, r.ID())
		assert.True(t, errs.Is(err, errs.ErrProviderUnavailable))
		_, ok := fx.store.Reservation(r.ID())
		assert.True(t, ok)
	})

	t.Run("other project sees not found", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder())
		r := fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithOwner("user-2", "project-2"))

		err := fx.uc.Delete(ctx, member, r.ID())
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
		_, ok := fx.store.Reservation(r.ID())
		assert.True(t, ok)
	})

	t.Run("admin deletes across projects", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})
		f := fx.flavor(builder.NewFlavorBuilder())
		r := fx.reservation(builder.NewReservationBuilder().WithFlavorID(f.ID()).WithOwner("user-2", "project-2"))

		require.NoError(t, fx.uc.Delete(ctx, admin, r.ID()))
	})

	t.Run("missing", func(t *testing.T) {
		fx := newReservationFixture(t, config.QuotaConfig{})

		err := fx.uc.Delete(ctx, member, uuid.New())
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}
