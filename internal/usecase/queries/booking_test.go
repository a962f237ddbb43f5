//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra/memstore"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQueries_GetByID(t *testing.T) {
	w := newWorld(t)
	q := queries.NewBookingQueries(w.store, w.store, w.clock)
	id := w.seed(t, w.item, w.booker, now.Add(time.Hour), now.Add(2*time.Hour), booking.StatusWaiting)

	for _, actor := range []uuid.UUID{w.booker, w.owner} {
		view, err := q.GetByID(context.Background(), actor, id)
		require.NoError(t, err)
		assert.Equal(t, id, view.ID)
		assert.Equal(t, w.owner, view.OwnerID)
	}

	tests := []struct {
		name      string
		actor     uuid.UUID
		bookingID uuid.UUID
		errIs     error
		kind      errs.Kind
	}{
		{name: "stranger", actor: w.stranger, bookingID: id, errIs: queries.ErrBookingAccess, kind: errs.KindForbidden},
		{name: "unknown actor", actor: uuid.New(), bookingID: id, errIs: queries.ErrUserNotFound, kind: errs.KindNotFound},
		{name: "unknown booking", actor: w.booker, bookingID: uuid.New(), errIs: queries.ErrBookingNotFound, kind: errs.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := q.GetByID(context.Background(), tt.actor, tt.bookingID)
			assert.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, tt.kind, errs.KindOf(err))
		})
	}
}

func TestBookingQueries_List(t *testing.T) {
	w := newWorld(t)
	q := queries.NewBookingQueries(w.store, w.store, w.clock)

	past := w.seed(t, w.item, w.booker, now.Add(-72*time.Hour), now.Add(-24*time.Hour), booking.StatusApproved)
	current := w.seed(t, w.item, w.booker, now.Add(-time.Hour), now.Add(time.Hour), booking.StatusApproved)
	endsNow := w.seed(t, w.item, w.booker, now.Add(-2*time.Hour), now, booking.StatusApproved)
	startsNow := w.seed(t, w.item, w.booker, now, now.Add(time.Hour), booking.StatusRejected)
	future := w.seed(t, w.item, w.booker, now.Add(24*time.Hour), now.Add(48*time.Hour), booking.StatusWaiting)

	tests := []struct {
		state string
		want  []uuid.UUID
	}{
		{state: "ALL", want: []uuid.UUID{future, startsNow, current, endsNow, past}},
		{state: "current", want: []uuid.UUID{current}},
		{state: "PAST", want: []uuid.UUID{past}},
		{state: "Future", want: []uuid.UUID{future}},
		{state: "WAITING", want: []uuid.UUID{future}},
		{state: "rejected", want: []uuid.UUID{startsNow}},
	}
	for _, tt := range tests {
		t.Run("booker "+tt.state, func(t *testing.T) {
			views, err := q.ListByBooker(context.Background(), w.booker, tt.state, 0, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, viewIDs(views))
		})
		t.Run("owner "+tt.state, func(t *testing.T) {
			views, err := q.ListByOwner(context.Background(), w.owner, tt.state, 0, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, viewIDs(views))
		})
	}

	t.Run("results are sorted by start descending", func(t *testing.T) {
		views, err := q.ListByBooker(context.Background(), w.booker, "ALL", 0, 10)
		require.NoError(t, err)
		for i := 1; i < len(views); i++ {
			assert.False(t, views[i].Start.After(views[i-1].Start))
		}
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		views, err := q.ListByBooker(context.Background(), w.stranger, "ALL", 0, 10)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestBookingQueries_ListValidation(t *testing.T) {
	w := newWorld(t)
	q := queries.NewBookingQueries(w.store, w.store, w.clock)

	tests := []struct {
		name   string
		actor  uuid.UUID
		state  string
		offset int
		limit  int
		errIs  error
		kind   errs.Kind
	}{
		{name: "negative offset", actor: w.booker, state: "ALL", offset: -1, limit: 10, errIs: booking.ErrInvalidPage, kind: errs.KindInvalidInput},
		{name: "zero size", actor: w.booker, state: "ALL", offset: 0, limit: 0, errIs: booking.ErrInvalidPage, kind: errs.KindInvalidInput},
		{name: "page checked before actor", actor: uuid.New(), state: "ALL", offset: 0, limit: 0, errIs: booking.ErrInvalidPage, kind: errs.KindInvalidInput},
		{name: "unknown actor", actor: uuid.New(), state: "ALL", offset: 0, limit: 10, errIs: queries.ErrUserNotFound, kind: errs.KindNotFound},
		{name: "actor checked before state", actor: uuid.New(), state: "BOGUS", offset: 0, limit: 10, errIs: queries.ErrUserNotFound, kind: errs.KindNotFound},
		{name: "unknown state", actor: w.booker, state: "UNSUPPORTED_STATUS", offset: 0, limit: 10, errIs: booking.ErrUnknownBucket, kind: errs.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := q.ListByBooker(context.Background(), tt.actor, tt.state, tt.offset, tt.limit)
			assert.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, tt.kind, errs.KindOf(err))

			_, err = q.ListByOwner(context.Background(), tt.actor, tt.state, tt.offset, tt.limit)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func viewIDs(views []*queries.BookingView) []uuid.UUID {
	out := make([]uuid.UUID, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestQueries_ActorChecksUseCommandReads(t *testing.T) {
	w := newWorld(t)
	uow := &countingUoW{UnitOfWork: w.store}
	bookings := queries.NewBookingQueries(w.store, uow, w.clock)
	items := queries.NewItemQueries(w.store.Items(), uow, queries.NewAvailabilityQueries(w.store, w.store, booking.NextLatest), w.clock)
	ctx := context.Background()

	late := uuid.New()
	_, err := bookings.ListByBooker(ctx, late, "ALL", 0, 10)
	assert.ErrorIs(t, err, queries.ErrUserNotFound)

	// users added after construction are visible: nothing is cached
	w.store.PutUser(memstore.User{ID: late, Name: "Late"})
	got, err := bookings.ListByOwner(ctx, late, "ALL", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	owned, err := items.ListOwnerItems(ctx, w.owner)
	require.NoError(t, err)
	assert.Len(t, owned, 1)
	_, err = items.ListOwnerItems(ctx, uuid.New())
	assert.ErrorIs(t, err, queries.ErrUserNotFound)

	assert.Equal(t, int32(4), uow.reads.Load())
}
