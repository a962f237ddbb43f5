//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
	kind   errs.Kind
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.True(t, actual.Start().Before(actual.End()))
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("preconditions", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "item unavailable",
				mutate: func(b *builder.BookingBuilder) { b.WithAvailable(false) },
				errIs:  booking.ErrItemUnavailable,
				kind:   errs.KindInvalidInput,
			},
			{
				name: "owner books own item",
				mutate: func(b *builder.BookingBuilder) {
					b.WithBookerID(b.OwnerID)
				},
				errIs: booking.ErrOwnItem,
				kind:  errs.KindForbidden,
			},
			{
				name: "start equals end",
				mutate: func(b *builder.BookingBuilder) {
					b.WithRange(b.Start, b.Start)
				},
				errIs: booking.ErrInvalidRange,
				kind:  errs.KindInvalidInput,
			},
			{
				name: "inverted range",
				mutate: func(b *builder.BookingBuilder) {
					b.WithRange(b.End, b.Start)
				},
				errIs: booking.ErrInvalidRange,
				kind:  errs.KindInvalidInput,
			},
			{
				name: "start in the past",
				mutate: func(b *builder.BookingBuilder) {
					b.WithRange(b.Now.Add(-time.Second), b.Now.Add(time.Hour))
				},
				errIs: booking.ErrStartInPast,
				kind:  errs.KindInvalidInput,
			},
			{
				name: "start exactly now",
				mutate: func(b *builder.BookingBuilder) {
					b.WithRange(b.Now, b.Now.Add(time.Hour))
				},
			},
		})
	})

	t.Run("unavailable is reported before self booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithAvailable(false)
		b.WithBookerID(b.OwnerID)

		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, booking.ErrItemUnavailable)
	})

	t.Run("self booking is reported before bad range", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.WithBookerID(b.OwnerID).WithRange(b.End, b.Start)

		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, booking.ErrOwnItem)
	})
}

func TestBooking_Decide(t *testing.T) {
	b := builder.NewBookingBuilder()
	waiting := b.BuildReconstructed()

	t.Run("owner approves", func(t *testing.T) {
		status, err := waiting.Decide(b.OwnerID, b.OwnerID, true)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, status)
		assert.Equal(t, booking.StatusWaiting, waiting.Status())
	})

	t.Run("owner rejects", func(t *testing.T) {
		status, err := waiting.Decide(b.OwnerID, b.OwnerID, false)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, status)
	})

	t.Run("non owner is forbidden", func(t *testing.T) {
		_, err := waiting.Decide(b.BookerID, b.OwnerID, true)
		assert.ErrorIs(t, err, booking.ErrNotItemOwner)
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
	})

	for _, st := range []booking.Status{booking.StatusApproved, booking.StatusRejected, booking.StatusCanceled} {
		t.Run("already "+st.String(), func(t *testing.T) {
			decided := waiting.WithStatus(st)
			_, err := decided.Decide(b.OwnerID, b.OwnerID, true)
			assert.ErrorIs(t, err, booking.ErrAlreadyDecided)
			assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
		})
	}
}

func TestBooking_MatchesBucket(t *testing.T) {
	now := builder.DefaultNow
	past := builder.NewBookingBuilder().AsPast().WithStatus(booking.StatusApproved).BuildReconstructed()
	current := builder.NewBookingBuilder().AsCurrent().WithStatus(booking.StatusRejected).BuildReconstructed()
	future := builder.NewBookingBuilder().BuildReconstructed()
	endsNow := builder.NewBookingBuilder().WithRange(now.Add(-time.Hour), now).BuildReconstructed()

	tests := []struct {
		bucket  booking.Bucket
		matches map[*booking.Booking]bool
	}{
		{booking.BucketAll, map[*booking.Booking]bool{past: true, current: true, future: true, endsNow: true}},
		{booking.BucketCurrent, map[*booking.Booking]bool{past: false, current: true, future: false, endsNow: false}},
		{booking.BucketPast, map[*booking.Booking]bool{past: true, current: false, future: false, endsNow: false}},
		{booking.BucketFuture, map[*booking.Booking]bool{past: false, current: false, future: true, endsNow: false}},
		{booking.BucketWaiting, map[*booking.Booking]bool{past: false, current: false, future: true, endsNow: true}},
		{booking.BucketRejected, map[*booking.Booking]bool{past: false, current: true, future: false, endsNow: false}},
	}
	for _, tt := range tests {
		t.Run(tt.bucket.String(), func(t *testing.T) {
			for b, want := range tt.matches {
				assert.Equal(t, want, b.MatchesBucket(tt.bucket, now), "start=%s end=%s", b.Start(), b.End())
			}
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			c.mutate(b)
			actual, err := b.BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			assert.ErrorIs(t, err, c.errIs)
			assert.Equal(t, c.kind, errs.KindOf(err))
			assert.Nil(t, actual)
		})
	}
}
