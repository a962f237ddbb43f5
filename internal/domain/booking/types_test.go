//go:build unit

package booking_test

import (
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBucket(t *testing.T) {
	tests := []struct {
		raw     string
		want    booking.Bucket
		wantErr bool
	}{
		{raw: "ALL", want: booking.BucketAll},
		{raw: "current", want: booking.BucketCurrent},
		{raw: "Past", want: booking.BucketPast},
		{raw: " future ", want: booking.BucketFuture},
		{raw: "waiting", want: booking.BucketWaiting},
		{raw: "REJECTED", want: booking.BucketRejected},
		{raw: "UNSUPPORTED_STATUS", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "APPROVED", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := booking.ParseBucket(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, booking.ErrUnknownBucket)
				assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		offset     int
		limit      int
		wantOffset int
		wantErr    bool
	}{
		{name: "first page", offset: 0, limit: 10, wantOffset: 0},
		{name: "second page", offset: 10, limit: 10, wantOffset: 10},
		{name: "offset inside a page rounds down", offset: 7, limit: 5, wantOffset: 5},
		{name: "negative offset", offset: -1, limit: 10, wantErr: true},
		{name: "zero size", offset: 0, limit: 0, wantErr: true},
		{name: "negative size", offset: 0, limit: -3, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := booking.NewPage(tt.offset, tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, booking.ErrInvalidPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.Equal(t, tt.limit, p.Size())
		})
	}
}

func TestParseNextPolicy(t *testing.T) {
	p, err := booking.ParseNextPolicy("")
	require.NoError(t, err)
	assert.Equal(t, booking.NextLatest, p)

	p, err = booking.ParseNextPolicy("SOONEST")
	require.NoError(t, err)
	assert.Equal(t, booking.NextSoonest, p)

	_, err = booking.ParseNextPolicy("random")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"WAITING", "APPROVED", "REJECTED", "CANCELED"} {
		st, err := booking.ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, st.String())
		assert.Equal(t, raw != "WAITING", st.IsTerminal(), raw)
	}

	for _, raw := range []string{"", "waiting", "ARCHIVED"} {
		_, err := booking.ParseStatus(raw)
		assert.ErrorIs(t, err, booking.ErrUnknownStatus, raw)
		assert.Equal(t, errs.KindInternal, errs.KindOf(err), raw)
	}
}
