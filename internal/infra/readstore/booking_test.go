//go:build unit

package readstore

import (
	"strings"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBookingsSQL(t *testing.T) {
	buckets := []booking.Bucket{
		booking.BucketAll, booking.BucketCurrent, booking.BucketPast,
		booking.BucketFuture, booking.BucketWaiting, booking.BucketRejected,
	}

	for _, role := range []booking.Role{booking.RoleBooker, booking.RoleOwner} {
		for _, bucket := range buckets {
			t.Run(string(role)+"/"+bucket.String(), func(t *testing.T) {
				sql, usesNow, err := listBookingsSQL(role, bucket)
				require.NoError(t, err)

				assert.Contains(t, sql, "ORDER BY b.start_at DESC, b.id")
				assert.Contains(t, sql, "LIMIT $2 OFFSET $3")
				assert.Equal(t, usesNow, strings.Contains(sql, "$4"))
			})
		}
	}

	t.Run("current is strictly inside the range for both roles", func(t *testing.T) {
		for _, role := range []booking.Role{booking.RoleBooker, booking.RoleOwner} {
			sql, usesNow, err := listBookingsSQL(role, booking.BucketCurrent)
			require.NoError(t, err)
			assert.True(t, usesNow)
			assert.Contains(t, sql, "b.start_at < $4 AND b.end_at > $4")
		}
	})

	t.Run("owner filters through the item", func(t *testing.T) {
		sql, _, err := listBookingsSQL(booking.RoleOwner, booking.BucketAll)
		require.NoError(t, err)
		assert.Contains(t, sql, "i.owner_id = $1")
	})

	t.Run("unknown inputs", func(t *testing.T) {
		_, _, err := listBookingsSQL("admin", booking.BucketAll)
		assert.ErrorIs(t, err, errUnknownListFilter)
		assert.Contains(t, err.Error(), `role "admin"`)
		// cockroachdb errors carry a stack for the error log
		assert.Greater(t, len(errs.ExtractStackLines(err, 0)), 1)

		_, _, err = listBookingsSQL(booking.RoleBooker, "APPROVED")
		assert.ErrorIs(t, err, errUnknownListFilter)
		assert.Contains(t, err.Error(), `bucket "APPROVED"`)
	})
}
