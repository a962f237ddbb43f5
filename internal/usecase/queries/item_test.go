//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra/memstore"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemQueries(t *testing.T) {
	w := newWorld(t)
	second := uuid.New()
	w.store.PutItem(memstore.Item{ID: second, OwnerID: w.owner, Name: "Saw", Available: true})

	last := w.seed(t, w.item, w.booker, now.Add(-48*time.Hour), now.Add(-24*time.Hour), booking.StatusApproved)
	next := w.seed(t, w.item, w.booker, now.Add(24*time.Hour), now.Add(48*time.Hour), booking.StatusWaiting)

	_, err := commands.NewCommentCommands(w.store, w.clock, metrics.New("test")).
		AddComment(context.Background(), w.booker, w.item, "Solid drill")
	require.NoError(t, err)

	availability := queries.NewAvailabilityQueries(w.store, w.store, booking.NextLatest)
	q := queries.NewItemQueries(w.store.Items(), w.store, availability, w.clock)

	t.Run("owner sees last and next", func(t *testing.T) {
		view, err := q.GetItem(context.Background(), w.owner, w.item)
		require.NoError(t, err)
		require.NotNil(t, view.LastBooking)
		require.NotNil(t, view.NextBooking)
		assert.Equal(t, last, view.LastBooking.ID)
		assert.Equal(t, next, view.NextBooking.ID)
		require.Len(t, view.Comments, 1)
		assert.Equal(t, "Solid drill", view.Comments[0].Text)
		assert.Equal(t, "Booker", view.Comments[0].AuthorName)
	})

	t.Run("others see comments only", func(t *testing.T) {
		view, err := q.GetItem(context.Background(), w.booker, w.item)
		require.NoError(t, err)
		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
		assert.Len(t, view.Comments, 1)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := q.GetItem(context.Background(), w.owner, uuid.New())
		assert.ErrorIs(t, err, queries.ErrItemNotFound)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("owner inventory", func(t *testing.T) {
		views, err := q.ListOwnerItems(context.Background(), w.owner)
		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, w.item, views[0].ID)
		assert.Equal(t, last, views[0].LastBooking.ID)
		assert.Equal(t, next, views[0].NextBooking.ID)
		assert.Len(t, views[0].Comments, 1)

		assert.Equal(t, second, views[1].ID)
		assert.Nil(t, views[1].LastBooking)
		assert.Nil(t, views[1].NextBooking)
		assert.NotNil(t, views[1].Comments)
		assert.Empty(t, views[1].Comments)
	})

	t.Run("inventory of unknown owner", func(t *testing.T) {
		_, err := q.ListOwnerItems(context.Background(), uuid.New())
		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
