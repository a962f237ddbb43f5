//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	dombooking "shareit/internal/domain/booking"
	domcomment "shareit/internal/domain/comment"
	"shareit/internal/infra/memstore"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	store := memstore.New()
	clk := clock.NewFixedClock(now)
	bookings := commands.NewBookingCommands(store, store, clk, metrics.New("test"))
	comments := commands.NewCommentCommands(store, clk, metrics.New("test"))

	owner, booker, stranger, item := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	store.PutUser(memstore.User{ID: owner, Name: "Owner"})
	store.PutUser(memstore.User{ID: booker, Name: "Booker"})
	store.PutUser(memstore.User{ID: stranger, Name: "Stranger"})
	store.PutItem(memstore.Item{ID: item, OwnerID: owner, Name: "Drill", Available: true})

	start, end := now.Add(time.Hour), now.Add(2*time.Hour)
	created, err := bookings.Create(context.Background(), booker, commands.CreateBookingInput{ItemID: &item, Start: &start, End: &end})
	require.NoError(t, err)

	t.Run("booking not finished yet", func(t *testing.T) {
		_, err := comments.AddComment(context.Background(), booker, item, "Nice")
		assert.ErrorIs(t, err, domcomment.ErrNotEligible)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	})

	clk.Set(now.Add(3 * time.Hour))

	t.Run("after the booking ended", func(t *testing.T) {
		view, err := comments.AddComment(context.Background(), booker, item, "  Worked great  ")
		require.NoError(t, err)
		assert.Equal(t, "Worked great", view.Text)
		assert.Equal(t, "Booker", view.AuthorName)
		assert.Equal(t, item, view.ItemID)
		assert.Equal(t, now.Add(3*time.Hour), view.Created)

		listed, err := store.ListByItems(context.Background(), []uuid.UUID{item})
		require.NoError(t, err)
		require.Len(t, listed[item], 1)
		assert.Equal(t, view.ID, listed[item][0].ID)
	})

	t.Run("status does not matter", func(t *testing.T) {
		view, err := store.FindByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, dombooking.StatusWaiting.String(), view.Status)
	})

	tests := []struct {
		name   string
		author uuid.UUID
		item   uuid.UUID
		text   string
		errIs  error
		kind   errs.Kind
	}{
		{name: "stranger never booked", author: stranger, item: item, text: "Hi", errIs: domcomment.ErrNotEligible, kind: errs.KindInvalidInput},
		{name: "unknown author", author: uuid.New(), item: item, text: "Hi", errIs: commands.ErrUserNotFound, kind: errs.KindNotFound},
		{name: "unknown item", author: booker, item: uuid.New(), text: "Hi", errIs: commands.ErrItemNotFound, kind: errs.KindNotFound},
		{name: "blank text", author: booker, item: item, text: "   ", errIs: domcomment.ErrEmptyText, kind: errs.KindInvalidInput},
		{name: "text too long", author: booker, item: item, text: strings.Repeat("a", domcomment.MaxTextLength+1), errIs: domcomment.ErrTextTooLong, kind: errs.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := comments.AddComment(context.Background(), tt.author, tt.item, tt.text)
			assert.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, tt.kind, errs.KindOf(err))
		})
	}
}
