//go:build unit

package queries_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra/memstore"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// countingUoW records how often queries reach for the command reads.
type countingUoW struct {
	shared.UnitOfWork
	reads atomic.Int32
}

func (u *countingUoW) CommandReads() shared.CommandReads {
	u.reads.Add(1)
	return u.UnitOfWork.CommandReads()
}

type world struct {
	store    *memstore.Store
	clock    *clock.FixedClock
	owner    uuid.UUID
	booker   uuid.UUID
	stranger uuid.UUID
	item     uuid.UUID
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		store:    memstore.New(),
		clock:    clock.NewFixedClock(now),
		owner:    uuid.New(),
		booker:   uuid.New(),
		stranger: uuid.New(),
		item:     uuid.New(),
	}
	w.store.PutUser(memstore.User{ID: w.owner, Name: "Owner"})
	w.store.PutUser(memstore.User{ID: w.booker, Name: "Booker"})
	w.store.PutUser(memstore.User{ID: w.stranger, Name: "Stranger"})
	w.store.PutItem(memstore.Item{ID: w.item, OwnerID: w.owner, Name: "Drill", Available: true, CreatedAt: now})
	return w
}

// seed inserts a booking directly, bypassing the not-in-the-past rule.
func (w *world) seed(t *testing.T, itemID, bookerID uuid.UUID, start, end time.Time, status booking.Status) uuid.UUID {
	t.Helper()
	b := booking.ReconstructBooking(uuid.New(), itemID, bookerID, start, end, status, now)
	err := w.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	})
	require.NoError(t, err)
	return b.ID()
}
