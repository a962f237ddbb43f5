package memstore

import (
	"context"
	"sync"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type Item struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
	CreatedAt   time.Time
}

type itemRecord struct {
	Item
	seq int
}

type bookingRecord struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	start     time.Time
	end       time.Time
	status    booking.Status
	createdAt time.Time
}

type commentRecord struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      string
	createdAt time.Time
}

// Store keeps users, items, bookings and comments in process memory.
// Writes go through Within, which holds the write lock for the whole unit of work and
// applies staged changes only when fn succeeds.
type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]User
	items    map[uuid.UUID]*itemRecord
	bookings map[uuid.UUID]*bookingRecord
	comments []*commentRecord
	itemSeq  int
}

func New() *Store {
	return &Store{
		users:    make(map[uuid.UUID]User),
		items:    make(map[uuid.UUID]*itemRecord),
		bookings: make(map[uuid.UUID]*bookingRecord),
	}
}

// PutUser registers a user; user accounts are managed outside this service.
func (s *Store) PutUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// PutItem registers or replaces an item; item CRUD is managed outside this service.
func (s *Store) PutItem(it Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.items[it.ID]; ok {
		existing.Item = it
		return
	}
	s.itemSeq++
	s.items[it.ID] = &itemRecord{Item: it, seq: s.itemSeq}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, statuses: make(map[uuid.UUID]booking.Status)}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	for _, b := range tx.bookings {
		s.bookings[b.id] = b
	}
	for id, st := range tx.statuses {
		s.bookings[id].status = st
	}
	s.comments = append(s.comments, tx.comments...)
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return lockedReads{store: s}
}

type memTx struct {
	store    *Store
	bookings []*bookingRecord
	statuses map[uuid.UUID]booking.Status
	comments []*commentRecord
}

func (t *memTx) Bookings() shared.BookingRepository { return (*txBookings)(t) }
func (t *memTx) Comments() shared.CommentRepository { return (*txComments)(t) }
func (t *memTx) Reads() shared.CommandReads         { return txReads{tx: t} }

type txBookings memTx

func (r *txBookings) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.store.items[b.ItemID()]; !ok {
		return infra.WrapRepoErr("booking references unknown item", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := r.store.users[b.BookerID()]; !ok {
		return infra.WrapRepoErr("booking references unknown user", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := r.store.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	r.bookings = append(r.bookings, &bookingRecord{
		id:        b.ID(),
		itemID:    b.ItemID(),
		bookerID:  b.BookerID(),
		start:     b.Start(),
		end:       b.End(),
		status:    b.Status(),
		createdAt: b.CreatedAt(),
	})
	return nil
}

func (r *txBookings) UpdateStatusIfWaiting(_ context.Context, id uuid.UUID, status booking.Status) (bool, error) {
	tx := (*memTx)(r)
	b := tx.booking(id)
	if b == nil {
		return false, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	current := b.status
	if st, ok := tx.statuses[id]; ok {
		current = st
	}
	if current != booking.StatusWaiting {
		return false, nil
	}
	tx.statuses[id] = status
	return true, nil
}

type txComments memTx

func (r *txComments) Create(_ context.Context, c *comment.Comment) error {
	r.comments = append(r.comments, &commentRecord{
		id:        c.ID(),
		itemID:    c.ItemID(),
		authorID:  c.AuthorID(),
		text:      c.Text(),
		createdAt: c.CreatedAt(),
	})
	return nil
}

// booking sees committed rows plus the ones staged in this unit of work.
func (t *memTx) booking(id uuid.UUID) *bookingRecord {
	if b, ok := t.store.bookings[id]; ok {
		return b
	}
	for _, b := range t.bookings {
		if b.id == id {
			return b
		}
	}
	return nil
}
