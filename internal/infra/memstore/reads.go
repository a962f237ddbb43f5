package memstore

import (
	"bytes"
	"context"
	"sort"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

// The unexported helpers below assume the caller holds s.mu.

func (s *Store) userSnapshot(id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &shared.UserSnapshot{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

func (s *Store) itemSnapshot(id uuid.UUID) (*shared.ItemSnapshot, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return &shared.ItemSnapshot{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
	}, nil
}

func (s *Store) bookingSnapshot(b *bookingRecord) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:        b.id,
		ItemID:    b.itemID,
		OwnerID:   s.items[b.itemID].OwnerID,
		BookerID:  b.bookerID,
		Start:     b.start,
		End:       b.end,
		Status:    b.status.String(),
		CreatedAt: b.createdAt,
	}
}

func (s *Store) hasFinishedBooking(itemID, bookerID uuid.UUID, now time.Time) bool {
	for _, b := range s.bookings {
		if b.itemID == itemID && b.bookerID == bookerID && b.end.Before(now) {
			return true
		}
	}
	return false
}

func (s *Store) bookingView(b *bookingRecord) *queries.BookingView {
	it := s.items[b.itemID]
	return &queries.BookingView{
		ID:        b.id,
		Start:     b.start,
		End:       b.end,
		Status:    b.status.String(),
		Item:      queries.ItemSummary{ID: it.ID, Name: it.Name},
		Booker:    queries.UserSummary{ID: b.bookerID, Name: s.users[b.bookerID].Name},
		OwnerID:   it.OwnerID,
		CreatedAt: b.createdAt,
	}
}

func (r *bookingRecord) domain() *booking.Booking {
	return booking.ReconstructBooking(r.id, r.itemID, r.bookerID, r.start, r.end, r.status, r.createdAt)
}

// newerFirst orders by start descending, ties by id ascending.
func newerFirst(a, b *bookingRecord) bool {
	if !a.start.Equal(b.start) {
		return a.start.After(b.start)
	}
	return bytes.Compare(a.id[:], b.id[:]) < 0
}

// txReads serves reads inside Within, where the write lock is already held.
type txReads struct {
	tx *memTx
}

func (r txReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.tx.store.userSnapshot(id)
}

func (r txReads) UserExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.tx.store.users[id]
	return ok, nil
}

func (r txReads) ItemByID(_ context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	return r.tx.store.itemSnapshot(id)
}

func (r txReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b := r.tx.booking(id)
	if b == nil {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap := r.tx.store.bookingSnapshot(b)
	if st, ok := r.tx.statuses[id]; ok {
		snap.Status = st.String()
	}
	return snap, nil
}

func (r txReads) HasFinishedBooking(_ context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	return r.tx.store.hasFinishedBooking(itemID, bookerID, now), nil
}

type lockedReads struct {
	store *Store
}

func (r lockedReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.userSnapshot(id)
}

func (r lockedReads) UserExists(_ context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.users[id]
	return ok, nil
}

func (r lockedReads) ItemByID(_ context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.itemSnapshot(id)
}

func (r lockedReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return r.store.bookingSnapshot(b), nil
}

func (r lockedReads) HasFinishedBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	return r.store.HasFinishedBooking(ctx, itemID, bookerID, now)
}

// Read stores consumed by the query side.

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.bookingView(b), nil
}

func (s *Store) List(_ context.Context, p queries.BookingListParams) ([]*queries.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*bookingRecord
	for _, b := range s.bookings {
		switch p.Role {
		case booking.RoleBooker:
			if b.bookerID != p.ActorID {
				continue
			}
		case booking.RoleOwner:
			if s.items[b.itemID].OwnerID != p.ActorID {
				continue
			}
		default:
			continue
		}
		if b.domain().MatchesBucket(p.Bucket, p.Now) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return newerFirst(matched[i], matched[j]) })

	views := []*queries.BookingView{}
	from := p.Page.Offset()
	if from >= len(matched) {
		return views, nil
	}
	to := min(from+p.Page.Size(), len(matched))
	for _, b := range matched[from:to] {
		views = append(views, s.bookingView(b))
	}
	return views, nil
}

func (s *Store) LastAndNext(_ context.Context, itemIDs []uuid.UUID, now time.Time, policy booking.NextPolicy) (map[uuid.UUID]queries.ItemBookings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}

	last := make(map[uuid.UUID]*bookingRecord)
	next := make(map[uuid.UUID]*bookingRecord)
	for _, b := range s.bookings {
		if _, ok := wanted[b.itemID]; !ok {
			continue
		}
		if b.end.Before(now) {
			if cur := last[b.itemID]; cur == nil || newerFirst(b, cur) {
				last[b.itemID] = b
			}
		}
		if b.start.After(now) {
			cur := next[b.itemID]
			switch {
			case cur == nil:
				next[b.itemID] = b
			case policy == booking.NextSoonest && olderFirst(b, cur):
				next[b.itemID] = b
			case policy != booking.NextSoonest && newerFirst(b, cur):
				next[b.itemID] = b
			}
		}
	}

	result := make(map[uuid.UUID]queries.ItemBookings)
	for id := range wanted {
		entry := queries.ItemBookings{Last: shortView(last[id]), Next: shortView(next[id])}
		if entry.Last != nil || entry.Next != nil {
			result[id] = entry
		}
	}
	return result, nil
}

func (s *Store) HasFinishedBooking(_ context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasFinishedBooking(itemID, bookerID, now), nil
}

func (s *Store) ListByItems(_ context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*queries.CommentView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}
	result := make(map[uuid.UUID][]*queries.CommentView)
	for _, c := range s.comments {
		if _, ok := wanted[c.itemID]; !ok {
			continue
		}
		result[c.itemID] = append(result[c.itemID], &queries.CommentView{
			ID:         c.id,
			ItemID:     c.itemID,
			Text:       c.text,
			AuthorName: s.users[c.authorID].Name,
			Created:    c.createdAt,
		})
	}
	return result, nil
}

// Item read store.

func (s *Store) FindItemByID(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return itemView(it), nil
}

func (s *Store) ListItemsByOwner(_ context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var owned []*itemRecord
	for _, it := range s.items {
		if it.OwnerID == ownerID {
			owned = append(owned, it)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].seq < owned[j].seq })

	views := make([]*queries.ItemView, 0, len(owned))
	for _, it := range owned {
		views = append(views, itemView(it))
	}
	return views, nil
}

func itemView(it *itemRecord) *queries.ItemView {
	return &queries.ItemView{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		CreatedAt:   it.CreatedAt,
	}
}

func olderFirst(a, b *bookingRecord) bool {
	if !a.start.Equal(b.start) {
		return a.start.Before(b.start)
	}
	return bytes.Compare(a.id[:], b.id[:]) < 0
}

func shortView(b *bookingRecord) *queries.BookingShortView {
	if b == nil {
		return nil
	}
	return &queries.BookingShortView{ID: b.id, BookerID: b.bookerID, Start: b.start, End: b.end}
}

type itemReads struct {
	store *Store
}

// Items exposes the item read store; Store's own FindByID serves bookings.
func (s *Store) Items() queries.ItemReadStore {
	return itemReads{store: s}
}

func (r itemReads) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	return r.store.FindItemByID(ctx, id)
}

func (r itemReads) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	return r.store.ListItemsByOwner(ctx, ownerID)
}
