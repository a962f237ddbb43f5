package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	// LastAndNext returns entries only for items that have at least one qualifying booking.
	LastAndNext(ctx context.Context, itemIDs []uuid.UUID, now time.Time, policy booking.NextPolicy) (map[uuid.UUID]ItemBookings, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
}

type CommentReadStore interface {
	ListByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*CommentView, error)
}

type AvailabilityQueries interface {
	LastAndNext(ctx context.Context, itemID uuid.UUID, now time.Time) (last, next *BookingShortView, err error)
	IsCommentEligible(ctx context.Context, itemID, userID uuid.UUID, now time.Time) (bool, error)
	BatchLastAndNext(ctx context.Context, itemIDs []uuid.UUID, now time.Time) (map[uuid.UUID]ItemBookings, error)
	BatchComments(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*CommentView, error)
}

type availabilityQueriesImpl struct {
	store    AvailabilityReadStore
	comments CommentReadStore
	policy   booking.NextPolicy
}

func NewAvailabilityQueries(store AvailabilityReadStore, comments CommentReadStore, policy booking.NextPolicy) AvailabilityQueries {
	if policy == "" {
		policy = booking.NextLatest
	}
	return &availabilityQueriesImpl{store: store, comments: comments, policy: policy}
}

func (q *availabilityQueriesImpl) LastAndNext(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingShortView, *BookingShortView, error) {
	byItem, err := q.store.LastAndNext(ctx, []uuid.UUID{itemID}, now, q.policy)
	if err != nil {
		return nil, nil, err
	}
	entry := byItem[itemID]
	return entry.Last, entry.Next, nil
}

// IsCommentEligible ignores status: any finished booking by the user counts.
func (q *availabilityQueriesImpl) IsCommentEligible(ctx context.Context, itemID, userID uuid.UUID, now time.Time) (bool, error) {
	return q.store.HasFinishedBooking(ctx, itemID, userID, now)
}

func (q *availabilityQueriesImpl) BatchLastAndNext(ctx context.Context, itemIDs []uuid.UUID, now time.Time) (map[uuid.UUID]ItemBookings, error) {
	ids := uniqueIDs(itemIDs)
	result := make(map[uuid.UUID]ItemBookings, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	found, err := q.store.LastAndNext(ctx, ids, now, q.policy)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = found[id]
	}
	return result, nil
}

func (q *availabilityQueriesImpl) BatchComments(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*CommentView, error) {
	ids := uniqueIDs(itemIDs)
	result := make(map[uuid.UUID][]*CommentView, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	found, err := q.comments.ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		list := found[id]
		if list == nil {
			list = []*CommentView{}
		}
		result[id] = list
	}
	return result, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
