package queries

//go:generate mockgen -source=item.go -destination=../../../tests/mock/queries/item.go -package=queriesmock

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.NotFound("item not found")

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	// ListByOwner returns items in creation order.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
}

type ItemQueries interface {
	GetItem(ctx context.Context, actorID, itemID uuid.UUID) (*ItemWithBookingsView, error)
	ListOwnerItems(ctx context.Context, ownerID uuid.UUID) ([]*ItemWithBookingsView, error)
}

type itemQueriesImpl struct {
	items        ItemReadStore
	uow          shared.UnitOfWork
	availability AvailabilityQueries
	clock        clock.Clock
}

func NewItemQueries(items ItemReadStore, uow shared.UnitOfWork, availability AvailabilityQueries, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{items: items, uow: uow, availability: availability, clock: clk}
}

// GetItem shows last and next bookings to the owner only; comments are public.
func (q *itemQueriesImpl) GetItem(ctx context.Context, actorID, itemID uuid.UUID) (*ItemWithBookingsView, error) {
	item, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	view := &ItemWithBookingsView{ItemView: *item}
	if item.OwnerID == actorID {
		last, next, err := q.availability.LastAndNext(ctx, item.ID, q.clock.Now())
		if err != nil {
			return nil, err
		}
		view.LastBooking, view.NextBooking = last, next
	}

	comments, err := q.availability.BatchComments(ctx, []uuid.UUID{item.ID})
	if err != nil {
		return nil, err
	}
	view.Comments = comments[item.ID]
	return view, nil
}

func (q *itemQueriesImpl) ListOwnerItems(ctx context.Context, ownerID uuid.UUID) ([]*ItemWithBookingsView, error) {
	if err := requireUser(ctx, q.uow.CommandReads(), ownerID); err != nil {
		return nil, err
	}

	items, err := q.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	bookings, err := q.availability.BatchLastAndNext(ctx, ids, q.clock.Now())
	if err != nil {
		return nil, err
	}
	comments, err := q.availability.BatchComments(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*ItemWithBookingsView, 0, len(items))
	for _, it := range items {
		b := bookings[it.ID]
		views = append(views, &ItemWithBookingsView{
			ItemView:    *it,
			LastBooking: b.Last,
			NextBooking: b.Next,
			Comments:    comments[it.ID],
		})
	}
	return views, nil
}
