package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.NotFound("user not found")
	ErrBookingNotFound = errs.NotFound("booking not found")
	ErrBookingAccess   = errs.Forbidden("only the booker or the item owner can view a booking")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List returns the page sorted by start descending, ties by id.
	List(ctx context.Context, params BookingListParams) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, actorID uuid.UUID, bucket string, offset, limit int) ([]*BookingView, error)
	ListByOwner(ctx context.Context, actorID uuid.UUID, bucket string, offset, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	uow      shared.UnitOfWork
	clock    clock.Clock
}

// User existence is checked through the unit of work's command reads, outside any transaction.
func NewBookingQueries(bookings BookingReadStore, uow shared.UnitOfWork, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, uow: uow, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingView, error) {
	if err := requireUser(ctx, q.uow.CommandReads(), actorID); err != nil {
		return nil, err
	}

	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if view.Booker.ID != actorID && view.OwnerID != actorID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, actorID uuid.UUID, bucket string, offset, limit int) ([]*BookingView, error) {
	return q.list(ctx, booking.RoleBooker, actorID, bucket, offset, limit)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, actorID uuid.UUID, bucket string, offset, limit int) ([]*BookingView, error) {
	return q.list(ctx, booking.RoleOwner, actorID, bucket, offset, limit)
}

func (q *bookingQueriesImpl) list(ctx context.Context, role booking.Role, actorID uuid.UUID, rawBucket string, offset, limit int) ([]*BookingView, error) {
	page, err := booking.NewPage(offset, limit)
	if err != nil {
		return nil, err
	}
	if err := requireUser(ctx, q.uow.CommandReads(), actorID); err != nil {
		return nil, err
	}
	bucket, err := booking.ParseBucket(rawBucket)
	if err != nil {
		return nil, err
	}

	views, err := q.bookings.List(ctx, BookingListParams{
		Role:    role,
		ActorID: actorID,
		Bucket:  bucket,
		Now:     q.clock.Now(),
		Page:    page,
	})
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*BookingView{}
	}
	return views, nil
}

func requireUser(ctx context.Context, reads shared.CommandReads, id uuid.UUID) error {
	ok, err := reads.UserExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
