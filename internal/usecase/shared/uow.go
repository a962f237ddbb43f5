package shared

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction, retrying transient conflicts
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads gives validation reads outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Comments() CommentRepository
	Reads() CommandReads
}

// Lookups report absence as an infra NOT_FOUND repository error.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// UpdateStatusIfWaiting applies status only when the booking is still WAITING and
	// reports whether it did.
	UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) error
}
