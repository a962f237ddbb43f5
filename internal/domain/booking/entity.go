package booking

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrItemUnavailable = errs.InvalidInput("item is not available")
	ErrOwnItem         = errs.Forbidden("owner cannot book their own item")
	ErrAlreadyDecided  = errs.InvalidInput("booking has already been decided")
	ErrNotItemOwner    = errs.Forbidden("only the item owner can decide on a booking")
)

// ItemSpec is the slice of an item the booking rules depend on.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	timeRange TimeRange
	status    Status
	createdAt time.Time
}

// NewBooking checks availability, ownership, range and start in that order against a single now.
func NewBooking(item ItemSpec, bookerID uuid.UUID, start, end, now time.Time) (*Booking, error) {
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return nil, ErrOwnItem
	}

	tr, err := NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}
	if err := tr.ValidateNotPastAt(now); err != nil {
		return nil, err
	}

	return &Booking{
		id:        uuid.New(),
		itemID:    item.ID,
		bookerID:  bookerID,
		timeRange: tr,
		status:    StatusWaiting,
		createdAt: now,
	}, nil
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	start, end time.Time,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		timeRange: TimeRange{start: start, end: end},
		status:    status,
		createdAt: createdAt,
	}
}

// Decide returns the status the booking moves to. The booking itself is not mutated;
// the store applies the transition conditionally so concurrent deciders cannot both win.
func (b *Booking) Decide(actorID, itemOwnerID uuid.UUID, approve bool) (Status, error) {
	if actorID != itemOwnerID {
		return "", ErrNotItemOwner
	}
	if b.status.IsTerminal() {
		return "", ErrAlreadyDecided
	}
	if approve {
		return StatusApproved, nil
	}
	return StatusRejected, nil
}

// MatchesBucket reports whether the booking belongs to bucket at now.
func (b *Booking) MatchesBucket(bucket Bucket, now time.Time) bool {
	switch bucket {
	case BucketAll:
		return true
	case BucketCurrent:
		return b.timeRange.IsCurrentAt(now)
	case BucketPast:
		return b.timeRange.IsPastAt(now)
	case BucketFuture:
		return b.timeRange.IsFutureAt(now)
	case BucketWaiting:
		return b.status == StatusWaiting
	case BucketRejected:
		return b.status == StatusRejected
	default:
		return false
	}
}

func (b *Booking) WithStatus(status Status) *Booking {
	cp := *b
	cp.status = status
	return &cp
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Start() time.Time     { return b.timeRange.start }
func (b *Booking) End() time.Time       { return b.timeRange.end }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
