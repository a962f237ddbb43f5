//go:build unit || e2e

package builder

import (
	"time"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var DefaultNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	ItemName  string
	OwnerID   uuid.UUID
	Available bool
	BookerID  uuid.UUID
	Booker    string
	Start     time.Time
	End       time.Time
	Status    dombooking.Status
	Now       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		ItemID:    uuid.New(),
		ItemName:  "Drill",
		OwnerID:   uuid.New(),
		Available: true,
		BookerID:  uuid.New(),
		Booker:    "Booker",
		Start:     DefaultNow.Add(24 * time.Hour),
		End:       DefaultNow.Add(48 * time.Hour),
		Status:    dombooking.StatusWaiting,
		Now:       DefaultNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) ItemSpec() dombooking.ItemSpec {
	return dombooking.ItemSpec{ID: b.ItemID, OwnerID: b.OwnerID, Available: b.Available}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.ItemSpec(), b.BookerID, b.Start, b.End, b.Now)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	return dombooking.ReconstructBooking(b.ID, b.ItemID, b.BookerID, b.Start, b.End, b.Status, b.Now)
}

func (b *BookingBuilder) BuildItemSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:        b.ItemID,
		OwnerID:   b.OwnerID,
		Name:      b.ItemName,
		Available: b.Available,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	itemID := b.ItemID
	start := b.Start
	end := b.End
	return reqdto.CreateBookingRequest{
		ItemID: &itemID,
		Start:  &start,
		End:    &end,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status.String(),
		Item: queries.ItemSummary{
			ID:   b.ItemID,
			Name: b.ItemName,
		},
		Booker: queries.UserSummary{
			ID:   b.BookerID,
			Name: b.Booker,
		},
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithItemID(id uuid.UUID) *BookingBuilder {
	b.ItemID = id
	return b
}

func (b *BookingBuilder) WithOwnerID(id uuid.UUID) *BookingBuilder {
	b.OwnerID = id
	return b
}

func (b *BookingBuilder) WithBookerID(id uuid.UUID) *BookingBuilder {
	b.BookerID = id
	return b
}

func (b *BookingBuilder) WithAvailable(available bool) *BookingBuilder {
	b.Available = available
	return b
}

func (b *BookingBuilder) WithRange(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

// AsPast places the booking entirely before Now.
func (b *BookingBuilder) AsPast() *BookingBuilder {
	b.Start = b.Now.Add(-72 * time.Hour)
	b.End = b.Now.Add(-24 * time.Hour)
	return b
}

// AsCurrent places Now strictly inside the booking.
func (b *BookingBuilder) AsCurrent() *BookingBuilder {
	b.Start = b.Now.Add(-time.Hour)
	b.End = b.Now.Add(time.Hour)
	return b
}
