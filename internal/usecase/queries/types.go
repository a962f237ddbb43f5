package queries

import (
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
)

type ItemSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookingView is a booking with its item and booker embedded
type BookingView struct {
	ID        uuid.UUID   `json:"id"`
	Start     time.Time   `json:"start"`
	End       time.Time   `json:"end"`
	Status    string      `json:"status"`
	Item      ItemSummary `json:"item"`
	Booker    UserSummary `json:"booker"`
	OwnerID   uuid.UUID   `json:"-"`
	CreatedAt time.Time   `json:"-"`
}

// BookingShortView is the per-item last/next booking
type BookingShortView struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type ItemBookings struct {
	Last *BookingShortView
	Next *BookingShortView
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"item_id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ItemWithBookingsView struct {
	ItemView
	LastBooking *BookingShortView `json:"last_booking"`
	NextBooking *BookingShortView `json:"next_booking"`
	Comments    []*CommentView    `json:"comments"`
}

// BookingListParams selects one of the six predicates per role.
type BookingListParams struct {
	Role    booking.Role
	ActorID uuid.UUID
	Bucket  booking.Bucket
	Now     time.Time
	Page    booking.Page
}
