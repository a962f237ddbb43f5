package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side view types.

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
}

type BookingSnapshot struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	OwnerID   uuid.UUID
	BookerID  uuid.UUID
	Start     time.Time
	End       time.Time
	Status    string
	CreatedAt time.Time
}
