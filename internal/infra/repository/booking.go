package repository

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertBookingSQL = `
INSERT INTO bookings (id, item_id, booker_id, start_at, end_at, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	// The WAITING guard makes the transition a compare-and-set: a concurrent decision
	// that already landed leaves zero rows affected.
	updateBookingStatusIfWaitingSQL = `
UPDATE bookings SET status = $2
WHERE id = $1 AND status = 'WAITING'`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ItemID()),
		pgconv.UUIDToPgtype(b.BookerID()),
		pgconv.TimeToPgtype(b.Start()),
		pgconv.TimeToPgtype(b.End()),
		b.Status().String(),
		pgconv.TimeToPgtype(b.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error) {
	tag, err := r.db.Exec(ctx, updateBookingStatusIfWaitingSQL, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() == 1, nil
}
