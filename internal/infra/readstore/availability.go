package readstore

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const lastAndNextSQL = `
(SELECT DISTINCT ON (b.item_id) 'last' AS slot, b.item_id, b.id, b.booker_id, b.start_at, b.end_at
 FROM bookings b
 WHERE b.item_id = ANY($1::uuid[]) AND b.end_at < $2
 ORDER BY b.item_id, b.start_at DESC, b.id)
UNION ALL
(SELECT DISTINCT ON (b.item_id) 'next' AS slot, b.item_id, b.id, b.booker_id, b.start_at, b.end_at
 FROM bookings b
 WHERE b.item_id = ANY($1::uuid[]) AND b.start_at > $2
 ORDER BY b.item_id, b.start_at %s, b.id)`

const hasFinishedBookingSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE item_id = $1 AND booker_id = $2 AND end_at < $3
)`

var nextBookingOrder = map[booking.NextPolicy]string{
	booking.NextLatest:  "DESC",
	booking.NextSoonest: "ASC",
}

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (r *AvailabilityReadStore) LastAndNext(ctx context.Context, itemIDs []uuid.UUID, now time.Time, policy booking.NextPolicy) (map[uuid.UUID]queries.ItemBookings, error) {
	result := make(map[uuid.UUID]queries.ItemBookings)
	if len(itemIDs) == 0 {
		return result, nil
	}

	order, ok := nextBookingOrder[policy]
	if !ok {
		order = nextBookingOrder[booking.NextLatest]
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(lastAndNextSQL, order), pgconv.UUIDsToPgtype(itemIDs), pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query last and next bookings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slot                 string
			itemID, id, bookerID pgtype.UUID
			start, end           pgtype.Timestamptz
		)
		if err := rows.Scan(&slot, &itemID, &id, &bookerID, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan last and next booking", err)
		}

		key := pgconv.UUIDFromPgtype(itemID)
		view := &queries.BookingShortView{
			ID:       pgconv.UUIDFromPgtype(id),
			BookerID: pgconv.UUIDFromPgtype(bookerID),
			Start:    pgconv.TimeFromPgtype(start),
			End:      pgconv.TimeFromPgtype(end),
		}
		entry := result[key]
		if slot == "last" {
			entry.Last = view
		} else {
			entry.Next = view
		}
		result[key] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate last and next bookings", err)
	}
	return result, nil
}

func (r *AvailabilityReadStore) HasFinishedBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasFinishedBookingSQL,
		pgconv.UUIDToPgtype(itemID),
		pgconv.UUIDToPgtype(bookerID),
		pgconv.TimeToPgtype(now),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}
