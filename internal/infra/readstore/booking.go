package readstore

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewColumns = `
SELECT b.id, b.start_at, b.end_at, b.status, b.created_at,
       i.id, i.name, i.owner_id,
       u.id, u.name
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id`

const findBookingSnapshotSQL = `
SELECT b.id, b.item_id, i.owner_id, b.booker_id, b.start_at, b.end_at, b.status, b.created_at
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.id = $1`

// $1 is the actor, $2/$3 are limit/offset and $4 is now when the predicate needs it.
type bucketPredicate struct {
	sql     string
	usesNow bool
}

var rolePredicates = map[booking.Role]string{
	booking.RoleBooker: "b.booker_id = $1",
	booking.RoleOwner:  "i.owner_id = $1",
}

var bucketPredicates = map[booking.Bucket]bucketPredicate{
	booking.BucketAll:      {sql: "TRUE"},
	booking.BucketCurrent:  {sql: "b.start_at < $4 AND b.end_at > $4", usesNow: true},
	booking.BucketPast:     {sql: "b.end_at < $4", usesNow: true},
	booking.BucketFuture:   {sql: "b.start_at > $4", usesNow: true},
	booking.BucketWaiting:  {sql: "b.status = 'WAITING'"},
	booking.BucketRejected: {sql: "b.status = 'REJECTED'"},
}

var errUnknownListFilter = errs.New("unknown booking list filter")

func listBookingsSQL(role booking.Role, bucket booking.Bucket) (string, bool, error) {
	who, ok := rolePredicates[role]
	if !ok {
		return "", false, errs.Wrapf(errUnknownListFilter, "role %q", role)
	}
	pred, ok := bucketPredicates[bucket]
	if !ok {
		return "", false, errs.Wrapf(errUnknownListFilter, "bucket %q", bucket)
	}
	q := bookingViewColumns + `
WHERE ` + who + ` AND (` + pred.sql + `)
ORDER BY b.start_at DESC, b.id
LIMIT $2 OFFSET $3`
	return q, pred.usesNow, nil
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewColumns+`
WHERE b.id = $1`, pgconv.UUIDToPgtype(id))

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return view, nil
}

func (r *BookingReadStore) List(ctx context.Context, p queries.BookingListParams) ([]*queries.BookingView, error) {
	sql, usesNow, err := listBookingsSQL(p.Role, p.Bucket)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	args := []any{pgconv.UUIDToPgtype(p.ActorID), p.Page.Size(), p.Page.Offset()}
	if usesNow {
		args = append(args, pgconv.TimeToPgtype(p.Now))
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

func (r *BookingReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		bookingID, itemID, ownerID, bookerID pgtype.UUID
		start, end, createdAt                pgtype.Timestamptz
		status                               string
	)
	err := r.db.QueryRow(ctx, findBookingSnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&bookingID, &itemID, &ownerID, &bookerID, &start, &end, &status, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return &shared.BookingSnapshot{
		ID:        pgconv.UUIDFromPgtype(bookingID),
		ItemID:    pgconv.UUIDFromPgtype(itemID),
		OwnerID:   pgconv.UUIDFromPgtype(ownerID),
		BookerID:  pgconv.UUIDFromPgtype(bookerID),
		Start:     pgconv.TimeFromPgtype(start),
		End:       pgconv.TimeFromPgtype(end),
		Status:    status,
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
	}, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		id, itemID, ownerID, bookerID pgtype.UUID
		start, end, createdAt         pgtype.Timestamptz
		status, itemName, bookerName  string
	)
	if err := row.Scan(&id, &start, &end, &status, &createdAt, &itemID, &itemName, &ownerID, &bookerID, &bookerName); err != nil {
		return nil, err
	}
	return &queries.BookingView{
		ID:        pgconv.UUIDFromPgtype(id),
		Start:     pgconv.TimeFromPgtype(start),
		End:       pgconv.TimeFromPgtype(end),
		Status:    status,
		Item:      queries.ItemSummary{ID: pgconv.UUIDFromPgtype(itemID), Name: itemName},
		Booker:    queries.UserSummary{ID: pgconv.UUIDFromPgtype(bookerID), Name: bookerName},
		OwnerID:   pgconv.UUIDFromPgtype(ownerID),
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
	}, nil
}
