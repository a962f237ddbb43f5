package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	itemColumns = `SELECT id, owner_id, name, description, available, request_id, created_at FROM items`

	findItemByIDSQL   = itemColumns + ` WHERE id = $1`
	listOwnerItemsSQL = itemColumns + ` WHERE owner_id = $1 ORDER BY created_at, id`
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	view, err := scanItem(r.db.QueryRow(ctx, findItemByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return view, nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, listOwnerItemsSQL, pgconv.UUIDToPgtype(ownerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner items", err)
	}
	defer rows.Close()

	views := []*queries.ItemView{}
	for rows.Next() {
		view, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate items", err)
	}
	return views, nil
}

func (r *ItemReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ItemSnapshot{
		ID:          view.ID,
		OwnerID:     view.OwnerID,
		Name:        view.Name,
		Description: view.Description,
		Available:   view.Available,
	}, nil
}

func scanItem(row pgx.Row) (*queries.ItemView, error) {
	var (
		id, ownerID, requestID pgtype.UUID
		name, description      string
		available              bool
		createdAt              pgtype.Timestamptz
	)
	if err := row.Scan(&id, &ownerID, &name, &description, &available, &requestID, &createdAt); err != nil {
		return nil, err
	}
	return &queries.ItemView{
		ID:          pgconv.UUIDFromPgtype(id),
		OwnerID:     pgconv.UUIDFromPgtype(ownerID),
		Name:        name,
		Description: description,
		Available:   available,
		RequestID:   pgconv.UUIDPtrFromPgtype(requestID),
		CreatedAt:   pgconv.TimeFromPgtype(createdAt),
	}, nil
}
