package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listCommentsByItemsSQL = `
SELECT c.id, c.item_id, c.text, u.name, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = ANY($1::uuid[])
ORDER BY c.created_at, c.id`

type CommentReadStore struct {
	db db.DBTX
}

func NewCommentReadStore(dbtx db.DBTX) *CommentReadStore {
	return &CommentReadStore{db: dbtx}
}

func (r *CommentReadStore) ListByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*queries.CommentView, error) {
	result := make(map[uuid.UUID][]*queries.CommentView)
	if len(itemIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, listCommentsByItemsSQL, pgconv.UUIDsToPgtype(itemIDs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, itemID       pgtype.UUID
			text, authorName string
			created          pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &itemID, &text, &authorName, &created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment", err)
		}
		key := pgconv.UUIDFromPgtype(itemID)
		result[key] = append(result[key], &queries.CommentView{
			ID:         pgconv.UUIDFromPgtype(id),
			ItemID:     key,
			Text:       text,
			AuthorName: authorName,
			Created:    pgconv.TimeFromPgtype(created),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comments", err)
	}
	return result, nil
}
