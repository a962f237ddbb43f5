package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
)

const insertCommentSQL = `
INSERT INTO comments (id, item_id, author_id, text, created_at)
VALUES ($1, $2, $3, $4, $5)`

type CommentRepository struct {
	db db.DBTX
}

func NewCommentRepository(dbtx db.DBTX) *CommentRepository {
	return &CommentRepository{db: dbtx}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	_, err := r.db.Exec(ctx, insertCommentSQL,
		pgconv.UUIDToPgtype(c.ID()),
		pgconv.UUIDToPgtype(c.ItemID()),
		pgconv.UUIDToPgtype(c.AuthorID()),
		c.Text(),
		pgconv.TimeToPgtype(c.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}
