package commands

//go:generate mockgen -source=comment.go -destination=../../../tests/mock/commands/comment.go -package=commandsmock

import (
	"context"
	"log/slog"

	domcomment "shareit/internal/domain/comment"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommentCommands interface {
	AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	recorder Recorder
}

func NewCommentCommands(uow shared.UnitOfWork, clk clock.Clock, recorder Recorder) CommentCommands {
	return &commentCommandsImpl{uow: uow, clock: clk, recorder: recorder}
}

// AddComment accepts comments only from users with a finished booking of the item.
func (uc *commentCommandsImpl) AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (*queries.CommentView, error) {
	now := uc.clock.Now()

	var view *queries.CommentView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		author, derr := tx.Reads().UserByID(ctx, authorID)
		if derr != nil {
			return notFoundAs(derr, ErrUserNotFound)
		}
		if _, derr = tx.Reads().ItemByID(ctx, itemID); derr != nil {
			return notFoundAs(derr, ErrItemNotFound)
		}

		c, derr := domcomment.NewComment(itemID, authorID, text, now)
		if derr != nil {
			return derr
		}

		eligible, derr := tx.Reads().HasFinishedBooking(ctx, itemID, authorID, now)
		if derr != nil {
			return derr
		}
		if !eligible {
			return domcomment.ErrNotEligible
		}

		if derr = tx.Comments().Create(ctx, c); derr != nil {
			return derr
		}
		view = &queries.CommentView{
			ID:         c.ID(),
			ItemID:     c.ItemID(),
			Text:       c.Text(),
			AuthorName: author.Name,
			Created:    c.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, recordFailure(uc.recorder, "add_comment", err)
	}

	uc.recorder.IncCommentAdded()
	slog.InfoContext(ctx, "comment added", "comment_id", view.ID, "item_id", itemID)
	return view, nil
}
