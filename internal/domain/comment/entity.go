package comment

import (
	"strings"
	"time"
	"unicode/utf8"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxTextLength = 2000

var (
	ErrEmptyText   = errs.InvalidInput("comment text cannot be empty")
	ErrTextTooLong = errs.InvalidInput("comment text cannot exceed 2000 characters")
	ErrNotEligible = errs.InvalidInput("only users who have finished a booking of the item can comment on it")
)

type Comment struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      string
	createdAt time.Time
}

// NewComment validates text only; booking eligibility is decided by the caller.
func NewComment(itemID, authorID uuid.UUID, text string, now time.Time) (*Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(trimmed) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	return &Comment{
		id:        uuid.New(),
		itemID:    itemID,
		authorID:  authorID,
		text:      trimmed,
		createdAt: now,
	}, nil
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) ItemID() uuid.UUID    { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID  { return c.authorID }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
