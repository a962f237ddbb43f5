package response

import (
	"time"

	"shareit/internal/usecase/queries"
)

type CommentResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID.String(),
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    v.Created,
	}
}

type ItemResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	RequestID   *string               `json:"requestId,omitempty"`
	LastBooking *ShortBookingResponse `json:"lastBooking"`
	NextBooking *ShortBookingResponse `json:"nextBooking"`
	Comments    []*CommentResponse    `json:"comments"`
}

func FromItemView(v *queries.ItemWithBookingsView) *ItemResponse {
	res := &ItemResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		LastBooking: FromShortView(v.LastBooking),
		NextBooking: FromShortView(v.NextBooking),
		Comments:    make([]*CommentResponse, len(v.Comments)),
	}
	if v.RequestID != nil {
		id := v.RequestID.String()
		res.RequestID = &id
	}
	for i, c := range v.Comments {
		res.Comments[i] = FromCommentView(c)
	}
	return res
}

func FromItemViews(vs []*queries.ItemWithBookingsView) []*ItemResponse {
	res := make([]*ItemResponse, len(vs))
	for i, v := range vs {
		res[i] = FromItemView(v)
	}
	return res
}
