package response

import (
	"time"

	"shareit/internal/usecase/queries"
)

type ItemRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     string    `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID.String(),
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Item:   ItemRef{ID: v.Item.ID.String(), Name: v.Item.Name},
		Booker: UserRef{ID: v.Booker.ID.String(), Name: v.Booker.Name},
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}

type ShortBookingResponse struct {
	ID       string    `json:"id"`
	BookerID string    `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func FromShortView(v *queries.BookingShortView) *ShortBookingResponse {
	if v == nil {
		return nil
	}
	return &ShortBookingResponse{
		ID:       v.ID.String(),
		BookerID: v.BookerID.String(),
		Start:    v.Start,
		End:      v.End,
	}
}
