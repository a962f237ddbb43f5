package request

import (
	"time"

	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
)

// Fields are pointers so a missing value reaches the use case as nil instead of a zero value.
type CreateBookingRequest struct {
	ItemID *uuid.UUID `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ItemID: r.ItemID,
		Start:  r.Start,
		End:    r.End,
	}
}
