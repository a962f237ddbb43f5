//go:build unit

package commands_test

import (
	"shareit/internal/domain/booking"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

func listAll(actor uuid.UUID) queries.BookingListParams {
	page, _ := booking.NewPage(0, 100)
	return queries.BookingListParams{
		Role:    booking.RoleBooker,
		ActorID: actor,
		Bucket:  booking.BucketAll,
		Now:     now,
		Page:    page,
	}
}
