package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	dombooking "shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingBookingFields = errs.InvalidInput("itemId, start and end are required")
	ErrUserNotFound         = errs.NotFound("user not found")
	ErrItemNotFound         = errs.NotFound("item not found")
	ErrBookingNotFound      = errs.NotFound("booking not found")
	// Unknown actors deciding on a booking are rejected without revealing whether it exists.
	ErrUnknownActor = errs.Forbidden("unknown user cannot decide on bookings")
)

// Recorder receives lifecycle events; *metrics.Metrics implements it.
type Recorder interface {
	IncBookingCreated()
	IncBookingDecision(approved bool)
	IncCommandFailure(operation, kind string)
	IncCommentAdded()
}

type CreateBookingInput struct {
	ItemID *uuid.UUID
	Start  *time.Time
	End    *time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	Decide(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	views    queries.BookingReadStore
	clock    clock.Clock
	recorder Recorder
}

func NewBookingCommands(uow shared.UnitOfWork, views queries.BookingReadStore, clk clock.Clock, recorder Recorder) BookingCommands {
	return &bookingCommandsImpl{uow: uow, views: views, clock: clk, recorder: recorder}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, requesterID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	if in.ItemID == nil || in.Start == nil || in.End == nil {
		return nil, recordFailure(uc.recorder, "create_booking", ErrMissingBookingFields)
	}
	now := uc.clock.Now()

	var created *dombooking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, requesterID); derr != nil {
			return notFoundAs(derr, ErrUserNotFound)
		}
		item, derr := tx.Reads().ItemByID(ctx, *in.ItemID)
		if derr != nil {
			return notFoundAs(derr, ErrItemNotFound)
		}

		spec := dombooking.ItemSpec{ID: item.ID, OwnerID: item.OwnerID, Available: item.Available}
		b, derr := dombooking.NewBooking(spec, requesterID, *in.Start, *in.End, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, recordFailure(uc.recorder, "create_booking", err)
	}

	uc.recorder.IncBookingCreated()
	slog.InfoContext(ctx, "booking created",
		"booking_id", created.ID(),
		"item_id", created.ItemID(),
		"booker_id", requesterID)

	return uc.views.FindByID(ctx, created.ID())
}

func (uc *bookingCommandsImpl) Decide(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error) {
	var decided dombooking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, derr := tx.Reads().UserExists(ctx, actorID)
		if derr != nil {
			return derr
		}
		if !ok {
			return ErrUnknownActor
		}

		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}

		status, derr := dombooking.ParseStatus(snap.Status)
		if derr != nil {
			return errs.Wrapf(derr, "booking %s", snap.ID)
		}
		current := dombooking.ReconstructBooking(
			snap.ID, snap.ItemID, snap.BookerID,
			snap.Start, snap.End,
			status, snap.CreatedAt,
		)
		next, derr := current.Decide(actorID, snap.OwnerID, approve)
		if derr != nil {
			return derr
		}

		applied, derr := tx.Bookings().UpdateStatusIfWaiting(ctx, bookingID, next)
		if derr != nil {
			return derr
		}
		if !applied {
			return dombooking.ErrAlreadyDecided
		}
		decided = next
		return nil
	})
	if err != nil {
		return nil, recordFailure(uc.recorder, "decide_booking", err)
	}

	uc.recorder.IncBookingDecision(approve)
	slog.InfoContext(ctx, "booking decided",
		"booking_id", bookingID,
		"owner_id", actorID,
		"status", decided)

	return uc.views.FindByID(ctx, bookingID)
}

func recordFailure(r Recorder, operation string, err error) error {
	r.IncCommandFailure(operation, string(errs.KindOf(err)))
	return err
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
