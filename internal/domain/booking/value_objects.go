package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrInvalidRange = errs.InvalidInput("start must be before end")
	ErrStartInPast  = errs.InvalidInput("start cannot be in the past")
	ErrInvalidPage  = errs.InvalidInput("from must be >= 0 and size must be > 0")
)

type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{start: start, end: end}, nil
}

func (r TimeRange) Start() time.Time { return r.start }
func (r TimeRange) End() time.Time   { return r.end }

func (r TimeRange) ValidateNotPastAt(now time.Time) error {
	if r.start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

func (r TimeRange) IsCurrentAt(now time.Time) bool {
	return r.start.Before(now) && now.Before(r.end)
}

func (r TimeRange) IsPastAt(now time.Time) bool {
	return r.end.Before(now)
}

func (r TimeRange) IsFutureAt(now time.Time) bool {
	return r.start.After(now)
}

// Page addresses a slice of a sorted result. Offsets that are not a multiple of the
// size are rounded down to the page that contains them.
type Page struct {
	index int
	size  int
}

func NewPage(offset, limit int) (Page, error) {
	if offset < 0 || limit <= 0 {
		return Page{}, ErrInvalidPage
	}
	return Page{index: offset / limit, size: limit}, nil
}

func (p Page) Index() int  { return p.index }
func (p Page) Size() int   { return p.size }
func (p Page) Offset() int { return p.index * p.size }
