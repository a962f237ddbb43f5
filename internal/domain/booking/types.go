package booking

import (
	"strings"

	"shareit/internal/pkg/errs"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s != StatusWaiting
}

// ErrUnknownStatus is not an input error: it means stored data is outside the vocabulary.
var ErrUnknownStatus = errs.New("unknown booking status")

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", errs.Wrapf(ErrUnknownStatus, "status %q", raw)
	}
	return s, nil
}

// Bucket is a list filter relative to the query-time now, or a status filter.
type Bucket string

const (
	BucketAll      Bucket = "ALL"
	BucketCurrent  Bucket = "CURRENT"
	BucketPast     Bucket = "PAST"
	BucketFuture   Bucket = "FUTURE"
	BucketWaiting  Bucket = "WAITING"
	BucketRejected Bucket = "REJECTED"
)

var ErrUnknownBucket = errs.InvalidInput("unknown state")

func ParseBucket(raw string) (Bucket, error) {
	b := Bucket(strings.ToUpper(strings.TrimSpace(raw)))
	switch b {
	case BucketAll, BucketCurrent, BucketPast, BucketFuture, BucketWaiting, BucketRejected:
		return b, nil
	default:
		return "", errs.Wrapf(ErrUnknownBucket, "state %q", raw)
	}
}

func (b Bucket) String() string {
	return string(b)
}

// Role selects whose bookings a list query returns.
type Role string

const (
	RoleBooker Role = "booker"
	RoleOwner  Role = "owner"
)

// NextPolicy picks which future booking is reported as an item's next one.
type NextPolicy string

const (
	// NextLatest reports the future booking with the greatest start.
	NextLatest NextPolicy = "latest"
	// NextSoonest reports the future booking with the smallest start.
	NextSoonest NextPolicy = "soonest"
)

func ParseNextPolicy(raw string) (NextPolicy, error) {
	switch p := NextPolicy(strings.ToLower(raw)); p {
	case NextLatest, NextSoonest:
		return p, nil
	case "":
		return NextLatest, nil
	default:
		return "", errs.InvalidInput("unknown next booking policy " + raw)
	}
}
