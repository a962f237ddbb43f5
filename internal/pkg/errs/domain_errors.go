package errs

import "errors"

type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindForbidden    Kind = "FORBIDDEN"
	KindInvalidInput Kind = "INVALID_INPUT"
	KindInternal     Kind = "INTERNAL"
)

// Error kinds surfaced to callers. Every use case sentinel carries exactly one of them.
var (
	ErrNotFound     error = &kindError{kind: KindNotFound, msg: "not found"}
	ErrForbidden    error = &kindError{kind: KindForbidden, msg: "forbidden"}
	ErrInvalidInput error = &kindError{kind: KindInvalidInput, msg: "invalid input"}
)

type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

// A sentinel matches itself and the root error of its kind.
func (e *kindError) Is(target error) bool {
	switch e.kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindForbidden:
		return target == ErrForbidden
	case KindInvalidInput:
		return target == ErrInvalidInput
	}
	return false
}

func NotFound(msg string) error     { return &kindError{kind: KindNotFound, msg: msg} }
func Forbidden(msg string) error    { return &kindError{kind: KindForbidden, msg: msg} }
func InvalidInput(msg string) error { return &kindError{kind: KindInvalidInput, msg: msg} }

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindInternal
}
