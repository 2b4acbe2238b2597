package polish

import (
	"errors"
	"fmt"
)

// Kind tells apart the two ways a timestamp can be rejected.
type Kind uint8

const (
	// KindOutOfRange is reported by a converter whose input lies outside its unit's range.
	KindOutOfRange Kind = iota + 1

	// KindMalformed is reported when an input string cannot be parsed as a timestamp.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindOutOfRange:
		return "out of range"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// ErrInvalid matches every *Error via errors.Is. Callers that only care
// whether a conversion failed should compare against it.
var ErrInvalid = errors.New("invalid timestamp")

// Error is the single failure type of the package. It carries
// no field or bound information.
type Error struct {
	kind Kind
	orig error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.kind {
	case KindMalformed:
		if e.orig != nil {
			return fmt.Sprintf("timestamp is malformed: %v", e.orig)
		}
		return "timestamp is malformed"
	default:
		return "value out of range"
	}
}

// Unwrap returns the parse error behind a malformed input, if any.
func (e *Error) Unwrap() error { return e.orig }

// Is reports ErrInvalid as a match so errors.Is works without a type assertion.
func (e *Error) Is(target error) bool { return target == ErrInvalid }

// Kind returns the variant of e.
func (e *Error) Kind() Kind { return e.kind }

// Malformed wraps a parse failure.
func Malformed(err error) error {
	return &Error{kind: KindMalformed, orig: err}
}

func outOfRange() error {
	return &Error{kind: KindOutOfRange}
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return 0
}
