package bintext

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Every error returned by the codecs wraps exactly one.
var (
	ErrType   = errors.New("bintext: wrong input type")
	ErrLength = errors.New("bintext: invalid length")
	ErrFormat = errors.New("bintext: invalid format")
)

// TypeError reports an input of a kind the operation does not accept.
type TypeError struct {
	Op  string
	Got string // %T of the rejected input
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: unsupported input type %s", e.Op, e.Got)
}

func (e *TypeError) Is(target error) bool { return target == ErrType }

// LengthError reports an input whose length violates a fixed contract.
type LengthError struct {
	Op   string
	Len  int
	Want string // human readable constraint, e.g. "16" or "even"
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: invalid length %d (want %s)", e.Op, e.Len, e.Want)
}

func (e *LengthError) Is(target error) bool { return target == ErrLength }

// FormatError reports a character outside the expected alphabet or a
// malformed group. Offset is -1 when the error is not tied to a position.
type FormatError struct {
	Op     string
	Offset int
	Char   byte
	Reason string
}

func (e *FormatError) Error() string {
	switch {
	case e.Offset >= 0 && e.Reason != "":
		return fmt.Sprintf("%s: %s: byte %q at offset %d", e.Op, e.Reason, e.Char, e.Offset)
	case e.Offset >= 0:
		return fmt.Sprintf("%s: invalid byte %q at offset %d", e.Op, e.Char, e.Offset)
	case e.Reason != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	default:
		return fmt.Sprintf("%s: invalid format", e.Op)
	}
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }
