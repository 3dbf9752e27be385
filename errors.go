package pdf417go

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when an option is outside its
	// documented range or of an unrecognized value.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEncoding is returned when some input unit cannot be assigned to any
	// compaction mode.
	ErrEncoding = errors.New("encoding error")

	// ErrCapacity is returned when the encoded message does not fit in a
	// single symbol.
	ErrCapacity = errors.New("message too big for a PDF417 symbol")

	// ErrChecksum is returned when the error correction codewords of a
	// symbol do not match its data.
	ErrChecksum = errors.New("checksum error")
)

// EncodingError reports an input unit that could not be encoded.
type EncodingError struct {
	// Position is the 1-based position of the offending unit.
	Position int
	// Unit is the offending byte or rune.
	Unit rune
	Msg  string
}

func (e *EncodingError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("cannot encode character %q at position %d", e.Unit, e.Position)
	}
	return fmt.Sprintf("%s: character %q at position %d", e.Msg, e.Unit, e.Position)
}

// Unwrap returns ErrEncoding so that callers can use errors.Is.
func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
