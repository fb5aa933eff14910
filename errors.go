package bytetext

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/bytetext/internal/errorutil"
)

// Error is a constant error type used for the sentinel errors of the package.
type Error = errorutil.Error

const (
	// ErrInvalidUTF8 is returned when a value is required to be UTF-8 text but holds ill-formed bytes.
	ErrInvalidUTF8 Error = "invalid UTF-8"
	// ErrInvalidLiteral is returned by [ParseDebug] on malformed input.
	ErrInvalidLiteral Error = "invalid debug literal"
)

// InvalidUTF8Error is returned by [ByteText.IntoText] when the value is not valid UTF-8.
// It hands the rejected value back to the caller, so nothing is lost.
type InvalidUTF8Error struct {
	// Text is the rejected value, unchanged.
	Text ByteText
	// ValidUpTo is the length of the longest valid UTF-8 prefix of Text.
	ValidUpTo int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("%s: ill-formed sequence at offset %d", ErrInvalidUTF8, e.ValidUpTo)
}

func (e *InvalidUTF8Error) Unwrap() error { return ErrInvalidUTF8 }
