package bytetext

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/bytetext/internal/utf8util"
	"github.com/ghettovoice/bytetext/internal/util"
)

// ByteText holds either UTF-8 text or raw bytes of unknown encoding.
//
// A text value is valid UTF-8 by construction. A bytes value carries no
// guarantee, although its content may happen to be valid UTF-8.
// ByteText owns its bytes: [FromBytes] takes over the slice, and the caller
// must not modify it afterwards.
//
// The zero value is the empty text and is equal to [Empty].
type ByteText struct {
	bin bool
	str string
	raw []byte
}

// Empty returns the empty text.
func Empty() ByteText { return ByteText{} }

// FromText returns a text value holding s.
// Go strings may hold ill-formed UTF-8: such s is copied into a bytes value instead,
// so a text value is always valid UTF-8.
func FromText(s string) ByteText {
	if !utf8.ValidString(s) {
		return FromBytes([]byte(s))
	}
	return ByteText{str: s}
}

// FromBytes returns a bytes value holding b without validating it.
// The returned value takes ownership of b.
func FromBytes(b []byte) ByteText { return ByteText{bin: true, raw: b} }

// Collect accumulates runes from seq into a text value.
// Runes that are not valid Unicode code points are written as U+FFFD.
func Collect(seq iter.Seq[rune]) ByteText {
	var sb strings.Builder
	for r := range seq {
		sb.WriteRune(r)
	}
	return FromText(sb.String())
}

// CollectBytes accumulates bytes from seq into a bytes value.
func CollectBytes(seq iter.Seq[byte]) ByteText {
	return FromBytes(slices.Collect(seq))
}

// View returns a read-only view sharing memory with t.
func (t ByteText) View() ByteTextView { return ByteTextView(t) }

// IsText reports whether t is known to hold UTF-8 text.
func (t ByteText) IsText() bool { return !t.bin }

// IsEmpty reports whether t has zero length.
func (t ByteText) IsEmpty() bool { return t.View().IsEmpty() }

// Len returns the length in bytes, not in characters.
func (t ByteText) Len() int { return t.View().Len() }

// RawBytes returns the underlying bytes regardless of the tag.
// The result shares memory with t and must not be modified.
func (t ByteText) RawBytes() []byte { return t.View().RawBytes() }

// AsText returns the text if t holds valid UTF-8.
// Bytes are validated on every call; nothing is allocated.
func (t ByteText) AsText() (string, bool) { return t.View().AsText() }

// MapAsText returns the text of a text value, or the result of fn applied to the bytes otherwise.
// fn must not retain or modify the slice.
func (t ByteText) MapAsText(fn func(b []byte) string) string { return t.View().MapAsText(fn) }

// AsTextLossy returns the text with every ill-formed UTF-8 sequence replaced by U+FFFD.
// Each maximal ill-formed subsequence becomes a single U+FFFD.
func (t ByteText) AsTextLossy() string { return t.View().AsTextLossy() }

// IntoText converts t into text without copying.
// If t holds ill-formed UTF-8, it returns an error matching [ErrInvalidUTF8]
// that can be unwrapped to [*InvalidUTF8Error] holding t.
func (t ByteText) IntoText() (string, error) {
	if !t.bin {
		return t.str, nil
	}
	if n := utf8util.ValidUpTo(t.raw); n < len(t.raw) {
		return "", errtrace.Wrap(&InvalidUTF8Error{Text: t, ValidUpTo: n})
	}
	return util.BytesToString(t.raw), nil
}

// MapIntoText converts t into text.
// A text value is returned unchanged and fn is not called;
// for a bytes value fn is called once and its result returned as is.
func (t ByteText) MapIntoText(fn func(b []byte) string) string {
	if !t.bin {
		return t.str
	}
	return fn(t.raw)
}

// TryMapIntoText is like [ByteText.MapIntoText], for a decode function that can fail.
// The error of fn is returned verbatim.
func (t ByteText) TryMapIntoText(fn func(b []byte) (string, error)) (string, error) {
	if !t.bin {
		return t.str, nil
	}
	return fn(t.raw) //errtrace:skip
}

// DecodeWith converts t into text using dec for bytes values.
func (t ByteText) DecodeWith(dec Decoder) (string, error) {
	return t.TryMapIntoText(dec.Decode) //errtrace:skip
}

// IntoTextLossy converts t into text replacing ill-formed UTF-8 sequences with U+FFFD.
// Valid bytes are not copied.
func (t ByteText) IntoTextLossy() string { return t.MapIntoText(lossy) }

// IntoBytes returns the underlying bytes regardless of the tag.
// Bytes values are returned without copying; text values are copied,
// so the result can always be modified by the caller.
func (t ByteText) IntoBytes() []byte {
	if t.bin {
		return t.raw
	}
	return []byte(t.str)
}

// Clone returns a deep copy of t.
func (t ByteText) Clone() ByteText {
	if t.bin {
		t.raw = slices.Clone(t.raw)
	}
	return t
}

// Equal reports whether t holds the same bytes as val, regardless of the tag.
// val can be [ByteText], [ByteTextView], pointers to them, string or []byte.
func (t ByteText) Equal(val any) bool { return t.View().Equal(val) }

// Compare compares the raw bytes of two values lexicographically.
func (t ByteText) Compare(other ByteText) int { return t.View().Compare(other.View()) }

// String returns the lossy text of t.
func (t ByteText) String() string { return t.AsTextLossy() }

// LogValue implements [slog.LogValuer].
func (t ByteText) LogValue() slog.Value { return t.View().LogValue() }
