package bytetext

import (
	"bytes"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ghettovoice/bytetext/internal/utf8util"
	"github.com/ghettovoice/bytetext/internal/util"
)

// ByteTextView is a read-only view of either UTF-8 text or raw bytes.
// It never owns the memory it refers to: a view built over a byte slice is
// invalidated by any later modification of that slice.
//
// The zero value is an empty text view.
type ByteTextView struct {
	bin bool
	str string
	raw []byte
}

// EmptyView returns an empty text view.
func EmptyView() ByteTextView { return ByteTextView{} }

// TextView returns a view of the text s.
// If s holds ill-formed UTF-8, the view is a bytes view sharing memory with s.
func TextView(s string) ByteTextView {
	if !utf8.ValidString(s) {
		return BytesView(util.StringToBytes(s))
	}
	return ByteTextView{str: s}
}

// BytesView returns a view of the bytes b. No validation is performed.
func BytesView(b []byte) ByteTextView { return ByteTextView{bin: true, raw: b} }

// IsText reports whether the view is known to hold UTF-8 text.
// A bytes view holding valid UTF-8 still reports false, use [ByteTextView.AsText] to check the content.
func (v ByteTextView) IsText() bool { return !v.bin }

// IsEmpty reports whether the view has zero length.
func (v ByteTextView) IsEmpty() bool { return v.Len() == 0 }

// Len returns the length in bytes.
func (v ByteTextView) Len() int {
	if v.bin {
		return len(v.raw)
	}
	return len(v.str)
}

// RawBytes returns the underlying bytes regardless of the tag.
// The result shares memory with the view and must not be modified.
func (v ByteTextView) RawBytes() []byte {
	if v.bin {
		return v.raw
	}
	return util.StringToBytes(v.str)
}

// AsText returns the text if the view holds valid UTF-8.
// Bytes are validated on every call; nothing is allocated.
func (v ByteTextView) AsText() (string, bool) {
	if !v.bin {
		return v.str, true
	}
	if !utf8.Valid(v.raw) {
		return "", false
	}
	return util.BytesToString(v.raw), true
}

// MapAsText returns the text of a text view, or the result of fn applied to the bytes otherwise.
func (v ByteTextView) MapAsText(fn func(b []byte) string) string {
	if !v.bin {
		return v.str
	}
	return fn(v.raw)
}

// AsTextLossy returns the text with every ill-formed UTF-8 sequence replaced by U+FFFD.
// It allocates only when a replacement is made.
func (v ByteTextView) AsTextLossy() string { return v.MapAsText(lossy) }

func lossy(b []byte) string {
	if utf8.Valid(b) {
		return util.BytesToString(b)
	}
	return utf8util.Lossy(b)
}

// ToOwned copies the view into a new [ByteText] with the same tag.
func (v ByteTextView) ToOwned() ByteText {
	if v.bin {
		return FromBytes(bytes.Clone(v.raw))
	}
	return FromText(strings.Clone(v.str))
}

// Equal reports whether the view holds the same bytes as val.
// val can be [ByteText], [ByteTextView], pointers to them, string or []byte.
func (v ByteTextView) Equal(val any) bool {
	other, ok := rawBytesOf(val)
	return ok && bytes.Equal(v.RawBytes(), other)
}

// Compare compares the raw bytes of two views lexicographically.
func (v ByteTextView) Compare(other ByteTextView) int {
	return bytes.Compare(v.RawBytes(), other.RawBytes())
}

// String returns the lossy text of the view.
func (v ByteTextView) String() string { return v.AsTextLossy() }

// LogValue implements [slog.LogValuer].
// Text is logged as is, ill-formed bytes are logged in debug form.
func (v ByteTextView) LogValue() slog.Value {
	if s, ok := v.AsText(); ok {
		return slog.StringValue(s)
	}
	return slog.StringValue(v.RenderDebug())
}
