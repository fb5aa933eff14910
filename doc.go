// Package bytetext provides a byte sequence type whose text encoding is uncertain.
//
// # Overview
//
// Legacy binary formats often store strings without a reliable encoding marker.
// ZIP archives, for example, store file names either as explicitly flagged UTF-8
// or in whatever code page the archiver happened to use. A reader of such
// formats should not decide the encoding too early, and should not force callers
// who know their data is valid text to deal with raw bytes.
//
// The package implements two value types:
//
//   - [ByteText]: owns either UTF-8 text or raw bytes of unknown encoding.
//   - [ByteTextView]: a read-only view of text or bytes owned by someone else.
//
// A [ByteText] produces a view with [ByteText.View]; a view is copied into a new
// [ByteText] with [ByteTextView.ToOwned].
//
// # Conversions
//
// Text values are returned as is. Bytes values are validated on demand:
//
//	name := bytetext.FromBytes([]byte{99, 97, 102, 233})
//	_, ok := name.AsText()      // false: 0xE9 is not valid UTF-8
//	s := name.AsTextLossy()     // "caf\uFFFD"
//
// When the actual encoding is known, a decode function or a [Decoder] turns
// bytes into text. The charset subpackage adapts golang.org/x/text encodings:
//
//	latin2, _ := charset.Lookup("ISO-8859-2")
//	s, err := name.DecodeWith(latin2) // "café"
//
// # Comparison
//
// Values are compared by their raw bytes only, so a text value and a bytes value
// holding the same bytes are equal. See [Equal] and [Compare].
//
// # Formatting
//
// [ByteText.String] and the %s verb produce lossy text. [ByteText.RenderDebug],
// %q and %#v produce a debug representation: a quoted Go string for text, and a
// b"..." byte string literal for bytes, which [ParseDebug] reads back.
package bytetext
