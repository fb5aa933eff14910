package bytetext

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/bytetext/internal/util"
)

const hexDigits = "0123456789abcdef"

// AppendDebug appends the debug representation of the view to b.
//
// Text is quoted with [strconv.Quote]. Bytes are rendered as a byte string
// literal b"...": printable ASCII is kept, \t \r \n \\ \' \" are escaped and
// any other byte is written as \xHH.
func (v ByteTextView) AppendDebug(b []byte) []byte {
	if !v.bin {
		return strconv.AppendQuote(b, v.str)
	}

	b = append(b, 'b', '"')
	for _, c := range v.raw {
		switch c {
		case '\t':
			b = append(b, '\\', 't')
		case '\r':
			b = append(b, '\\', 'r')
		case '\n':
			b = append(b, '\\', 'n')
		case '\\', '\'', '"':
			b = append(b, '\\', c)
		default:
			if c >= 0x20 && c <= 0x7e {
				b = append(b, c)
			} else {
				b = append(b, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
			}
		}
	}
	return append(b, '"')
}

// RenderDebug returns the debug representation of the view.
func (v ByteTextView) RenderDebug() string {
	return util.BytesToString(v.AppendDebug(make([]byte, 0, v.Len()+3)))
}

// RenderDebugTo writes the debug representation of the view to w.
func (v ByteTextView) RenderDebugTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(w.Write(v.AppendDebug(make([]byte, 0, v.Len()+3))))
}

// Format implements [fmt.Formatter].
//
// Verbs %s and %v print the lossy text, %q and %#v print the debug representation,
// %x and %X print the raw bytes in hex.
func (v ByteTextView) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			v.RenderDebugTo(f) //nolint:errcheck
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.AsTextLossy())
		return
	case 'q':
		v.RenderDebugTo(f) //nolint:errcheck
		return
	case 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.RawBytes())
		return
	default:
		type hideMethods ByteTextView
		type ByteTextView hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ByteTextView(v))
		return
	}
}

// AppendDebug appends the debug representation of t to b.
// See [ByteTextView.AppendDebug] for the format.
func (t ByteText) AppendDebug(b []byte) []byte { return t.View().AppendDebug(b) }

// RenderDebug returns the debug representation of t.
func (t ByteText) RenderDebug() string { return t.View().RenderDebug() }

// RenderDebugTo writes the debug representation of t to w.
func (t ByteText) RenderDebugTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(t.View().RenderDebugTo(w))
}

// Format implements [fmt.Formatter]. See [ByteTextView.Format] for supported verbs.
func (t ByteText) Format(f fmt.State, verb rune) { t.View().Format(f, verb) }
