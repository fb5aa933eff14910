package bytetext

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/bytetext/internal/errorutil"
)

func newInvalidLiteralErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidLiteral, args...) //errtrace:skip
}

// ParseDebug parses the debug representation produced by [ByteText.RenderDebug].
// A Go quoted string becomes a text value and must decode to valid UTF-8;
// a b"..." byte string literal becomes a bytes value.
// Malformed input fails with an error matching [ErrInvalidLiteral].
func ParseDebug(s string) (ByteText, error) {
	switch {
	case strings.HasPrefix(s, `b"`):
		b, err := unquoteBytes(s)
		if err != nil {
			return ByteText{}, errtrace.Wrap(err)
		}
		return FromBytes(b), nil
	case strings.HasPrefix(s, `"`):
		str, err := strconv.Unquote(s)
		if err != nil {
			return ByteText{}, errtrace.Wrap(newInvalidLiteralErr(err))
		}
		if !utf8.ValidString(str) {
			return ByteText{}, errtrace.Wrap(newInvalidLiteralErr("quoted string is not valid UTF-8"))
		}
		return FromText(str), nil
	case s == "":
		return ByteText{}, errtrace.Wrap(newInvalidLiteralErr("empty input"))
	default:
		return ByteText{}, errtrace.Wrap(newInvalidLiteralErr("unexpected %q at offset 0", s[0]))
	}
}

// unquoteBytes decodes a b"..." literal.
func unquoteBytes(s string) ([]byte, error) {
	if len(s) < 3 || s[len(s)-1] != '"' {
		return nil, errtrace.Wrap(newInvalidLiteralErr("missing closing quote"))
	}

	const start = 2
	buf := make([]byte, 0, len(s)-start-1)
	for i := start; i < len(s)-1; i++ {
		c := s[i]
		switch {
		case c == '\\':
			if i+1 >= len(s)-1 {
				return nil, errtrace.Wrap(newInvalidLiteralErr("truncated escape at offset %d", i))
			}
			i++
			switch e := s[i]; e {
			case 't':
				buf = append(buf, '\t')
			case 'r':
				buf = append(buf, '\r')
			case 'n':
				buf = append(buf, '\n')
			case '\\', '\'', '"':
				buf = append(buf, e)
			case 'x':
				if i+2 > len(s)-2 {
					return nil, errtrace.Wrap(newInvalidLiteralErr("truncated escape at offset %d", i-1))
				}
				hi, ok1 := unhex(s[i+1])
				lo, ok2 := unhex(s[i+2])
				if !ok1 || !ok2 {
					return nil, errtrace.Wrap(newInvalidLiteralErr("invalid hex escape at offset %d", i-1))
				}
				buf = append(buf, hi<<4|lo)
				i += 2
			default:
				return nil, errtrace.Wrap(newInvalidLiteralErr("unknown escape %q at offset %d", e, i-1))
			}
		case c == '"':
			return nil, errtrace.Wrap(newInvalidLiteralErr("unescaped quote at offset %d", i))
		case c < 0x20 || c > 0x7e:
			return nil, errtrace.Wrap(newInvalidLiteralErr("unexpected byte 0x%02x at offset %d", c, i))
		default:
			buf = append(buf, c)
		}
	}
	return buf, nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
