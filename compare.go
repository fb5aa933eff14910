package bytetext

import (
	"bytes"

	"github.com/ghettovoice/bytetext/internal/util"
)

// Value is the set of types comparable with each other by raw bytes.
type Value interface {
	ByteText | ByteTextView | string | []byte
}

// Equal reports whether a and b hold the same bytes. Tags are ignored.
func Equal[A, B Value](a A, b B) bool {
	return bytes.Equal(valueBytes(a), valueBytes(b))
}

// Compare compares the raw bytes of a and b lexicographically, as unsigned bytes.
// The result is 0 if a == b, -1 if a < b, and +1 if a > b.
func Compare[A, B Value](a A, b B) int {
	return bytes.Compare(valueBytes(a), valueBytes(b))
}

func valueBytes[T Value](v T) []byte {
	b, _ := rawBytesOf(v)
	return b
}

func rawBytesOf(val any) ([]byte, bool) {
	switch v := val.(type) {
	case ByteText:
		return v.RawBytes(), true
	case *ByteText:
		if v == nil {
			return nil, false
		}
		return v.RawBytes(), true
	case ByteTextView:
		return v.RawBytes(), true
	case *ByteTextView:
		if v == nil {
			return nil, false
		}
		return v.RawBytes(), true
	case string:
		return util.StringToBytes(v), true
	case []byte:
		return v, true
	default:
		return nil, false
	}
}
