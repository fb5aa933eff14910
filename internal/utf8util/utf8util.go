// Package utf8util provides UTF-8 helpers missing from [unicode/utf8].
package utf8util

import (
	"unicode/utf8"

	"github.com/ghettovoice/bytetext/internal/constraints"
	"github.com/ghettovoice/bytetext/internal/util"
)

// Replacement is the UTF-8 encoding of U+FFFD REPLACEMENT CHARACTER.
const Replacement = "\uFFFD"

// ValidUpTo returns the length of the longest prefix of s that is valid UTF-8.
func ValidUpTo[T constraints.Byteseq](s T) int {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		n, ok := scanSeq(s[i:])
		if !ok {
			return i
		}
		i += n
	}
	return len(s)
}

// scanSeq scans the multi-byte sequence at the start of s.
// It returns the length of the well-formed sequence and true, or the length of
// the maximal subpart of the ill-formed sequence (Unicode 3.9, Table 3-7) and false.
func scanSeq[T constraints.Byteseq](s T) (int, bool) {
	lo, hi := byte(0x80), byte(0xbf)
	var n int
	switch c := s[0]; {
	case c >= 0xc2 && c <= 0xdf:
		n = 2
	case c == 0xe0:
		n, lo = 3, 0xa0
	case c == 0xed:
		n, hi = 3, 0x9f
	case c >= 0xe1 && c <= 0xef:
		n = 3
	case c == 0xf0:
		n, lo = 4, 0x90
	case c >= 0xf1 && c <= 0xf3:
		n = 4
	case c == 0xf4:
		n, hi = 4, 0x8f
	default:
		return 1, false
	}

	i := 1
	for ; i < n && i < len(s); i++ {
		if s[i] < lo || s[i] > hi {
			break
		}
		lo, hi = 0x80, 0xbf
	}
	return i, i == n
}

// AppendLossy appends b to dst replacing every maximal subpart of an ill-formed
// sequence with a single U+FFFD.
func AppendLossy(dst, b []byte) []byte {
	for len(b) > 0 {
		n := ValidUpTo(b)
		dst = append(dst, b[:n]...)
		b = b[n:]
		if len(b) == 0 {
			break
		}
		dst = append(dst, Replacement...)
		n, _ = scanSeq(b)
		b = b[n:]
	}
	return dst
}

// Lossy returns b as a string with every maximal subpart of an ill-formed
// sequence replaced by U+FFFD. The result never shares memory with b.
func Lossy(b []byte) string {
	return util.BytesToString(AppendLossy(make([]byte, 0, len(b)+len(Replacement)), b))
}
