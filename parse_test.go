package bytetext_test

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/bytetext"
)

func TestParseDebug(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		wantText bool
		want     []byte
		wantErr  error
	}{
		{"empty text", `""`, true, nil, nil},
		{"empty bytes", `b""`, false, nil, nil},
		{"text", `"café"`, true, []byte("café"), nil},
		{"text escapes", `"a\tbé"`, true, []byte("a\tbé"), nil},
		{"latin2 bytes", `b"caf\xe9"`, false, cafeLatin2, nil},
		{"upper hex", `b"\xE9\xFF"`, false, []byte{0xe9, 0xff}, nil},
		{"escapes", `b"\t\r\n\\\'\"A"`, false, []byte{9, 13, 10, 92, 39, 34, 65}, nil},
		{"empty input", ``, false, nil, bytetext.ErrInvalidLiteral},
		{"unquoted", `cafe`, false, nil, bytetext.ErrInvalidLiteral},
		{"single quotes", `'a'`, false, nil, bytetext.ErrInvalidLiteral},
		{"unterminated text", `"abc`, false, nil, bytetext.ErrInvalidLiteral},
		{"invalid utf-8 text", `"\xff"`, false, nil, bytetext.ErrInvalidLiteral},
		{"unterminated bytes", `b"`, false, nil, bytetext.ErrInvalidLiteral},
		{"missing closing quote", `b"abc`, false, nil, bytetext.ErrInvalidLiteral},
		{"truncated escape", `b"\"`, false, nil, bytetext.ErrInvalidLiteral},
		{"truncated hex", `b"\x4"`, false, nil, bytetext.ErrInvalidLiteral},
		{"invalid hex", `b"\xzz"`, false, nil, bytetext.ErrInvalidLiteral},
		{"unknown escape", `b"\q"`, false, nil, bytetext.ErrInvalidLiteral},
		{"unescaped quote", `b"a"b"`, false, nil, bytetext.ErrInvalidLiteral},
		{"raw non-ascii", `b"é"`, false, nil, bytetext.ErrInvalidLiteral},
		{"raw control", "b\"\t\"", false, nil, bytetext.ErrInvalidLiteral},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := bytetext.ParseDebug(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("ParseDebug(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}
			if got.IsText() != c.wantText {
				t.Errorf("ParseDebug(%q).IsText() = %v, want %v", c.in, got.IsText(), c.wantText)
			}
			if diff := cmp.Diff(got.RawBytes(), c.want, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseDebug(%q).RawBytes() mismatch (-got +want):\n%v", c.in, diff)
			}
		})
	}
}

func FuzzParseDebug(f *testing.F) {
	f.Add([]byte{99, 97, 102, 233}, false)
	f.Add([]byte{9, 13, 10, 92, 39, 34, 65}, false)
	f.Add([]byte("café"), true)
	f.Add([]byte{}, true)

	f.Fuzz(func(t *testing.T, b []byte, text bool) {
		var val bytetext.ByteText
		if text {
			if !utf8.Valid(b) {
				t.Skip()
			}
			val = bytetext.FromText(string(b))
		} else {
			val = bytetext.FromBytes(b)
		}

		lit := val.RenderDebug()
		got, err := bytetext.ParseDebug(lit)
		if err != nil {
			t.Fatalf("ParseDebug(%s) error = %v, want nil", lit, err)
		}
		if got.IsText() != val.IsText() {
			t.Errorf("ParseDebug(%s).IsText() = %v, want %v", lit, got.IsText(), val.IsText())
		}
		if !got.Equal(val) {
			t.Errorf("ParseDebug(%s) = %q, want %q", lit, got, val)
		}
	})
}
