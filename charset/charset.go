// Package charset adapts [golang.org/x/text/encoding] encodings to the decoding hooks of bytetext.
package charset

//go:generate go tool errtrace -w .

import (
	"fmt"

	"braces.dev/errtrace"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ghettovoice/bytetext"
	"github.com/ghettovoice/bytetext/internal/errorutil"
	"github.com/ghettovoice/bytetext/internal/util"
)

// ErrUnknownCharset is returned by [Lookup] for names that are not known or not supported.
const ErrUnknownCharset errorutil.Error = "unknown charset"

// Charset converts between UTF-8 text and bytes in a legacy encoding.
// It implements [bytetext.Decoder].
type Charset struct {
	enc encoding.Encoding
}

var _ bytetext.Decoder = (*Charset)(nil)

// New returns a Charset backed by enc.
func New(enc encoding.Encoding) *Charset { return &Charset{enc: enc} }

// Lookup returns the Charset registered under the IANA name or alias,
// e.g. "ISO-8859-2", "latin2" or "IBM437".
func Lookup(name string) (*Charset, error) {
	name = util.TrimSP(name)
	if name == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty charset name"))
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownCharset, fmt.Errorf("%q: %w", name, err)))
	}
	if enc == nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnknownCharset, "%q is not supported", name))
	}
	return New(enc), nil
}

// MustLookup is like [Lookup] but panics on error.
func MustLookup(name string) *Charset { return util.Must2(Lookup(name)) }

// Name returns the preferred MIME name of the charset, e.g. "ISO-8859-2",
// or its IANA name if it has no MIME name.
func (cs *Charset) Name() string {
	for _, idx := range []*ianaindex.Index{ianaindex.MIME, ianaindex.IANA} {
		if name, err := idx.Name(cs.enc); err == nil && name != "" {
			return name
		}
	}
	return fmt.Sprint(cs.enc)
}

// Encoding returns the underlying encoding.
func (cs *Charset) Encoding() encoding.Encoding { return cs.enc }

// Decode converts bytes in the charset into UTF-8 text.
func (cs *Charset) Decode(b []byte) (string, error) {
	out, err := cs.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return util.BytesToString(out), nil
}

// DecodeLossy is like [Charset.Decode], but falls back to lossy UTF-8 decoding on failure.
// It fits [bytetext.ByteText.MapIntoText].
func (cs *Charset) DecodeLossy(b []byte) string {
	s, err := cs.Decode(b)
	if err != nil {
		return bytetext.BytesView(b).AsTextLossy()
	}
	return s
}

// Encode converts the text s into a bytes value in the charset.
// Runes the charset cannot represent make it fail.
func (cs *Charset) Encode(s string) (bytetext.ByteText, error) {
	out, err := cs.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return bytetext.ByteText{}, errtrace.Wrap(err)
	}
	return bytetext.FromBytes(out), nil
}

// String returns the charset name.
func (cs *Charset) String() string { return cs.Name() }
