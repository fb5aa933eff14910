package bytetext

//go:generate go tool mockgen -source=decoder.go -destination=mock_decoder_test.go -package=bytetext_test

// Decoder converts bytes of some known encoding into text.
// See the charset package for decoders backed by golang.org/x/text encodings.
type Decoder interface {
	Decode(b []byte) (string, error)
}

// DecoderFunc is an adapter to allow the use of ordinary functions as [Decoder].
type DecoderFunc func(b []byte) (string, error)

// Decode calls fn(b).
func (fn DecoderFunc) Decode(b []byte) (string, error) { return fn(b) }
