package seed

import (
	"fmt"
	"math/big"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/roach88/bigcast/coerce"
)

// Encoder is a reusable UTF-8 byte-encoder resource.
//
// Reuse is purely an allocation affordance: every Encoder produces
// identical bytes for identical input, and the underlying encoding
// carries no mutable state, so an Encoder is safe for concurrent use.
type Encoder struct {
	enc encoding.Encoding
}

// NewEncoder returns an Encoder backed by the standard UTF-8 encoding.
func NewEncoder() *Encoder {
	return &Encoder{enc: unicode.UTF8}
}

// Encode converts text into a coerce.Int using a transient encoder.
// Equivalent to NewEncoder().Encode(v).
func Encode(v any) (coerce.Int, error) {
	return NewEncoder().Encode(v)
}

// Encode converts text into a coerce.Int.
//
// The input must be of the textual kind (string); anything else fails
// with *coerce.InvalidTypeError naming the received kind. The empty
// string short-circuits to 0 without touching the encoder. Otherwise
// the UTF-8 bytes of the text are interpreted big-endian as a single
// non-negative integer, exactly as if each byte were rendered as a
// zero-padded two-digit hex pair and the concatenation parsed base 16.
func (e *Encoder) Encode(v any) (coerce.Int, error) {
	s, ok := v.(string)
	if !ok {
		return coerce.Int{}, coerce.NewInvalidTypeError("string", v)
	}
	if s == "" {
		return coerce.Zero(), nil
	}

	// A fresh transform encoder per call; the Encoding itself is the
	// shared, stateless resource. Ill-formed input bytes become U+FFFD
	// replacement sequences, the standard UTF-8 encoder behavior.
	b, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return coerce.Int{}, fmt.Errorf("seed: encode text: %w", err)
	}

	return coerce.FromBig(new(big.Int).SetBytes(b))
}
