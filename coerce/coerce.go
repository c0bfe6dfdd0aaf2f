package coerce

import (
	"fmt"
	"math/big"
	"unicode"
)

var one = big.NewInt(1)

// Int is an immutable arbitrary-precision signed integer.
//
// Construction copies the supplied value and accessors copy outward, so
// an Int can never be mutated through aliasing. The zero value of Int
// behaves as the integer 0.
type Int struct {
	v *big.Int
}

// New constructs an Int from v after a runtime kind check.
//
// The arbitrary-precision integer kind is *big.Int; any other kind
// (fixed-width numbers, floats, strings, nil) fails with
// *InvalidTypeError. Magnitude and sign are unrestricted.
func New(v any) (Int, error) {
	x, ok := v.(*big.Int)
	if !ok || x == nil {
		return Int{}, NewInvalidTypeError("*big.Int", v)
	}
	return Int{v: new(big.Int).Set(x)}, nil
}

// MustNew is New but panics on a kind-check failure.
// Intended for fixtures and literals known to be valid.
func MustNew(v any) Int {
	n, err := New(v)
	if err != nil {
		panic(err)
	}
	return n
}

// FromBig constructs an Int from x. A nil x fails with *InvalidTypeError.
func FromBig(x *big.Int) (Int, error) {
	return New(x)
}

// FromInt64 constructs an Int holding x.
func FromInt64(x int64) Int {
	return Int{v: big.NewInt(x)}
}

// FromUint64 constructs an Int holding x.
func FromUint64(x uint64) Int {
	return Int{v: new(big.Int).SetUint64(x)}
}

// Zero returns the Int holding 0.
func Zero() Int {
	return Int{v: new(big.Int)}
}

// value returns the wrapped integer, treating the zero Int as 0.
// Callers must not mutate the result.
func (i Int) value() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return i.v
}

// Equal reports whether i and o wrap identical values.
// There is no approximate or cross-type equality.
func (i Int) Equal(o Int) bool {
	return i.value().Cmp(o.value()) == 0
}

// BigInt returns a copy of the exact wrapped value.
func (i Int) BigInt() *big.Int {
	return new(big.Int).Set(i.value())
}

// residue returns value mod 2^bits normalized to [0, 2^bits).
// big.Int.Mod is Euclidean, so negative values land in range
// (-1 at 8 bits is 255).
func (i Int) residue(bits uint) *big.Int {
	m := new(big.Int).Lsh(one, bits)
	return new(big.Int).Mod(i.value(), m)
}

// signedResidue returns the two's-complement reinterpretation of the
// unsigned residue: values with the high bit set map to residue - 2^bits,
// yielding [-2^(bits-1), 2^(bits-1)).
func (i Int) signedResidue(bits uint) *big.Int {
	r := i.residue(bits)
	half := new(big.Int).Lsh(one, bits-1)
	if r.Cmp(half) >= 0 {
		r.Sub(r, new(big.Int).Lsh(one, bits))
	}
	return r
}

// Int8 returns the value wrapped to a signed 8-bit integer.
func (i Int) Int8() int8 { return int8(i.signedResidue(8).Int64()) }

// Int16 returns the value wrapped to a signed 16-bit integer.
func (i Int) Int16() int16 { return int16(i.signedResidue(16).Int64()) }

// Int32 returns the value wrapped to a signed 32-bit integer.
func (i Int) Int32() int32 { return int32(i.signedResidue(32).Int64()) }

// Int64 returns the value wrapped to a signed 64-bit integer.
// Unlike environments whose native numbers are floats, int64 holds the
// full 64-bit wrap exactly.
func (i Int) Int64() int64 { return i.signedResidue(64).Int64() }

// Uint8 returns the value wrapped to an unsigned 8-bit integer.
func (i Int) Uint8() uint8 { return uint8(i.residue(8).Uint64()) }

// Uint16 returns the value wrapped to an unsigned 16-bit integer.
func (i Int) Uint16() uint16 { return uint16(i.residue(16).Uint64()) }

// Uint32 returns the value wrapped to an unsigned 32-bit integer.
func (i Int) Uint32() uint32 { return uint32(i.residue(32).Uint64()) }

// Uint64 returns the value wrapped to an unsigned 64-bit integer.
func (i Int) Uint64() uint64 { return i.residue(64).Uint64() }

// BigInt64 returns the exact signed 64-bit wrap as a big integer, for
// callers staying in arbitrary-precision space.
func (i Int) BigInt64() *big.Int { return i.signedResidue(64) }

// BigUint64 returns the exact unsigned 64-bit wrap as a big integer.
// BigUint64 of -1 is 2^64 - 1.
func (i Int) BigUint64() *big.Int { return i.residue(64) }

// AbsInt32 strips the sign first and reduces the magnitude modulo 2^31,
// yielding [0, 2^31 - 1]. This is not abs(Int32()): the modulus applies
// to the pre-sign-stripped magnitude at 31 bits, so V and -V always
// collide. Deterministic but not injective; suited to hashing.
func (i Int) AbsInt32() int32 {
	mag := new(big.Int).Abs(i.value())
	m := new(big.Int).Lsh(one, 31)
	return int32(mag.Mod(mag, m).Int64())
}

// Char returns the unsigned 16-bit residue as a single UTF-16 code unit.
// The result may fall in the surrogate range and thus not be a valid
// standalone character; that is accepted behavior, not an error.
func (i Int) Char() uint16 {
	return uint16(i.residue(16).Uint64())
}

// CodePoint returns the value modulo 2^21 as a Unicode code point.
// A 21-bit residue above the maximum scalar value is re-masked by a
// bitwise AND against 0x10FFFF, which changes the numeric value rather
// than clamping it. Rendering the result may take two UTF-16 code units.
func (i Int) CodePoint() rune {
	cp := i.residue(21).Int64()
	if cp > int64(unicode.MaxRune) {
		cp &= int64(unicode.MaxRune)
	}
	return rune(cp)
}

// Float64 converts to the nearest float64. Exact only within
// ±(2^53 - 1); loss beyond that is documented, not detected.
func (i Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(i.value()).Float64()
	return f
}

// Hex renders the exact value in base 16, with a 0x marker when
// withPrefix is set. Negative values carry a minus sign ahead of the
// prefix; the rendering is never wrapped to a fixed width.
func (i Int) Hex(withPrefix bool) string {
	return i.radix(16, "0x", withPrefix)
}

// Binary renders the exact value in base 2 with an optional 0b marker.
func (i Int) Binary(withPrefix bool) string {
	return i.radix(2, "0b", withPrefix)
}

// Octal renders the exact value in base 8 with an optional 0o marker.
func (i Int) Octal(withPrefix bool) string {
	return i.radix(8, "0o", withPrefix)
}

func (i Int) radix(base int, prefix string, withPrefix bool) string {
	v := i.value()
	if !withPrefix {
		return v.Text(base)
	}
	if v.Sign() < 0 {
		return "-" + prefix + new(big.Int).Abs(v).Text(base)
	}
	return prefix + v.Text(base)
}

// Text renders the exact value in the given base, 2 through 36, with
// lowercase digits and no prefix. Like strconv.FormatInt, Text panics
// on a base outside that range.
func (i Int) Text(base int) string {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("coerce: illegal Text base %d", base))
	}
	return i.value().Text(base)
}

// String renders the exact value in base 10. Implements fmt.Stringer.
func (i Int) String() string {
	return i.value().Text(10)
}

// IsZero reports whether the value is 0.
func (i Int) IsZero() bool { return i.value().Sign() == 0 }

// IsPositive reports whether the value is greater than 0.
// Zero is neither positive nor negative.
func (i Int) IsPositive() bool { return i.value().Sign() > 0 }

// IsNegative reports whether the value is less than 0.
func (i Int) IsNegative() bool { return i.value().Sign() < 0 }

// IsEven reports whether the value is even. Zero is even.
func (i Int) IsEven() bool { return i.value().Bit(0) == 0 }

// IsOdd reports whether the value is odd.
func (i Int) IsOdd() bool { return i.value().Bit(0) == 1 }
