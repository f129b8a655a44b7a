// File: decimal.go
// Role: optional decimal codec for value types that support it. Uses
// math/big so widths beyond 64 bits round-trip correctly.
package signal

import (
	"math/big"

	"github.com/wireforge/hypercircuit/value"
)

// Decimal is the optional capability a signature's value type may implement
// to support conversion to/from two's-complement integers. Low and High are
// the two bits that may appear in a well-formed binary signal (e.g. FALSE
// and TRUE in a multi-valued logic); any other bit value makes the signal
// decimal-ambiguous and UnsignedToInt/SignedToInt return ok=false.
type Decimal[V value.Value] interface {
	value.Value
	Low() V
	High() V
}

// UnsignedFromInt encodes x (0 <= x < 2^width) as an unsigned LSB-first
// Signal of the given width using two's-complement bit extraction.
func UnsignedFromInt[V Decimal[V]](x *big.Int, width int, low, high V) Signal[V] {
	bits := make([]V, width)
	var tmp big.Int
	tmp.Set(x)
	for i := 0; i < width; i++ {
		if tmp.Bit(i) == 1 {
			bits[i] = high
		} else {
			bits[i] = low
		}
	}
	return Signal[V]{bits: bits}
}

// SignedFromInt encodes x into a two's-complement Signal of the given
// width; negative x is represented via two's-complement wraparound.
func SignedFromInt[V Decimal[V]](x *big.Int, width int, low, high V) Signal[V] {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width))
	v := new(big.Int).Mod(x, mod)
	if v.Sign() < 0 {
		v.Add(v, mod)
	}
	return UnsignedFromInt[V](v, width, low, high)
}

// UnsignedToInt decodes s as an unsigned two's-complement integer. Returns
// ok=false if any bit is neither low nor high (disconnected or ambiguous).
func UnsignedToInt[V Decimal[V]](s Signal[V], low, high V) (*big.Int, bool) {
	out := new(big.Int)
	for i := len(s.bits) - 1; i >= 0; i-- {
		out.Lsh(out, 1)
		switch s.bits[i] {
		case high:
			out.Or(out, big.NewInt(1))
		case low:
			// bit stays 0
		default:
			return nil, false
		}
	}
	return out, true
}

// SignedToInt decodes s as a two's-complement signed integer (the MSB is
// the sign bit). Returns ok=false on any non-low/high bit.
func SignedToInt[V Decimal[V]](s Signal[V], low, high V) (*big.Int, bool) {
	u, ok := UnsignedToInt[V](s, low, high)
	if !ok {
		return nil, false
	}
	width := s.Width()
	if width == 0 {
		return u, true
	}
	half := new(big.Int).Lsh(big.NewInt(1), uint(width-1))
	if u.Cmp(half) >= 0 {
		full := new(big.Int).Lsh(big.NewInt(1), uint(width))
		u = new(big.Int).Sub(u, full)
	}
	return u, true
}
