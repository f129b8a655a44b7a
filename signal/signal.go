// File: signal.go
// Role: Signal[V] — a finite, ordered, fixed-width bit-vector over a
// signature's value type. Bit 0 is the least significant bit.
package signal

import (
	"fmt"
	"strings"

	"github.com/wireforge/hypercircuit/value"
)

// Signal is a finite ordered sequence of values. A width-1 Signal is
// conventionally just called a value; no separate type is introduced for
// it. No minimum width is enforced: Bits() with no arguments, Fill(v, 0)
// and Slice(i, i) each yield a width-0 Signal.
type Signal[V value.Value] struct {
	bits []V // bits[0] is the LSB
}

// Of constructs a width-1 Signal holding v.
func Of[V value.Value](v V) Signal[V] {
	return Signal[V]{bits: []V{v}}
}

// Fill constructs a width-wide Signal with every bit set to v.
// Complexity: O(width).
func Fill[V value.Value](v V, width int) Signal[V] {
	bits := make([]V, width)
	for i := range bits {
		bits[i] = v
	}
	return Signal[V]{bits: bits}
}

// Bits constructs a Signal directly from an LSB-first slice of values.
// The slice is copied defensively.
func Bits[V value.Value](bits ...V) Signal[V] {
	return Signal[V]{bits: append([]V(nil), bits...)}
}

// Width returns the number of bits in the signal.
func (s Signal[V]) Width() int { return len(s.bits) }

// Bit returns the value at bit position i (0 = LSB), or an error if i is
// out of [0, Width()).
func (s Signal[V]) Bit(i int) (V, error) {
	var zero V
	if i < 0 || i >= len(s.bits) {
		return zero, fmt.Errorf("Signal.Bit(%d): width=%d: %w", i, len(s.bits), ErrIndexOutOfRange)
	}
	return s.bits[i], nil
}

// Slice returns the sub-signal covering bit positions [start, end).
func (s Signal[V]) Slice(start, end int) (Signal[V], error) {
	if start < 0 || end > len(s.bits) || start > end {
		return Signal[V]{}, fmt.Errorf("Signal.Slice(%d,%d): width=%d: %w", start, end, len(s.bits), ErrIndexOutOfRange)
	}
	return Signal[V]{bits: append([]V(nil), s.bits[start:end]...)}, nil
}

// LSBAndMSBs splits the signal into its least significant bit and the
// remaining higher bits.
func (s Signal[V]) LSBAndMSBs() (V, Signal[V], error) {
	var zero V
	if len(s.bits) == 0 {
		return zero, Signal[V]{}, ErrEmptySignal
	}
	rest := Signal[V]{bits: append([]V(nil), s.bits[1:]...)}
	return s.bits[0], rest, nil
}

// MSB returns the most significant bit (the highest-indexed bit).
func (s Signal[V]) MSB() (V, error) {
	var zero V
	if len(s.bits) == 0 {
		return zero, ErrEmptySignal
	}
	return s.bits[len(s.bits)-1], nil
}

// Concat appends other after s (s supplies the low-order bits), returning a
// signal of width Width()+other.Width().
func (s Signal[V]) Concat(other Signal[V]) Signal[V] {
	out := make([]V, 0, len(s.bits)+len(other.bits))
	out = append(out, s.bits...)
	out = append(out, other.bits...)
	return Signal[V]{bits: out}
}

// BitsSlice returns a defensive copy of the LSB-first bit slice.
func (s Signal[V]) BitsSlice() []V { return append([]V(nil), s.bits...) }

// Equal reports bit-for-bit equality, including width.
func (s Signal[V]) Equal(o Signal[V]) bool {
	if len(s.bits) != len(o.bits) {
		return false
	}
	for i := range s.bits {
		if s.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// String renders bits MSB-first for human reading (index Width()-1 down to 0).
func (s Signal[V]) String() string {
	var b strings.Builder
	for i := len(s.bits) - 1; i >= 0; i-- {
		b.WriteString(s.bits[i].String())
		if i > 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
