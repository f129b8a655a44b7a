// File: decimal.go
// Role: decimal integer I/O at the evaluator boundary, for value types
// implementing signal.Decimal. Kept separate from package signal's
// codec so that an Evaluator[V] built over a non-Decimal V never needs to
// instantiate these generic functions at all.
package evaluator

import (
	"math/big"

	"github.com/wireforge/hypercircuit/signal"
)

// DecimalCycleInput encodes x as a signal.CycleInput of the given width,
// signed or unsigned two's-complement, for use as a PerformCycle argument.
func DecimalCycleInput[V signal.Decimal[V]](x *big.Int, width int, signed bool) signal.CycleInput[V] {
	var zero V
	var s signal.Signal[V]
	if signed {
		s = signal.SignedFromInt[V](x, width, zero.Low(), zero.High())
	} else {
		s = signal.UnsignedFromInt[V](x, width, zero.Low(), zero.High())
	}
	return signal.DefiniteInput[V](s)
}

// DecimalOutput decodes a settled TermBase term back to an integer. ok is
// false if t is not a TermBase, carries a waveform rather than a
// CycleInput, is not DEFINITE, or contains a bit that is neither the
// Decimal type's Low nor High value (decimal-ambiguous, e.g. a Belnap BOTH
// or NONE bit).
func DecimalOutput[V signal.Decimal[V]](t OutputTerm[V], signed bool) (*big.Int, bool) {
	if t.Kind() != TermBase || t.IsWaveform() {
		return nil, false
	}
	ci := t.Base()
	s, ok := ci.AsDefinite()
	if !ok {
		return nil, false
	}
	var zero V
	if signed {
		return signal.SignedToInt[V](s, zero.Low(), zero.High())
	}
	return signal.UnsignedToInt[V](s, zero.Low(), zero.High())
}
