// File: waveform.go
// Role: Waveform[V] — a finite, non-empty, periodic sequence of Signal[V],
// all sharing one width, interpreted as infinite by repetition.
package signal

import (
	"fmt"

	"github.com/wireforge/hypercircuit/value"
)

// Waveform is a finite non-empty ordered sequence of Signal[V], all of the
// same width. SignalAtTick treats the sequence as infinite by repeating it
// with period len(signals).
type Waveform[V value.Value] struct {
	signals []Signal[V]
	width   int
}

// NewWaveform validates that signals is non-empty and every element shares
// the same width, then returns the Waveform.
func NewWaveform[V value.Value](signals []Signal[V]) (Waveform[V], error) {
	if len(signals) == 0 {
		return Waveform[V]{}, ErrEmptySignal
	}
	width := signals[0].Width()
	for i, s := range signals {
		if s.Width() != width {
			return Waveform[V]{}, fmt.Errorf("NewWaveform: tick %d has width %d, want %d: %w", i, s.Width(), width, ErrWidthMismatch)
		}
	}
	return Waveform[V]{signals: append([]Signal[V](nil), signals...), width: width}, nil
}

// Period returns the number of distinct ticks before the waveform repeats.
func (w Waveform[V]) Period() int { return len(w.signals) }

// Width returns the bit-width shared by every tick.
func (w Waveform[V]) Width() int { return w.width }

// SignalAtTick returns signals[t mod Period()], treating the waveform as
// infinite by repetition. t may be any non-negative tick index.
func (w Waveform[V]) SignalAtTick(t int) Signal[V] {
	return w.signals[((t % len(w.signals)) + len(w.signals)) % len(w.signals)]
}

// gcd returns the greatest common divisor of a and b (both > 0).
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the least common multiple of a and b (both > 0).
func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// JoinWaveforms aligns ws by the least common multiple of their periods and
// returns, for each tick 0..lcm-1, the slice of per-waveform signals at that
// tick — the raw material the rewrite engine's apply-over-waveforms rule
// lifts a primitive's interpretation across.
//
// Complexity: O(L * n) where L = lcm(periods) and n = len(ws).
func JoinWaveforms[V value.Value](ws []Waveform[V]) ([][]Signal[V], error) {
	if len(ws) == 0 {
		return nil, ErrEmptySignal
	}
	period := ws[0].Period()
	for _, w := range ws[1:] {
		period = lcm(period, w.Period())
	}
	out := make([][]Signal[V], period)
	for t := 0; t < period; t++ {
		row := make([]Signal[V], len(ws))
		for i, w := range ws {
			row[i] = w.SignalAtTick(t)
		}
		out[t] = row
	}
	return out, nil
}
