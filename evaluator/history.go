// File: history.go
// Role: per-cycle history recording and per-port accessors. Formatting a
// human-readable table is left to the caller; this package does no
// formatting.
package evaluator

import (
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/value"
)

// CycleRecord is one tick's recorded (inputs, outputs) pair.
type CycleRecord[V value.Value] struct {
	Inputs  []signal.CycleInput[V]
	Outputs []OutputTerm[V]
}

// History returns every recorded cycle in tick order, oldest first.
func (ev *Evaluator[V]) History() []CycleRecord[V] {
	return append([]CycleRecord[V](nil), ev.history...)
}

// Len returns the number of cycles recorded so far.
func (ev *Evaluator[V]) Len() int { return len(ev.history) }

// InputHistory returns the sequence of values supplied to input port i
// across every recorded cycle.
func (ev *Evaluator[V]) InputHistory(port int) []signal.CycleInput[V] {
	out := make([]signal.CycleInput[V], len(ev.history))
	for i, rec := range ev.history {
		out[i] = rec.Inputs[port]
	}
	return out
}

// OutputHistory returns the sequence of OutputTerms produced at output port
// i across every recorded cycle.
func (ev *Evaluator[V]) OutputHistory(port int) []OutputTerm[V] {
	out := make([]OutputTerm[V], len(ev.history))
	for i, rec := range ev.history {
		out[i] = rec.Outputs[port]
	}
	return out
}
