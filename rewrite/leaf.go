package rewrite

import (
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/value"
)

// ResolveLeaf reports vertex v's current value as a signal.CycleInput, for
// callers outside this package that need to read back a settled wire after
// an Engine.Run reaches a fixed point — package evaluator uses this to read
// a DELAY edge's next-state value. ok is false if v has no producer yet, or its producer has not
// settled to ARGUMENT/VALUE/SIGNAL/PARTIAL (an INFINITE_WAVEFORM producer
// also reports ok=false: a waveform has no CycleInput representation).
func ResolveLeaf[V value.Value](g *hgraph.Hypergraph[V], v hgraph.VertexID) (signal.CycleInput[V], bool) {
	r, ok := resolveVertex(g, v)
	if !ok {
		return signal.CycleInput[V]{}, false
	}
	switch r.kind {
	case resolvedDefinite:
		return signal.DefiniteInput[V](r.definite), true
	case resolvedPartial:
		return signal.PartialInput[V](r.partial), true
	default:
		return signal.CycleInput[V]{}, false
	}
}
