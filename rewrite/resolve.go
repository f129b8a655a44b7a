package rewrite

import (
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/value"
)

// resolvedKind discriminates how a vertex's value is currently known.
type resolvedKind int

const (
	resolvedDefinite resolvedKind = iota
	resolvedPartial
	resolvedWaveform
)

// resolved is the leaf value carried by a vertex whose producing edge has
// already settled to one of ARGUMENT/VALUE/SIGNAL/PARTIAL/INFINITE_WAVEFORM.
type resolved[V value.Value] struct {
	kind     resolvedKind
	definite signal.Signal[V]
	partial  signal.VariableSignal[V]
	waveform signal.Waveform[V]
}

// resolveVertex inspects v's producing edge and returns its leaf value, or
// ok=false if v has no producer yet or its producer is still a structural
// (non-leaf) edge awaiting rewriting.
func resolveVertex[V value.Value](g *hgraph.Hypergraph[V], v hgraph.VertexID) (resolved[V], bool) {
	vv, ok := g.Vertex(v)
	if !ok || !vv.HasInEdge() {
		return resolved[V]{}, false
	}
	e, ok := g.Edge(vv.InEdge)
	if !ok {
		return resolved[V]{}, false
	}
	switch e.Label.Kind {
	case hgraph.LabelArgument:
		ci := e.Label.Argument()
		if ci.IsDefinite() {
			s, _ := ci.AsDefinite()
			return resolved[V]{kind: resolvedDefinite, definite: s}, true
		}
		vs, _ := ci.AsPartial()
		return resolved[V]{kind: resolvedPartial, partial: vs}, true
	case hgraph.LabelValue:
		return resolved[V]{kind: resolvedDefinite, definite: signal.Of(e.Label.Value())}, true
	case hgraph.LabelSignal:
		return resolved[V]{kind: resolvedDefinite, definite: e.Label.Signal()}, true
	case hgraph.LabelPartial:
		return resolved[V]{kind: resolvedPartial, partial: e.Label.Partial()}, true
	case hgraph.LabelInfiniteWaveform:
		return resolved[V]{kind: resolvedWaveform, waveform: e.Label.Waveform()}, true
	default:
		return resolved[V]{}, false
	}
}

// resolveAll resolves every source of edge e, returning ok=false (no error)
// if any source is not yet ready — the rule should simply decline.
func resolveAll[V value.Value](g *hgraph.Hypergraph[V], sources []hgraph.VertexID) ([]resolved[V], bool) {
	out := make([]resolved[V], len(sources))
	for i, s := range sources {
		r, ok := resolveVertex(g, s)
		if !ok {
			return nil, false
		}
		out[i] = r
	}
	return out, true
}

func allKind[V value.Value](rs []resolved[V], k resolvedKind) bool {
	for _, r := range rs {
		if r.kind != k {
			return false
		}
	}
	return true
}

// anyKind reports whether any of rs has the given kind.
func anyKind[V value.Value](rs []resolved[V], k resolvedKind) bool {
	for _, r := range rs {
		if r.kind == k {
			return true
		}
	}
	return false
}

// asVariableSignal views r as a VariableSignal, promoting a DEFINITE signal
// to a zero-free-variable VariableSignal whose bits are constants. This lets
// firePartialApply treat a mix of DEFINITE and PARTIAL arguments uniformly —
// AND(x, FALSE) is exactly this case: one DEFINITE (FALSE) and one PARTIAL
// (x) argument, which must still collapse to DEFINITE(FALSE) rather than
// decline.
func asVariableSignal[V value.Value](r resolved[V]) signal.VariableSignal[V] {
	if r.kind == resolvedPartial {
		return r.partial
	}
	width := r.definite.Width()
	bitFuncs := make([]signal.BitFunc[V], width)
	for i := 0; i < width; i++ {
		bit, _ := r.definite.Bit(i)
		v := bit
		bitFuncs[i] = func(signal.Assignment[V]) V { return v }
	}
	return signal.NewVariableSignal[V](nil, bitFuncs)
}

// replaceWithLeaf removes edge e and rebinds each of its targets to a fresh
// leaf-producing edge carrying the corresponding label in labels, returning
// the consumer edges thereby unlocked.
func replaceWithLeaf[V value.Value](g *hgraph.Hypergraph[V], e hgraph.EdgeID, labels []hgraph.EdgeLabel[V]) ([]TraversalElement, error) {
	edge, ok := g.Edge(e)
	if !ok {
		return nil, nil
	}
	targets := append([]hgraph.VertexID(nil), edge.Targets...)
	if err := g.RemoveEdge(e); err != nil {
		return nil, err
	}
	for i, t := range targets {
		if _, err := g.AddEdgeToExistingTarget(labels[i], nil, t); err != nil {
			return nil, err
		}
	}
	return enqueueConsumers(g, targets), nil
}
