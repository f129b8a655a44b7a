// File: builder.go
// Role: Builder — the stateful façade over one hgraph.Hypergraph under
// construction.
package hbuilder

import (
	"fmt"

	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/value"
)

// Builder accumulates wires and edges into one hgraph.Hypergraph until
// MakeSubcircuit seals it into an InterfacedHypergraph. CyclicCombinational
// marks the graph under construction as a declared cyclic-combinational
// circuit, exempting it from the unguarded-feedback and DAG-after-delay
// checks.
type Builder[V value.Value] struct {
	Graph               *hgraph.Hypergraph[V]
	CyclicCombinational bool
}

// New returns a Builder over a fresh, empty hypergraph arena.
func New[V value.Value]() *Builder[V] {
	return &Builder[V]{Graph: hgraph.NewHypergraph[V]()}
}

// UseWire allocates a free wire of the given width: an interface input, or
// an internal wire whose producer will be attached later.
func (b *Builder[V]) UseWire(width int) (hgraph.VertexID, error) {
	return b.Graph.AddWire(width)
}

// UseEdge creates an edge carrying label, consuming the given ordered input
// vertices, and returns the freshly created output vertices. A COMPOSITE
// label already carries its embedded subgraph (see hgraph.CompositeLabel),
// so there is no separate subgraph parameter here.
func (b *Builder[V]) UseEdge(label hgraph.EdgeLabel[V], inputs []hgraph.VertexID) ([]hgraph.VertexID, error) {
	return b.Graph.AddEdge(label, inputs)
}

// Feedback attaches a FEEDBACK edge from source to target, where target
// must be a wire allocated by UseWire but not yet given a producer (it was
// used as a consumer elsewhere in the circuit being built as if it were a
// free input). It fails ErrUnguardedFeedback unless every path from target
// to source in the graph built so far crosses a DELAY edge, unless the
// Builder is marked CyclicCombinational.
func (b *Builder[V]) Feedback(source, target hgraph.VertexID) error {
	sv, ok := b.Graph.Vertex(source)
	if !ok {
		return hgraph.NewIncompatibleParameter(hgraph.KindOwner, "feedback source %d not found", source)
	}
	tv, ok := b.Graph.Vertex(target)
	if !ok {
		return hgraph.NewIncompatibleParameter(hgraph.KindOwner, "feedback target %d not found", target)
	}
	if sv.Width != tv.Width {
		return hgraph.NewIncompatibleParameter(hgraph.KindWidth, "feedback source width %d != target width %d", sv.Width, tv.Width)
	}

	if !b.CyclicCombinational && b.Graph.ReachableAvoidingDelay(target, source) {
		return fmt.Errorf("Feedback(%d -> %d): %w", source, target, ErrUnguardedFeedback)
	}

	_, err := b.Graph.AddEdgeToExistingTarget(hgraph.FeedbackLabel[V](sv.Width), []hgraph.VertexID{source}, target)
	return err
}

// RegisterGuardedFeedback closes prevWire (a wire allocated by UseWire and
// already used as a consumer, acting as a 1-cycle register's current-state
// output) with a DELAY(1) edge from newValue carrying initial as the
// register's state before the first cycle runs — semantically a 1-cycle
// register with an initial value.
//
// Unlike plain Feedback, no realisability check is needed: the DELAY edge
// itself is the loop-breaker.
func (b *Builder[V]) RegisterGuardedFeedback(newValue, prevWire hgraph.VertexID, initial signal.Signal[V], signed bool) error {
	sv, ok := b.Graph.Vertex(newValue)
	if !ok {
		return hgraph.NewIncompatibleParameter(hgraph.KindOwner, "register new-value %d not found", newValue)
	}
	tv, ok := b.Graph.Vertex(prevWire)
	if !ok {
		return hgraph.NewIncompatibleParameter(hgraph.KindOwner, "register prev-wire %d not found", prevWire)
	}
	if sv.Width != tv.Width || sv.Width != initial.Width() {
		return hgraph.NewIncompatibleParameter(hgraph.KindWidth, "register width mismatch: new_value=%d prev_wire=%d initial=%d", sv.Width, tv.Width, initial.Width())
	}

	_, err := b.Graph.AddEdgeToExistingTarget(
		hgraph.DelayLabelWithInitial[V](1, initial, signed),
		[]hgraph.VertexID{newValue},
		prevWire,
	)
	return err
}

// MakeSubcircuit seals the graph built so far into an InterfacedHypergraph
// with the given ordered input/output interface wires and name. The
// Builder's CyclicCombinational flag carries over.
func (b *Builder[V]) MakeSubcircuit(inputs, outputs []hgraph.VertexID, name string) (*hgraph.InterfacedHypergraph[V], error) {
	ihg, err := hgraph.NewInterfacedHypergraph[V](b.Graph, inputs, outputs, name)
	if err != nil {
		return nil, err
	}
	ihg.CyclicCombinational = b.CyclicCombinational
	if err := ihg.Validate(); err != nil {
		return nil, err
	}
	return ihg, nil
}

// UseSubcircuit instantiates sub as a COMPOSITE edge consuming inputs,
// returning its output vertices. Widths must match sub's interfaces exactly.
func (b *Builder[V]) UseSubcircuit(sub *hgraph.InterfacedHypergraph[V], inputs []hgraph.VertexID) ([]hgraph.VertexID, error) {
	return b.Graph.AddEdge(hgraph.CompositeLabel[V](sub), inputs)
}
