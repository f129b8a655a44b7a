// File: interfaced.go
// Role: InterfacedHypergraph — a Hypergraph plus ordered input/output
// interface wires and a name, and the structural invariant checks
// (single in-edge, DAG-after-delay-removal, port width matching).
package hgraph

import "github.com/wireforge/hypercircuit/value"

// InterfacedHypergraph pairs a Hypergraph arena with an ordered list of
// input interface wires and output interface wires, and a name. The
// "arity" and "coarity" of the subgraph are the interface sizes.
type InterfacedHypergraph[V value.Value] struct {
	Graph   *Hypergraph[V]
	Inputs  []VertexID
	Outputs []VertexID
	Name    string

	// CyclicCombinational, when true, exempts this graph from the
	// DAG-after-delay-removal invariant: it is a declared combinational
	// loop.
	CyclicCombinational bool
}

// NewInterfacedHypergraph wraps an existing arena with interface wire
// lists. Every id in inputs/outputs must already exist in graph.
func NewInterfacedHypergraph[V value.Value](graph *Hypergraph[V], inputs, outputs []VertexID, name string) (*InterfacedHypergraph[V], error) {
	for _, id := range inputs {
		if _, ok := graph.Vertex(id); !ok {
			return nil, NewIncompatibleParameter(KindWires, "input interface wire %d not in graph", id)
		}
	}
	for _, id := range outputs {
		if _, ok := graph.Vertex(id); !ok {
			return nil, NewIncompatibleParameter(KindWires, "output interface wire %d not in graph", id)
		}
	}
	return &InterfacedHypergraph[V]{
		Graph:   graph,
		Inputs:  append([]VertexID(nil), inputs...),
		Outputs: append([]VertexID(nil), outputs...),
		Name:    name,
	}, nil
}

// Arity is the number of input interface wires.
func (g *InterfacedHypergraph[V]) Arity() int { return len(g.Inputs) }

// Coarity is the number of output interface wires.
func (g *InterfacedHypergraph[V]) Coarity() int { return len(g.Outputs) }

// InputWidths returns the bit widths of the input interface wires in order.
func (g *InterfacedHypergraph[V]) InputWidths() []int {
	return g.widthsOf(g.Inputs)
}

// OutputWidths returns the bit widths of the output interface wires in
// order.
func (g *InterfacedHypergraph[V]) OutputWidths() []int {
	return g.widthsOf(g.Outputs)
}

func (g *InterfacedHypergraph[V]) widthsOf(ids []VertexID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		if v, ok := g.Graph.Vertex(id); ok {
			out[i] = v.Width
		}
	}
	return out
}

func (g *InterfacedHypergraph[V]) isInput(id VertexID) bool {
	for _, in := range g.Inputs {
		if in == id {
			return true
		}
	}
	return false
}

func (g *InterfacedHypergraph[V]) isOutput(id VertexID) bool {
	for _, out := range g.Outputs {
		if out == id {
			return true
		}
	}
	return false
}

func (g *InterfacedHypergraph[V]) isInterface(id VertexID) bool {
	return g.isInput(id) || g.isOutput(id)
}

// Validate checks the structural invariants:
//  1. every non-interface vertex has exactly one incoming edge;
//  2. an interface input vertex has no incoming edge;
//  3. an interface output vertex has no outgoing edge;
//  4. the graph with DELAY edges removed is a DAG, unless
//     CyclicCombinational is set.
func (g *InterfacedHypergraph[V]) Validate() error {
	for _, id := range g.Graph.VertexIDs() {
		v, _ := g.Graph.Vertex(id)
		switch {
		case g.isInput(id):
			if v.HasInEdge() {
				return NewIncompatibleParameter(KindInEdges, "input interface wire %d has a producer", id)
			}
		case g.isOutput(id):
			if !v.HasInEdge() {
				return ErrMissingInEdge
			}
			if len(v.OutEdges()) != 0 {
				return NewIncompatibleParameter(KindOutEdges, "output interface wire %d has outgoing edges", id)
			}
		default:
			if !v.HasInEdge() {
				return ErrMissingInEdge
			}
		}
	}

	if !g.CyclicCombinational {
		if cyc := g.Graph.HasCycleIgnoringDelay(); cyc {
			return NewIncompatibleParameter(KindInstantFeedback, "graph has a delay-free cycle")
		}
	}

	return nil
}

// ReachableAvoidingDelay delegates to Graph.ReachableAvoidingDelay; kept
// here too since callers already holding an InterfacedHypergraph reach for
// it by that name.
func (g *InterfacedHypergraph[V]) ReachableAvoidingDelay(from, to VertexID) bool {
	return g.Graph.ReachableAvoidingDelay(from, to)
}
