package rewrite

import (
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/value"
)

// ElementKind discriminates TraversalElement's two variants.
type ElementKind int

const (
	// EdgeElem carries a candidate edge to dispatch against the rule set.
	EdgeElem ElementKind = iota
	// VertexElem marks a vertex; Engine.Run skips any VertexElem it
	// dequeues without dispatching it to a rule.
	VertexElem
)

// TraversalElement is the work-queue element: EDGE(e) | VERTEX(v).
type TraversalElement struct {
	Kind   ElementKind
	Edge   hgraph.EdgeID
	Vertex hgraph.VertexID
}

// OfEdge wraps an edge id as a TraversalElement.
func OfEdge(e hgraph.EdgeID) TraversalElement { return TraversalElement{Kind: EdgeElem, Edge: e} }

// OfVertex wraps a vertex id as a TraversalElement.
func OfVertex(v hgraph.VertexID) TraversalElement {
	return TraversalElement{Kind: VertexElem, Vertex: v}
}

// enqueueConsumers returns an EdgeElem for every edge that consumes any of
// the given vertices, the standard "replacements" a rule hands back after
// resolving those vertices to leaf values.
func enqueueConsumers[V value.Value](g *hgraph.Hypergraph[V], targets []hgraph.VertexID) []TraversalElement {
	var out []TraversalElement
	for _, t := range targets {
		v, ok := g.Vertex(t)
		if !ok {
			continue
		}
		for _, e := range v.OutEdges() {
			out = append(out, OfEdge(e))
		}
	}
	return out
}
