// File: types.go
// Role: Vertex and Edge, the two arena-resident element types, plus the
// plain (non-interfaced) Hypergraph arena.
package hgraph

import (
	"sort"

	"github.com/wireforge/hypercircuit/value"
)

// Vertex is a wire: it owns its bit width, has at most one incoming edge
// (InEdge == noEdge means none yet — an orphan, or a declared interface
// input), and a set of outgoing edge connections.
type Vertex struct {
	ID       VertexID
	Width    int
	InEdge   EdgeID
	outEdges map[EdgeID]struct{}
}

// OutEdges returns the vertex's outgoing edge ids in ascending order
// (ascending id order is the arena's deterministic tie-break).
func (v *Vertex) OutEdges() []EdgeID {
	out := make([]EdgeID, 0, len(v.outEdges))
	for id := range v.outEdges {
		out = append(out, id)
	}
	sortEdgeIDs(out)
	return out
}

// HasInEdge reports whether the vertex currently has a producer.
func (v *Vertex) HasInEdge() bool { return v.InEdge != noEdge }

// Edge is a hyperedge: a label plus ordered source and target vertex
// sequences. Arity = len(Sources); coarity = len(Targets).
type Edge[V value.Value] struct {
	ID      EdgeID
	Label   EdgeLabel[V]
	Sources []VertexID
	Targets []VertexID
}

// Hypergraph is the arena owning a set of vertices and edges. It has no
// notion of "interface" on its own — that ordering and naming lives one
// level up in InterfacedHypergraph — so that a Hypergraph can be embedded
// as a COMPOSITE subgraph reference without entangling interface identity.
type Hypergraph[V value.Value] struct {
	vertices map[VertexID]*Vertex
	edges    map[EdgeID]*Edge[V]
}

// NewHypergraph returns an empty arena.
func NewHypergraph[V value.Value]() *Hypergraph[V] {
	return &Hypergraph[V]{
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[EdgeID]*Edge[V]),
	}
}

// Vertex looks up a vertex by id.
func (h *Hypergraph[V]) Vertex(id VertexID) (*Vertex, bool) {
	v, ok := h.vertices[id]
	return v, ok
}

// Edge looks up an edge by id.
func (h *Hypergraph[V]) Edge(id EdgeID) (*Edge[V], bool) {
	e, ok := h.edges[id]
	return e, ok
}

// VertexIDs returns every vertex id currently in the arena, sorted
// ascending for deterministic iteration.
func (h *Hypergraph[V]) VertexIDs() []VertexID {
	out := make([]VertexID, 0, len(h.vertices))
	for id := range h.vertices {
		out = append(out, id)
	}
	sortVertexIDs(out)
	return out
}

// EdgeIDs returns every edge id currently in the arena, sorted ascending.
func (h *Hypergraph[V]) EdgeIDs() []EdgeID {
	out := make([]EdgeID, 0, len(h.edges))
	for id := range h.edges {
		out = append(out, id)
	}
	sortEdgeIDs(out)
	return out
}

func sortVertexIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func sortEdgeIDs(ids []EdgeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
