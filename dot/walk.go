// File: walk.go
// Role: a streaming walker over an hgraph.Hypergraph: it yields one Node
// per hyperedge, in ascending edge-id order, recursing into every
// COMPOSITE edge's embedded subgraph under its own subgraph id. It does not
// write DOT or any other file format — rendering stays external.
package dot

import (
	"fmt"

	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/value"
)

// Node is one tuple of the streaming walk:
// (node id, label text, in ids, out ids, optional subgraph id).
type Node struct {
	ID         string
	Label      string
	InIDs      []string
	OutIDs     []string
	SubgraphID string // empty at the top level
}

// Yield receives one Node at a time. Returning false stops the walk early.
type Yield func(Node) bool

// Walk streams every edge of g (and, recursively, every edge of every
// COMPOSITE edge's embedded subgraph) to yield in ascending edge-id order
// at each nesting level. subgraphID is the id to attach to g's own nodes;
// pass "" for a top-level call.
func Walk[V value.Value](g *hgraph.Hypergraph[V], subgraphID string, yield Yield) bool {
	for _, eid := range g.EdgeIDs() {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		node := Node{
			ID:         fmt.Sprintf("e%d", eid),
			Label:      LabelText(e.Label),
			InIDs:      vertexIDStrings(e.Sources),
			OutIDs:     vertexIDStrings(e.Targets),
			SubgraphID: subgraphID,
		}
		if !yield(node) {
			return false
		}
		if e.Label.Kind == hgraph.LabelComposite {
			sub := e.Label.Composite()
			childID := fmt.Sprintf("%se%d_%s", subgraphPrefix(subgraphID), eid, sub.Name)
			if !Walk(sub.Graph, childID, yield) {
				return false
			}
		}
	}
	return true
}

func subgraphPrefix(id string) string {
	if id == "" {
		return ""
	}
	return id + "/"
}

func vertexIDStrings(ids []hgraph.VertexID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("v%d", id)
	}
	return out
}

// Collect runs Walk and returns every Node in order — a convenience for
// callers (tests, small tools) that want a slice rather than a callback.
func Collect[V value.Value](g *hgraph.Hypergraph[V]) []Node {
	var nodes []Node
	Walk(g, "", func(n Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
