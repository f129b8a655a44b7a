package rewrite

import (
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/value"
)

// InsertForks implements the fork discipline: before rewriting,
// every vertex consumed by more than one edge is given a single BUNDLER
// identity fan-out (in=[width], out=[width,width,...]) whose outputs
// replace the vertex as each original consumer's source in turn, so that
// by the time the apply/join/bottom rules run, every source vertex has
// exactly one consumer.
//
// Vertices that are themselves a fork's own output are never re-forked in
// the same pass (each vertex is visited once, against the out-edge set it
// had when InsertForks started).
func InsertForks[V value.Value](g *hgraph.Hypergraph[V]) error {
	for _, vid := range g.VertexIDs() {
		v, ok := g.Vertex(vid)
		if !ok {
			continue
		}
		consumers := v.OutEdges()
		if len(consumers) < 2 {
			continue
		}

		outArities := make([]int, len(consumers))
		for i := range outArities {
			outArities[i] = v.Width
		}
		forkOutputs, err := g.AddEdge(hgraph.BundlerLabel[V]([]int{v.Width}, outArities), []hgraph.VertexID{vid})
		if err != nil {
			return err
		}

		for i, eid := range consumers {
			edge, ok := g.Edge(eid)
			if !ok {
				continue
			}
			for j, src := range edge.Sources {
				if src == vid {
					if err := g.ReplaceSource(eid, j, forkOutputs[i]); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
