// File: inline.go
// Role: COMPOSITE edge flattening. Every construction in package construct
// (Map, Ripple, BitwiseMap, ...) wires its replicated copies through
// hbuilder.UseSubcircuit, i.e. COMPOSITE edges referencing a shared
// InterfacedHypergraph template. The rewrite engine's rule set (package
// rewrite) only ever fires on PRIMITIVE/ENHANCED_PRIMITIVE/BUNDLER/BLACKBOX/
// JOIN/FEEDBACK labels, so a COMPOSITE edge is not itself rewritable — it
// must first be spliced into its host graph as a fresh copy of the
// referenced subgraph's internals. This is the evaluator's normalization
// into evaluation form, but lives here since only package hgraph can reach
// into the arena's private fields.
package hgraph

// InlineComposite splices the single COMPOSITE edge e into its host graph h,
// replacing it with a fresh copy (new vertex/edge ids) of the referenced
// subgraph's internals. The composite's own source vertices are identified
// with the subgraph's input interface wires (no new vertex is allocated for
// them — anything the subgraph's internals read from its own inputs reads
// the host's real incoming value), and the composite's own target vertices
// are identified with the subgraph's output interface wires (the edge that
// produced each inside the subgraph becomes the producer of the host target
// directly, rather than of a fresh intermediate vertex). Every other
// internal subgraph vertex gets a fresh host wire of the same width.
//
// sub.Graph is only ever read, never mutated, so inlining the same COMPOSITE
// template at multiple call sites (as Map/BitwiseMap do, once per copy) is
// safe: each call produces its own independent copy.
func (h *Hypergraph[V]) InlineComposite(e EdgeID) error {
	edge, ok := h.edges[e]
	if !ok {
		return NewIncompatibleParameter(KindOutEdges, "InlineComposite: edge %d not found", e)
	}
	if edge.Label.Kind != LabelComposite {
		return NewIncompatibleParameter(KindOwner, "InlineComposite: edge %d is not COMPOSITE", e)
	}
	sub := edge.Label.Composite()
	hostSources := append([]VertexID(nil), edge.Sources...)
	hostTargets := append([]VertexID(nil), edge.Targets...)

	vmap := make(map[VertexID]VertexID, len(sub.Graph.vertices))
	for i, sid := range sub.Inputs {
		vmap[sid] = hostSources[i]
	}
	for i, sid := range sub.Outputs {
		vmap[sid] = hostTargets[i]
	}
	for _, sid := range sub.Graph.VertexIDs() {
		if _, already := vmap[sid]; already {
			continue
		}
		sv := sub.Graph.vertices[sid]
		nid := VertexID(nextID())
		h.vertices[nid] = &Vertex{ID: nid, Width: sv.Width, InEdge: noEdge, outEdges: make(map[EdgeID]struct{})}
		vmap[sid] = nid
	}

	// Detach the composite edge: this clears hostTargets' InEdge back to
	// noEdge, ready to receive the remapped producing edge below.
	if err := h.RemoveEdge(e); err != nil {
		return err
	}

	for _, seid := range sub.Graph.EdgeIDs() {
		sedge := sub.Graph.edges[seid]

		newSources := make([]VertexID, len(sedge.Sources))
		for i, s := range sedge.Sources {
			newSources[i] = vmap[s]
		}
		newTargets := make([]VertexID, len(sedge.Targets))
		for i, t := range sedge.Targets {
			newTargets[i] = vmap[t]
		}

		neid := EdgeID(nextID())
		h.edges[neid] = &Edge[V]{ID: neid, Label: sedge.Label, Sources: newSources, Targets: newTargets}
		for _, s := range newSources {
			if sv, ok := h.vertices[s]; ok {
				sv.outEdges[neid] = struct{}{}
			}
		}
		for _, t := range newTargets {
			if tv, ok := h.vertices[t]; ok {
				tv.InEdge = neid
			}
		}
	}

	return nil
}

// InlineAllComposites repeatedly inlines every COMPOSITE edge present in h
// until none remain — a composite's own internals may themselves contain
// further COMPOSITE edges (a subcircuit built from subcircuits), so one pass
// is not always enough. Terminates because each inlining strictly reduces
// the number of COMPOSITE edges reachable from the original top-level graph
// (subgraph definitions form a DAG: a circuit is never a COMPOSITE reference
// to itself).
func (h *Hypergraph[V]) InlineAllComposites() error {
	for {
		found := false
		for _, eid := range h.EdgeIDs() {
			edge, ok := h.Edge(eid)
			if !ok {
				continue
			}
			if edge.Label.Kind == LabelComposite {
				if err := h.InlineComposite(eid); err != nil {
					return err
				}
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
}
