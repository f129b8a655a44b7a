// File: graph.go
// Role: arena mutation — AddWire, AddEdge, RemoveEdge, SetInEdge — with
// width/shape validation performed at construction time.
package hgraph

// AddWire allocates a free wire of the given width: an interface input, or
// an internal source not yet connected to a producer. Fails
// IncompatibleParameter(width) if width < 1.
func (h *Hypergraph[V]) AddWire(width int) (VertexID, error) {
	if width < 1 {
		return 0, NewIncompatibleParameter(KindWidth, "wire width %d < 1", width)
	}
	id := VertexID(nextID())
	h.vertices[id] = &Vertex{ID: id, Width: width, InEdge: noEdge, outEdges: make(map[EdgeID]struct{})}
	return id, nil
}

// AddEdge creates a new hyperedge carrying label, consuming the given
// ordered source vertices, and producing freshly allocated target vertices
// whose widths are dictated by label.OutPortWidths(). It validates:
//
//   - len(sources) == len(label.InPortWidths())            (IncompatibleParameter(inputs))
//   - every source vertex exists in this arena               (IncompatibleParameter(owner))
//   - width(sources[i]) == label.InPortWidths()[i]            (IncompatibleParameter(width))
//   - every source vertex has no more than one consumer unless the caller
//     has already forked it (hgraph does not enforce the fork discipline
//     itself — that is package rewrite's job; multiple consumers are
//     permitted at the arena level, since ordinary construction legitimately
//     fans a wire out to several primitives before any rewriting begins).
//
// On success, returns the newly created target vertex ids in order.
func (h *Hypergraph[V]) AddEdge(label EdgeLabel[V], sources []VertexID) ([]VertexID, error) {
	inWidths := label.InPortWidths()
	if len(sources) != len(inWidths) {
		return nil, NewIncompatibleParameter(KindInputs, "edge %s expects %d inputs, got %d", label.Kind, len(inWidths), len(sources))
	}

	srcVerts := make([]*Vertex, len(sources))
	for i, sid := range sources {
		sv, ok := h.vertices[sid]
		if !ok {
			return nil, NewIncompatibleParameter(KindOwner, "source vertex %d not owned by this hypergraph", sid)
		}
		if sv.Width != inWidths[i] {
			return nil, NewIncompatibleParameter(KindWidth, "source %d width %d, want %d", i, sv.Width, inWidths[i])
		}
		srcVerts[i] = sv
	}

	outWidths := label.OutPortWidths()
	eid := EdgeID(nextID())
	targets := make([]VertexID, len(outWidths))
	for i, w := range outWidths {
		tid := VertexID(nextID())
		h.vertices[tid] = &Vertex{ID: tid, Width: w, InEdge: eid, outEdges: make(map[EdgeID]struct{})}
		targets[i] = tid
	}

	h.edges[eid] = &Edge[V]{ID: eid, Label: label, Sources: sources, Targets: targets}
	for _, sv := range srcVerts {
		sv.outEdges[eid] = struct{}{}
	}

	return targets, nil
}

// RemoveEdge detaches and deletes an edge: it is removed from every source
// vertex's outgoing set, and every target vertex loses its in-edge (becomes
// noEdge). The caller is responsible for replacing a target's producer
// afterward (the rewrite engine always does, immediately, as part of the
// same rule firing).
func (h *Hypergraph[V]) RemoveEdge(id EdgeID) error {
	e, ok := h.edges[id]
	if !ok {
		return NewIncompatibleParameter(KindOutEdges, "edge %d not found", id)
	}
	for _, sid := range e.Sources {
		if sv, ok := h.vertices[sid]; ok {
			delete(sv.outEdges, id)
		}
	}
	for _, tid := range e.Targets {
		if tv, ok := h.vertices[tid]; ok {
			tv.InEdge = noEdge
		}
	}
	delete(h.edges, id)
	return nil
}

// SetInEdge rebinds vertex v's in-edge to e, used by the rewrite engine when
// a rule replaces the producer of a wire (e.g. feedback resolution rebinds
// a target to its feedback source's current in-edge).
func (h *Hypergraph[V]) SetInEdge(v VertexID, e EdgeID) error {
	vv, ok := h.vertices[v]
	if !ok {
		return NewIncompatibleParameter(KindWires, "vertex %d not found", v)
	}
	vv.InEdge = e
	return nil
}

// AddOutEdge records that vertex v is consumed by edge e, used when the
// rewrite engine rewires an existing vertex into a newly created edge's
// source list without going through AddEdge (e.g. fork insertion reuses the
// original source vertex as the fork's single input).
func (h *Hypergraph[V]) AddOutEdge(v VertexID, e EdgeID) error {
	vv, ok := h.vertices[v]
	if !ok {
		return NewIncompatibleParameter(KindWires, "vertex %d not found", v)
	}
	vv.outEdges[e] = struct{}{}
	return nil
}

// RemoveOutEdge is the inverse of AddOutEdge.
func (h *Hypergraph[V]) RemoveOutEdge(v VertexID, e EdgeID) {
	if vv, ok := h.vertices[v]; ok {
		delete(vv.outEdges, e)
	}
}

// ReplaceSource rewires consumer edge e's source at position i from its
// current vertex to newSource, used by the rewrite engine's fork-discipline
// pass to redirect a shared wire's consumers onto distinct fork outputs.
// Fails IncompatibleParameter(width) if newSource's width does not match
// the source it replaces.
func (h *Hypergraph[V]) ReplaceSource(e EdgeID, i int, newSource VertexID) error {
	edge, ok := h.edges[e]
	if !ok {
		return NewIncompatibleParameter(KindOutEdges, "edge %d not found", e)
	}
	if i < 0 || i >= len(edge.Sources) {
		return NewIncompatibleParameter(KindInputs, "edge %d has no source index %d", e, i)
	}
	oldSource := edge.Sources[i]

	oldV, ok := h.vertices[oldSource]
	if !ok {
		return NewIncompatibleParameter(KindOwner, "source vertex %d not owned by this hypergraph", oldSource)
	}
	newV, ok := h.vertices[newSource]
	if !ok {
		return NewIncompatibleParameter(KindOwner, "source vertex %d not owned by this hypergraph", newSource)
	}
	if oldV.Width != newV.Width {
		return NewIncompatibleParameter(KindWidth, "replacement source width %d != %d", newV.Width, oldV.Width)
	}

	delete(oldV.outEdges, e)
	newV.outEdges[e] = struct{}{}
	edge.Sources[i] = newSource
	return nil
}

// AddEdgeToExistingTarget creates a new hyperedge carrying label (which
// must declare exactly one output port) whose single target is an existing,
// as-yet-producer-less vertex rather than a freshly allocated one. This is
// how a FEEDBACK or initial-state DELAY edge "closes" a wire that was
// allocated earlier (via AddWire) and used as a consumer throughout the
// rest of the circuit before its producer was known — the feedback and
// guarded-register idiom in package hbuilder.
//
// Fails IncompatibleParameter(outputs) if label does not declare exactly
// one output port, IncompatibleParameter(width) on a width mismatch, and
// IncompatibleParameter(in-edges) if target already has a producer.
func (h *Hypergraph[V]) AddEdgeToExistingTarget(label EdgeLabel[V], sources []VertexID, target VertexID) (EdgeID, error) {
	inWidths := label.InPortWidths()
	if len(sources) != len(inWidths) {
		return 0, NewIncompatibleParameter(KindInputs, "edge %s expects %d inputs, got %d", label.Kind, len(inWidths), len(sources))
	}
	outWidths := label.OutPortWidths()
	if len(outWidths) != 1 {
		return 0, NewIncompatibleParameter(KindOutputs, "edge %s must declare exactly one output, has %d", label.Kind, len(outWidths))
	}

	srcVerts := make([]*Vertex, len(sources))
	for i, sid := range sources {
		sv, ok := h.vertices[sid]
		if !ok {
			return 0, NewIncompatibleParameter(KindOwner, "source vertex %d not owned by this hypergraph", sid)
		}
		if sv.Width != inWidths[i] {
			return 0, NewIncompatibleParameter(KindWidth, "source %d width %d, want %d", i, sv.Width, inWidths[i])
		}
		srcVerts[i] = sv
	}

	tv, ok := h.vertices[target]
	if !ok {
		return 0, NewIncompatibleParameter(KindOwner, "target vertex %d not owned by this hypergraph", target)
	}
	if tv.HasInEdge() {
		return 0, NewIncompatibleParameter(KindInEdges, "target vertex %d already has a producer", target)
	}
	if tv.Width != outWidths[0] {
		return 0, NewIncompatibleParameter(KindWidth, "target width %d, want %d", tv.Width, outWidths[0])
	}

	eid := EdgeID(nextID())
	h.edges[eid] = &Edge[V]{ID: eid, Label: label, Sources: sources, Targets: []VertexID{target}}
	for _, sv := range srcVerts {
		sv.outEdges[eid] = struct{}{}
	}
	tv.InEdge = eid

	return eid, nil
}
