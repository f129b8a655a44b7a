// File: reachability.go
// Role: graph-shape queries used by the DAG invariant (Validate) and by
// package hbuilder's feedback realisability guard — both ignore DELAY
// edges, since delays are the only permissible loop-breakers.
package hgraph

// HasCycleIgnoringDelay reports whether the graph, with every DELAY-labeled
// edge removed, contains a directed cycle (vertex -> consuming edge's
// targets -> ...).
func (h *Hypergraph[V]) HasCycleIgnoringDelay() bool {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := make(map[VertexID]int)

	var visit func(id VertexID) bool
	visit = func(id VertexID) bool {
		color[id] = grey
		if v, ok := h.Vertex(id); ok {
			for _, eid := range v.OutEdges() {
				e, ok := h.Edge(eid)
				if !ok || e.Label.Kind == LabelDelay {
					continue
				}
				for _, tid := range e.Targets {
					switch color[tid] {
					case white:
						if visit(tid) {
							return true
						}
					case grey:
						return true
					}
				}
			}
		}
		color[id] = black
		return false
	}

	for _, id := range h.VertexIDs() {
		if color[id] == white {
			if visit(id) {
				return true
			}
		}
	}
	return false
}

// ReachableAvoidingDelay reports whether to is reachable from from by
// following only non-DELAY edges forward (source -> target).
func (h *Hypergraph[V]) ReachableAvoidingDelay(from, to VertexID) bool {
	if from == to {
		return true
	}
	visited := map[VertexID]bool{from: true}
	queue := []VertexID{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		v, ok := h.Vertex(id)
		if !ok {
			continue
		}
		for _, eid := range v.OutEdges() {
			e, ok := h.Edge(eid)
			if !ok || e.Label.Kind == LabelDelay {
				continue
			}
			for _, tid := range e.Targets {
				if tid == to {
					return true
				}
				if !visited[tid] {
					visited[tid] = true
					queue = append(queue, tid)
				}
			}
		}
	}
	return false
}
