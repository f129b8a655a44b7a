// Package hgraph implements the interfaced-hypergraph intermediate
// representation: Vertex (wire), EdgeLabel (the 13-case tagged union
// VALUE/SIGNAL/PARTIAL/INFINITE_WAVEFORM/PRIMITIVE/ENHANCED_PRIMITIVE/
// JOIN/BUNDLER/DELAY/FEEDBACK/BLACKBOX/COMPOSITE/ARGUMENT), Edge, and
// InterfacedHypergraph.
//
// Why an arena with integer handles?
//
//   - Vertices and edges never move once created; VertexID/EdgeID are
//     stable, comparable, hashable handles, generated from one global
//     monotone counter — the only process-wide state in the module.
//   - Ownership is one-to-one: a vertex or edge lives in exactly one
//     Hypergraph's arena. Sharing across subgraphs happens only through a
//     COMPOSITE edge label referencing another InterfacedHypergraph by
//     value, never by borrowing internals.
//   - Rewrites mutate the arena in place (replace an edge's label,
//     retarget a vertex's in-edge) rather than rebuilding immutable trees,
//     which keeps the rewrite engine (package rewrite) a simple
//     queue-driven state machine.
//
// Concurrency: Hypergraph carries no locks. Evaluation is single-threaded
// and cooperative with deterministic FIFO ordering; a Hypergraph is owned
// by exactly one goroutine for its entire lifetime.
package hgraph
