// Package rewrite implements the rewrite engine: a FIFO work-queue
// traversal over a hgraph.Hypergraph's edges, dispatching each dequeued
// edge to the first matching Rule, and enqueueing the consumers of
// whatever new leaf vertices that rule produces.
//
// A source vertex is "ready" for the apply/join/bottom-absorption rules once
// its producing edge carries one of the leaf label kinds — ARGUMENT, VALUE,
// SIGNAL, PARTIAL, or INFINITE_WAVEFORM. ARGUMENT is how a fresh per-cycle
// input acquires such a label; propagation through a second layer of
// primitives reads the first layer's own SIGNAL/PARTIAL/INFINITE_WAVEFORM
// outputs the same way.
package rewrite
