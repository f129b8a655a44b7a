// Package evaluator implements the cycle-driven evaluator: it normalizes
// an hgraph.InterfacedHypergraph into evaluation form (COMPOSITE edges
// flattened, one DELAY layer separating combinational logic from state),
// then runs package rewrite's engine once per clock cycle over a fresh
// working copy of that graph, seeded with an ARGUMENT edge per input
// interface wire and per held delay state.
//
// Why rebuild the working graph every cycle rather than mutate one graph in
// place across cycles? Rewriting is destructive — primitive/join/bottom
// firings replace an edge with a concrete leaf (package rewrite's
// replaceWithLeaf) — so the combinational structure cannot be replayed a
// second time once rewritten. hgraph.Hypergraph.Clone (preserving vertex
// and edge ids exactly) gives each cycle its own disposable copy while
// DELAY edges still identify the same logical state-holding wires across
// cycles.
//
// A StepBudgetExceeded failure is not fatal to the Evaluator: the
// partially-rewritten working graph is retained so a caller can call
// RetryWithBudget with a larger budget and continue from where the engine
// left off.
package evaluator
