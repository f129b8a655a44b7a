// Package hbuilder is the circuit builder API: a thin, validated façade
// over package hgraph's arena that exposes UseWire, UseEdge, Feedback,
// RegisterGuardedFeedback, MakeSubcircuit and UseSubcircuit.
//
// Design contract:
//   - One Builder per InterfacedHypergraph under construction; MakeSubcircuit
//     seals it into an immutable InterfacedHypergraph.
//   - Every method validates parameters up front and returns sentinel/typed
//     errors; none panics.
//   - Width and shape checks happen at construction time, failing with an
//     IncompatibleParameter error whose message identifies which parameter
//     kind mismatched.
package hbuilder
