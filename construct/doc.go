// Package construct implements the structural constructions: Map,
// BitwiseMap, Ripple, RippleMap, BitwiseRipple, and BitwiseRippleMap. Each
// takes a fixed "operation" subcircuit f (an *hgraph.InterfacedHypergraph)
// and a declared number of operations n, and builds a new subcircuit that
// replicates f across width, optionally threading an accumulator, using a
// github.com/wireforge/hypercircuit/hbuilder.Builder to wire the copies
// together.
//
// Ordering convention: Map presents the n copies' ports copy-major — copy
// 0's full port list, then copy 1's, and so on — rather than port-major;
// this is the simplest "n copies side by side" layout. BitwiseMap instead
// keeps f's port count and splits/merges each unshared wire bit-interleaved
// across the copies.
package construct
