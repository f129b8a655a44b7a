// Package signature binds a value lattice (package value) to a finite set
// of named primitive symbols and an interpretation function.
//
// A Signature is immutable after construction and may be shared by multiple
// hypergraphs and evaluator instances.
package signature
