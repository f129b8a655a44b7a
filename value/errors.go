package value

import "errors"

// ErrNotALattice indicates the supplied carrier set and LessEq relation do
// not form a lattice: either some pair lacks a unique least upper bound or
// greatest lower bound, or the carrier has no unique minimum/maximum.
//
// Usage: if errors.Is(err, ErrNotALattice) { /* reject the signature */ }.
var ErrNotALattice = errors.New("value: not a lattice")

// ErrEmptyCarrier indicates a lattice was constructed over an empty set of
// values; a lattice requires at least one element (its own minimum/maximum).
var ErrEmptyCarrier = errors.New("value: empty carrier set")
