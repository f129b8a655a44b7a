// File: lattice.go
// Role: FiniteLattice over a user-supplied carrier set and LessEq relation.
// Determinism: join/meet tables are computed once at construction and cached;
// lookups thereafter are O(1) map reads.
package value

import "fmt"

// Value is the capability bound required of a signature's value type. It
// must be usable as a map key (equality + hashing for free via Go's built-in
// comparable constraint) and printable for diagnostics and waveform
// rendering collaborators.
type Value interface {
	comparable
	fmt.Stringer
}

// Lattice is a finite lattice over carrier V: a partial order with a unique
// minimum (Bottom), a unique maximum (Top), and a pairwise least upper bound
// (Join) / greatest lower bound (Meet), both precomputed at construction.
//
// Lattice is immutable after NewLattice returns and safe for concurrent
// reads from multiple evaluator instances.
type Lattice[V Value] struct {
	carrier []V
	lessEq  func(a, b V) bool
	joinTbl map[[2]V]V
	meetTbl map[[2]V]V
	bottom  V
	top     V
}

// NewLattice builds a Lattice from a finite carrier set and a LessEq
// relation. It fails with ErrEmptyCarrier if carrier is empty, and with
// ErrNotALattice if any pair lacks a unique least upper bound or greatest
// lower bound, or if the carrier lacks a unique minimum/maximum element.
//
// Complexity: O(n^3) where n = len(carrier) — for each of the O(n^2) pairs,
// finding the least upper bound scans the O(n) set of common upper bounds.
// Acceptable: signatures are small, finite value lattices (Belnap has 4
// elements; realistic multi-valued logics rarely exceed a few dozen).
func NewLattice[V Value](carrier []V, lessEq func(a, b V) bool) (*Lattice[V], error) {
	if len(carrier) == 0 {
		return nil, ErrEmptyCarrier
	}

	l := &Lattice[V]{
		carrier: append([]V(nil), carrier...),
		lessEq:  lessEq,
		joinTbl: make(map[[2]V]V, len(carrier)*len(carrier)),
		meetTbl: make(map[[2]V]V, len(carrier)*len(carrier)),
	}

	bottom, ok := l.uniqueExtremum(true)
	if !ok {
		return nil, fmt.Errorf("NewLattice: no unique minimum: %w", ErrNotALattice)
	}
	top, ok := l.uniqueExtremum(false)
	if !ok {
		return nil, fmt.Errorf("NewLattice: no unique maximum: %w", ErrNotALattice)
	}
	l.bottom = bottom
	l.top = top

	for _, a := range l.carrier {
		for _, b := range l.carrier {
			j, ok := l.leastUpperBound(a, b)
			if !ok {
				return nil, fmt.Errorf("NewLattice: join(%v,%v) undefined: %w", a, b, ErrNotALattice)
			}
			l.joinTbl[[2]V{a, b}] = j

			m, ok := l.greatestLowerBound(a, b)
			if !ok {
				return nil, fmt.Errorf("NewLattice: meet(%v,%v) undefined: %w", a, b, ErrNotALattice)
			}
			l.meetTbl[[2]V{a, b}] = m
		}
	}

	return l, nil
}

// uniqueExtremum returns the unique minimum (wantMin=true) or maximum
// (wantMin=false) element of the carrier, or ok=false if none is unique.
func (l *Lattice[V]) uniqueExtremum(wantMin bool) (V, bool) {
	var zero V
	var found V
	have := false
	for _, candidate := range l.carrier {
		isExtreme := true
		for _, other := range l.carrier {
			if wantMin {
				if !l.lessEq(candidate, other) {
					isExtreme = false
					break
				}
			} else {
				if !l.lessEq(other, candidate) {
					isExtreme = false
					break
				}
			}
		}
		if isExtreme {
			if have {
				return zero, false // more than one extremum: not unique
			}
			found = candidate
			have = true
		}
	}
	return found, have
}

// leastUpperBound finds the unique c in carrier such that a<=c, b<=c, and
// c<=d for every other upper bound d of {a,b}.
func (l *Lattice[V]) leastUpperBound(a, b V) (V, bool) {
	var zero V
	var best V
	have := false
	for _, c := range l.carrier {
		if !l.lessEq(a, c) || !l.lessEq(b, c) {
			continue
		}
		if !have {
			best = c
			have = true
			continue
		}
		switch {
		case l.lessEq(c, best) && l.lessEq(best, c):
			// equal bound under the order (carrier should be deduplicated,
			// but tolerate duplicate-valued entries).
		case l.lessEq(c, best):
			best = c
		case l.lessEq(best, c):
			// best remains the lesser upper bound
		default:
			// incomparable upper bounds: keep best; the check below
			// rejects it unless it is below every upper bound.
		}
	}
	if !have {
		return zero, false
	}
	// Verify best really is <= every upper bound found.
	for _, c := range l.carrier {
		if l.lessEq(a, c) && l.lessEq(b, c) && !l.lessEq(best, c) {
			return zero, false
		}
	}
	return best, true
}

// greatestLowerBound is the dual of leastUpperBound.
func (l *Lattice[V]) greatestLowerBound(a, b V) (V, bool) {
	var zero V
	var best V
	have := false
	for _, c := range l.carrier {
		if !l.lessEq(c, a) || !l.lessEq(c, b) {
			continue
		}
		if !have {
			best = c
			have = true
			continue
		}
		switch {
		case l.lessEq(best, c) && l.lessEq(c, best):
		case l.lessEq(best, c):
			best = c
		case l.lessEq(c, best):
		default:
			// incomparable lower bounds: keep best; the check below decides.
		}
	}
	if !have {
		return zero, false
	}
	for _, c := range l.carrier {
		if l.lessEq(c, a) && l.lessEq(c, b) && !l.lessEq(c, best) {
			return zero, false
		}
	}
	return best, true
}

// Join returns the least upper bound of a and b. Total: callers never need
// to handle failure, since NewLattice already verified every pair has one.
func (l *Lattice[V]) Join(a, b V) V { return l.joinTbl[[2]V{a, b}] }

// Meet returns the greatest lower bound of a and b.
func (l *Lattice[V]) Meet(a, b V) V { return l.meetTbl[[2]V{a, b}] }

// LessEq reports whether a <= b under the lattice order.
func (l *Lattice[V]) LessEq(a, b V) bool { return l.lessEq(a, b) }

// Bottom returns the lattice minimum, used by the evaluator as the
// "disconnected" value and for bottom-absorption.
func (l *Lattice[V]) Bottom() V { return l.bottom }

// Top returns the lattice maximum.
func (l *Lattice[V]) Top() V { return l.top }

// Carrier returns a defensive copy of the lattice's value set.
func (l *Lattice[V]) Carrier() []V { return append([]V(nil), l.carrier...) }
