// File: variable.go
// Role: VariableSignal[V] — a per-bit symbolic value closing over an
// assignment of named free variables, used for partial/symbolic evaluation.
package signal

import (
	"fmt"

	"github.com/wireforge/hypercircuit/value"
)

// VarID names a free variable in a symbolic evaluation.
type VarID string

// Assignment maps free variables to concrete values, closing a
// VariableSignal down to a concrete Signal.
type Assignment[V value.Value] map[VarID]V

// BitFunc computes one bit of a VariableSignal from a (total) Assignment.
// It must retain a strong reference to whatever dependent-variable table it
// closes over; VariableSignal tracks the variable-id set explicitly
// alongside it rather than relying on the closure's captured state.
type BitFunc[V value.Value] func(Assignment[V]) V

// VariableSignal represents a signal whose bits are not yet concrete: each
// bit position is a function from a variable assignment to a value, and the
// signal as a whole depends on the union of variables referenced by any bit.
type VariableSignal[V value.Value] struct {
	vars     []VarID
	bitFuncs []BitFunc[V]
}

// NewVariableSignal builds a VariableSignal from its dependent-variable set
// and one BitFunc per bit position (bitFuncs[0] computes the LSB).
func NewVariableSignal[V value.Value](vars []VarID, bitFuncs []BitFunc[V]) VariableSignal[V] {
	return VariableSignal[V]{
		vars:     append([]VarID(nil), vars...),
		bitFuncs: append([]BitFunc[V](nil), bitFuncs...),
	}
}

// Vars returns the set of variables this signal's bits may depend on.
func (vs VariableSignal[V]) Vars() []VarID { return append([]VarID(nil), vs.vars...) }

// Width returns the number of bit positions.
func (vs VariableSignal[V]) Width() int { return len(vs.bitFuncs) }

// Close evaluates every bit under a total assignment, producing a concrete
// Signal. Fails if assignment omits a variable this signal depends on.
func (vs VariableSignal[V]) Close(assignment Assignment[V]) (Signal[V], error) {
	for _, v := range vs.vars {
		if _, ok := assignment[v]; !ok {
			return Signal[V]{}, fmt.Errorf("VariableSignal.Close: assignment missing variable %q", v)
		}
	}
	bits := make([]V, len(vs.bitFuncs))
	for i, f := range vs.bitFuncs {
		bits[i] = f(assignment)
	}
	return Signal[V]{bits: bits}, nil
}

// EnumerateOver closes vs under every total assignment obtainable by
// combining the given domain across its dependent variables, returning the
// distinct concrete signals reached. Used by the rewrite engine's PARTIAL
// apply rule to detect the singleton case (collapse to DEFINITE).
//
// Complexity: O(|domain|^|vars|) — acceptable because signatures carry
// small finite lattices and rewrite rules only call this for the handful of
// variables actually touching one primitive application.
func (vs VariableSignal[V]) EnumerateOver(domain []V) []Signal[V] {
	if len(vs.vars) == 0 {
		sig, err := vs.Close(Assignment[V]{})
		if err != nil {
			return nil
		}
		return []Signal[V]{sig}
	}

	var distinct []Signal[V]
	seen := make(map[string]struct{})
	assignment := make(Assignment[V], len(vs.vars))

	var recurse func(idx int)
	recurse = func(idx int) {
		if idx == len(vs.vars) {
			sig, err := vs.Close(assignment)
			if err != nil {
				return
			}
			key := sig.String()
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				distinct = append(distinct, sig)
			}
			return
		}
		for _, d := range domain {
			assignment[vs.vars[idx]] = d
			recurse(idx + 1)
		}
	}
	recurse(0)
	return distinct
}
