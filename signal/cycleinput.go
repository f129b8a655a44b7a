// File: cycleinput.go
// Role: CycleInput[V] — the per-tick value fed into an input interface wire:
// either a concrete Signal or a symbolic VariableSignal.
package signal

import "github.com/wireforge/hypercircuit/value"

// CycleInputKind tags which variant a CycleInput holds.
type CycleInputKind int

const (
	// Definite means the cycle input carries a concrete Signal.
	Definite CycleInputKind = iota
	// Partial means the cycle input carries a symbolic VariableSignal.
	Partial
)

// CycleInput is the tagged union
// DEFINITE(Signal) | PARTIAL(VariableSignal).
type CycleInput[V value.Value] struct {
	kind     CycleInputKind
	definite Signal[V]
	partial  VariableSignal[V]
}

// DefiniteInput wraps a concrete Signal as a CycleInput.
func DefiniteInput[V value.Value](s Signal[V]) CycleInput[V] {
	return CycleInput[V]{kind: Definite, definite: s}
}

// PartialInput wraps a VariableSignal as a CycleInput.
func PartialInput[V value.Value](vs VariableSignal[V]) CycleInput[V] {
	return CycleInput[V]{kind: Partial, partial: vs}
}

// Kind reports which variant ci holds.
func (ci CycleInput[V]) Kind() CycleInputKind { return ci.kind }

// IsDefinite reports whether ci holds a concrete Signal.
func (ci CycleInput[V]) IsDefinite() bool { return ci.kind == Definite }

// AsDefinite returns the concrete Signal and true if ci.Kind() == Definite.
func (ci CycleInput[V]) AsDefinite() (Signal[V], bool) {
	return ci.definite, ci.kind == Definite
}

// AsPartial returns the VariableSignal and true if ci.Kind() == Partial.
func (ci CycleInput[V]) AsPartial() (VariableSignal[V], bool) {
	return ci.partial, ci.kind == Partial
}

// Width returns the bit-width of the underlying signal, definite or partial.
func (ci CycleInput[V]) Width() int {
	if ci.kind == Definite {
		return ci.definite.Width()
	}
	return ci.partial.Width()
}
