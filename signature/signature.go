// File: signature.go
// Role: Port, Primitive, and Signature types, plus the arity/width-checked
// Interpret entry point.
package signature

import (
	"fmt"

	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/value"
)

// Port is a single input or output port of a Primitive: a positive bit
// width and an optional human-readable name.
type Port struct {
	Width int
	Name  string
}

// Primitive is an atomic operator symbol in a Signature: it is equatable
// and hashable (backed by a comparable Name), with an ordered array of
// input ports and output ports.
type Primitive struct {
	Name    string
	Inputs  []Port
	Outputs []Port
}

// Arity returns the number of input ports.
func (p Primitive) Arity() int { return len(p.Inputs) }

// Coarity returns the number of output ports.
func (p Primitive) Coarity() int { return len(p.Outputs) }

// Interpretation computes a primitive's outputs from its inputs. Signature
// enforces arity/coarity/width around every call; interpretation functions
// themselves may assume well-formed input.
type Interpretation[V value.Value] func(inputs []signal.Signal[V]) []signal.Signal[V]

// Signature binds a finite value Lattice to a finite set of Primitives and
// their Interpretation functions.
type Signature[V value.Value] struct {
	Name    string
	Lattice *value.Lattice[V]

	primitives map[string]Primitive
	interp     map[string]Interpretation[V]
}

// New constructs a Signature from a name and a lattice, with no primitives;
// primitives are registered afterwards with AddPrimitive, keyed by name.
func New[V value.Value](name string, lattice *value.Lattice[V]) *Signature[V] {
	return &Signature[V]{
		Name:       name,
		Lattice:    lattice,
		primitives: make(map[string]Primitive),
		interp:     make(map[string]Interpretation[V]),
	}
}

// AddPrimitive registers a Primitive symbol together with its
// interpretation function. Re-registering a name overwrites the prior
// binding (useful for building a Signature incrementally in one function).
func (s *Signature[V]) AddPrimitive(p Primitive, fn Interpretation[V]) {
	s.primitives[p.Name] = p
	s.interp[p.Name] = fn
}

// Lookup returns the Primitive registered under name.
func (s *Signature[V]) Lookup(name string) (Primitive, bool) {
	p, ok := s.primitives[name]
	return p, ok
}

// Primitives returns every registered Primitive, in no particular order;
// callers that need determinism should sort by Name.
func (s *Signature[V]) Primitives() []Primitive {
	out := make([]Primitive, 0, len(s.primitives))
	for _, p := range s.primitives {
		out = append(out, p)
	}
	return out
}

// Interpret delegates to g's registered interpretation function after
// verifying inputs.len == g.Arity() and each input/output width matches the
// corresponding declared Port width.
func (s *Signature[V]) Interpret(g Primitive, inputs []signal.Signal[V]) ([]signal.Signal[V], error) {
	fn, ok := s.interp[g.Name]
	if !ok {
		return nil, fmt.Errorf("Interpret(%s): %w", g.Name, ErrUnknownPrimitive)
	}
	if len(inputs) != len(g.Inputs) {
		return nil, fmt.Errorf("Interpret(%s): got %d inputs, want %d: %w", g.Name, len(inputs), len(g.Inputs), ErrArityMismatch)
	}
	for i, in := range inputs {
		if in.Width() != g.Inputs[i].Width {
			return nil, fmt.Errorf("Interpret(%s): input %d width %d, want %d: %w", g.Name, i, in.Width(), g.Inputs[i].Width, ErrPortWidthMismatch)
		}
	}

	outputs := fn(inputs)

	if len(outputs) != len(g.Outputs) {
		return nil, fmt.Errorf("Interpret(%s): got %d outputs, want %d: %w", g.Name, len(outputs), len(g.Outputs), ErrCoarityMismatch)
	}
	for i, out := range outputs {
		if out.Width() != g.Outputs[i].Width {
			return nil, fmt.Errorf("Interpret(%s): output %d width %d, want %d: %w", g.Name, i, out.Width(), g.Outputs[i].Width, ErrPortWidthMismatch)
		}
	}

	return outputs, nil
}
