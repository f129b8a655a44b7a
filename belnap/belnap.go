// File: belnap.go
// Role: the reference four-valued logic — Belnap's bilattice
// {NONE, FALSE, TRUE, BOTH} under the information order
// NONE <= FALSE <= BOTH, NONE <= TRUE <= BOTH (FALSE and TRUE incomparable).
// NONE is the disconnected/unknown value (lattice bottom); BOTH is the
// over-determined/conflicting value (lattice top). Signature() wires this
// lattice to BUF/NOT/AND/OR/NAND/NOR/XOR/XNOR, truth-table style.
package belnap

import (
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/signature"
	"github.com/wireforge/hypercircuit/value"
)

// Value is Belnap's four-point carrier.
type Value int

const (
	NONE Value = iota
	FALSE
	TRUE
	BOTH
)

func (v Value) String() string {
	switch v {
	case NONE:
		return "NONE"
	case FALSE:
		return "FALSE"
	case TRUE:
		return "TRUE"
	case BOTH:
		return "BOTH"
	default:
		return "UNKNOWN"
	}
}

// Low and High satisfy signal.Decimal[Value], letting belnap circuits use
// package evaluator's decimal I/O helpers directly: FALSE is the decimal 0
// bit, TRUE is the decimal 1 bit.
func (Value) Low() Value  { return FALSE }
func (Value) High() Value { return TRUE }

// lessEq is the Belnap information order: NONE at the bottom, BOTH at the
// top, FALSE and TRUE incomparable siblings in between.
func lessEq(a, b Value) bool {
	if a == b {
		return true
	}
	if a == NONE {
		return true
	}
	if b == BOTH {
		return true
	}
	return false
}

// Lattice returns the Belnap information-order lattice.
func Lattice() (*value.Lattice[Value], error) {
	return value.NewLattice([]Value{NONE, FALSE, TRUE, BOTH}, lessEq)
}

// and4/or4/not4 extend classical two-valued AND/OR/NOT to all four Belnap
// values: NONE and BOTH propagate through exactly the way a hardware
// designer expects an "unknown" or "conflicting" signal to propagate
// through a gate — NONE unless the other input alone can already force the
// result (0 AND unknown = 0; 1 OR unknown = 1), BOTH whenever no single
// classical resolution of the inputs agrees on the output.
func not4(a Value) Value {
	switch a {
	case FALSE:
		return TRUE
	case TRUE:
		return FALSE
	case NONE:
		return NONE
	default:
		return BOTH
	}
}

func and4(a, b Value) Value {
	if a == FALSE || b == FALSE {
		return FALSE
	}
	switch {
	case a == TRUE && b == TRUE:
		return TRUE
	case a == NONE || b == NONE:
		return NONE
	default:
		return BOTH
	}
}

func or4(a, b Value) Value {
	if a == TRUE || b == TRUE {
		return TRUE
	}
	switch {
	case a == FALSE && b == FALSE:
		return FALSE
	case a == NONE || b == NONE:
		return NONE
	default:
		return BOTH
	}
}

// Signature builds the reference four-valued logic signature: 1-bit
// BUF/NOT/AND/OR/NAND/NOR/XOR/XNOR primitives over the Belnap lattice.
func Signature() (*signature.Signature[Value], error) {
	lat, err := Lattice()
	if err != nil {
		return nil, err
	}
	sig := signature.New[Value]("belnap", lat)

	unary := func(name string, fn func(Value) Value) {
		sig.AddPrimitive(signature.Primitive{
			Name:    name,
			Inputs:  []signature.Port{{Width: 1, Name: "a"}},
			Outputs: []signature.Port{{Width: 1, Name: "y"}},
		}, func(in []signal.Signal[Value]) []signal.Signal[Value] {
			a, _ := in[0].Bit(0)
			return []signal.Signal[Value]{signal.Of(fn(a))}
		})
	}
	binary := func(name string, fn func(a, b Value) Value) {
		sig.AddPrimitive(signature.Primitive{
			Name:    name,
			Inputs:  []signature.Port{{Width: 1, Name: "a"}, {Width: 1, Name: "b"}},
			Outputs: []signature.Port{{Width: 1, Name: "y"}},
		}, func(in []signal.Signal[Value]) []signal.Signal[Value] {
			a, _ := in[0].Bit(0)
			b, _ := in[1].Bit(0)
			return []signal.Signal[Value]{signal.Of(fn(a, b))}
		})
	}

	unary("BUF", func(a Value) Value { return a })
	unary("NOT", not4)
	binary("AND", and4)
	binary("OR", or4)
	binary("NAND", func(a, b Value) Value { return not4(and4(a, b)) })
	binary("NOR", func(a, b Value) Value { return not4(or4(a, b)) })
	binary("XOR", func(a, b Value) Value {
		return or4(and4(a, not4(b)), and4(not4(a), b))
	})
	binary("XNOR", func(a, b Value) Value {
		return not4(or4(and4(a, not4(b)), and4(not4(a), b)))
	})

	return sig, nil
}
