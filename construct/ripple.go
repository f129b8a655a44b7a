package construct

import (
	"fmt"

	"github.com/wireforge/hypercircuit/hbuilder"
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/value"
)

// Ripple chains n applications of f: (acc, cur) -> acc, threading the
// accumulator through the chain and discarding all but the last.
// f must have arity 2 and coarity 1 with matching accumulator widths
// on input port 0 and the sole output port. direction controls accumulator
// placement in the external interface and fold order (package-level
// Direction doc). n must be >= 2; at n == 2 the chain is two direct calls
// with no extra wrapping subcircuit beyond the one MakeSubcircuit every
// construction needs (there is no recursive Ripple(f, n-1) helper call).
func Ripple[V value.Value](b *hbuilder.Builder[V], sub *hgraph.InterfacedHypergraph[V], n int, direction Direction, name string) (*hgraph.InterfacedHypergraph[V], error) {
	accWidth, curWidth, err := rippleShape(sub)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("Ripple(n=%d): %w", n, ErrBadReplication)
	}

	acc0, err := b.UseWire(accWidth)
	if err != nil {
		return nil, err
	}
	curs := make([]hgraph.VertexID, n)
	for i := range curs {
		w, err := b.UseWire(curWidth)
		if err != nil {
			return nil, err
		}
		curs[i] = w
	}

	accFinal, err := foldRipple(b, sub, acc0, curs, direction)
	if err != nil {
		return nil, err
	}

	var inputs []hgraph.VertexID
	if direction == TopToBottom {
		inputs = append([]hgraph.VertexID{acc0}, curs...)
	} else {
		inputs = append(append([]hgraph.VertexID(nil), curs...), acc0)
	}

	return b.MakeSubcircuit(inputs, []hgraph.VertexID{accFinal}, name)
}

// rippleShape validates that sub is f: (acc, cur) -> acc and returns
// (accWidth, curWidth).
func rippleShape[V value.Value](sub *hgraph.InterfacedHypergraph[V]) (accWidth, curWidth int, err error) {
	if sub.Arity() != 2 || sub.Coarity() != 1 {
		return 0, 0, fmt.Errorf("ripple operation must be (acc, cur) -> acc, got arity %d coarity %d: %w", sub.Arity(), sub.Coarity(), ErrBadShape)
	}
	in := sub.InputWidths()
	out := sub.OutputWidths()
	if in[0] != out[0] {
		return 0, 0, fmt.Errorf("ripple operation accumulator width %d != output width %d: %w", in[0], out[0], ErrBadShape)
	}
	return in[0], in[1], nil
}

// foldRipple runs the fold of sub over curs starting from acc0, in the order
// direction dictates, returning the final accumulator vertex.
func foldRipple[V value.Value](b *hbuilder.Builder[V], sub *hgraph.InterfacedHypergraph[V], acc0 hgraph.VertexID, curs []hgraph.VertexID, direction Direction) (hgraph.VertexID, error) {
	acc := acc0
	for _, idx := range foldOrder(len(curs), direction) {
		outs, err := b.UseSubcircuit(sub, []hgraph.VertexID{acc, curs[idx]})
		if err != nil {
			return 0, err
		}
		acc = outs[0]
	}
	return acc, nil
}
