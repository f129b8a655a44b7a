package construct

import (
	"fmt"

	"github.com/wireforge/hypercircuit/hbuilder"
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/value"
)

// RippleMap is Ripple with f: (acc, cur) -> (acc, out) — a scan: it threads
// the accumulator exactly as Ripple does, but also keeps every step's second
// output. The n per-step outputs are placed in the external
// output interface in original data order (cur_0's result first), regardless
// of direction's fold order; direction still governs accumulator placement
// and fold order exactly as in Ripple.
func RippleMap[V value.Value](b *hbuilder.Builder[V], sub *hgraph.InterfacedHypergraph[V], n int, direction Direction, name string) (*hgraph.InterfacedHypergraph[V], error) {
	accWidth, curWidth, _, err := rippleMapShape(sub)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("RippleMap(n=%d): %w", n, ErrBadReplication)
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

	results := make([]hgraph.VertexID, n)
	acc := acc0
	for _, idx := range foldOrder(n, direction) {
		outs, err := b.UseSubcircuit(sub, []hgraph.VertexID{acc, curs[idx]})
		if err != nil {
			return nil, err
		}
		acc = outs[0]
		results[idx] = outs[1]
	}

	var inputs, outputs []hgraph.VertexID
	if direction == TopToBottom {
		inputs = append([]hgraph.VertexID{acc0}, curs...)
		outputs = append([]hgraph.VertexID{acc}, results...)
	} else {
		inputs = append(append([]hgraph.VertexID(nil), curs...), acc0)
		outputs = append(append([]hgraph.VertexID(nil), results...), acc)
	}

	return b.MakeSubcircuit(inputs, outputs, name)
}

func rippleMapShape[V value.Value](sub *hgraph.InterfacedHypergraph[V]) (accWidth, curWidth, outWidth int, err error) {
	if sub.Arity() != 2 || sub.Coarity() != 2 {
		return 0, 0, 0, fmt.Errorf("ripple-map operation must be (acc, cur) -> (acc, out), got arity %d coarity %d: %w", sub.Arity(), sub.Coarity(), ErrBadShape)
	}
	in := sub.InputWidths()
	out := sub.OutputWidths()
	if in[0] != out[0] {
		return 0, 0, 0, fmt.Errorf("ripple-map accumulator width %d != output width %d: %w", in[0], out[0], ErrBadShape)
	}
	return in[0], in[1], out[1], nil
}
