package construct

import (
	"fmt"

	"github.com/wireforge/hypercircuit/hbuilder"
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/value"
)

// BitwiseRipple folds f: (acc, cur) -> acc across a single bus of width
// n*curWidth, split bit-interleaved into n curWidth-wide chunks, rather than
// across n separately-wired cur ports (this is the shape of a ripple-carry
// adder built from a 1-bit full-adder, where the data bus is the
// concatenation of per-bit operand pairs).
//
// withInitial selects between the two accumulator-seeding modes:
// true wires a fresh external accumulator input port
// ("with-initial" mode); false instead seeds the accumulator from the first
// data chunk visited in direction's fold order and runs only n-1 ripple
// steps ("without-initial" mode), which requires f's accumulator width to
// equal its cur width.
func BitwiseRipple[V value.Value](b *hbuilder.Builder[V], sub *hgraph.InterfacedHypergraph[V], n int, direction Direction, withInitial bool, name string) (*hgraph.InterfacedHypergraph[V], error) {
	accWidth, curWidth, err := rippleShape(sub)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("BitwiseRipple(n=%d): %w", n, ErrBadReplication)
	}
	if !withInitial && accWidth != curWidth {
		return nil, fmt.Errorf("BitwiseRipple without-initial requires acc width %d == cur width %d: %w", accWidth, curWidth, ErrBadShape)
	}

	bus, err := b.UseWire(n * curWidth)
	if err != nil {
		return nil, err
	}
	chunks, err := splitBitInterleaved[V](b, bus, n, curWidth)
	if err != nil {
		return nil, err
	}

	order := foldOrder(n, direction)

	var acc hgraph.VertexID
	var accPort hgraph.VertexID
	remaining := order

	if withInitial {
		accPort, err = b.UseWire(accWidth)
		if err != nil {
			return nil, err
		}
		acc = accPort
	} else {
		acc = chunks[order[0]]
		remaining = order[1:]
	}

	for _, idx := range remaining {
		outs, err := b.UseSubcircuit(sub, []hgraph.VertexID{acc, chunks[idx]})
		if err != nil {
			return nil, err
		}
		acc = outs[0]
	}

	var inputs []hgraph.VertexID
	switch {
	case withInitial && direction == TopToBottom:
		inputs = []hgraph.VertexID{accPort, bus}
	case withInitial:
		inputs = []hgraph.VertexID{bus, accPort}
	default:
		inputs = []hgraph.VertexID{bus}
	}

	return b.MakeSubcircuit(inputs, []hgraph.VertexID{acc}, name)
}
