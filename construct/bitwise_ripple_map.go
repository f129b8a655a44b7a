package construct

import (
	"fmt"

	"github.com/wireforge/hypercircuit/hbuilder"
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/value"
)

// BitwiseRippleMap is BitwiseRipple combined with RippleMap's per-step
// output collection: f: (acc, cur) -> (acc, out) folds over a single
// n*curWidth data bus split bit-interleaved into n chunks, and the n
// per-step out values are combined bit-interleaved back into one
// n*outWidth result bus (the shape of a ripple-carry adder that
// also exposes its per-bit sum outputs as a single sum bus, as opposed to
// only the final carry).
//
// Unlike BitwiseRipple, there is no without-initial mode: collecting one
// output per data chunk requires every chunk to pass through an actual
// ripple step, which in turn requires an explicit external accumulator
// seed — the "seed from the first chunk" trick has nowhere to put that
// chunk's own per-step output.
func BitwiseRippleMap[V value.Value](b *hbuilder.Builder[V], sub *hgraph.InterfacedHypergraph[V], n int, direction Direction, name string) (*hgraph.InterfacedHypergraph[V], error) {
	accWidth, curWidth, outWidth, err := rippleMapShape(sub)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("BitwiseRippleMap(n=%d): %w", n, ErrBadReplication)
	}

	bus, err := b.UseWire(n * curWidth)
	if err != nil {
		return nil, err
	}
	chunks, err := splitBitInterleaved[V](b, bus, n, curWidth)
	if err != nil {
		return nil, err
	}

	accPort, err := b.UseWire(accWidth)
	if err != nil {
		return nil, err
	}

	results := make([]hgraph.VertexID, n)
	acc := accPort
	for _, idx := range foldOrder(n, direction) {
		outs, err := b.UseSubcircuit(sub, []hgraph.VertexID{acc, chunks[idx]})
		if err != nil {
			return nil, err
		}
		acc = outs[0]
		results[idx] = outs[1]
	}

	resultBus, err := mergeBitInterleaved[V](b, results, outWidth)
	if err != nil {
		return nil, err
	}

	var inputs, outputs []hgraph.VertexID
	if direction == TopToBottom {
		inputs = []hgraph.VertexID{accPort, bus}
		outputs = []hgraph.VertexID{acc, resultBus}
	} else {
		inputs = []hgraph.VertexID{bus, accPort}
		outputs = []hgraph.VertexID{resultBus, acc}
	}

	return b.MakeSubcircuit(inputs, outputs, name)
}
