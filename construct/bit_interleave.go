package construct

import (
	"github.com/wireforge/hypercircuit/hbuilder"
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/value"
)

// splitToBits decomposes a single wire of the given width into that many
// 1-bit wires, ordered LSB-first, via one BUNDLER(in=[width], out=[1,...,1])
// reshape edge.
func splitToBits[V value.Value](b *hbuilder.Builder[V], wire hgraph.VertexID, width int) ([]hgraph.VertexID, error) {
	outArities := make([]int, width)
	for i := range outArities {
		outArities[i] = 1
	}
	return b.UseEdge(hgraph.BundlerLabel[V]([]int{width}, outArities), []hgraph.VertexID{wire})
}

// mergeBits combines len(bits) 1-bit wires, LSB-first, into one wire via
// one BUNDLER(in=[1,...,1], out=[len(bits)]) reshape edge.
func mergeBits[V value.Value](b *hbuilder.Builder[V], bits []hgraph.VertexID) (hgraph.VertexID, error) {
	inArities := make([]int, len(bits))
	for i := range inArities {
		inArities[i] = 1
	}
	outs, err := b.UseEdge(hgraph.BundlerLabel[V](inArities, []int{len(bits)}), bits)
	if err != nil {
		return 0, err
	}
	return outs[0], nil
}

// splitBitInterleaved divides wire (width = n*groupWidth) into n wires of
// groupWidth bits each, such that group g's bit j is original bit j*n+g —
// the "bit-interleaved" split the bitwise constructions use, as opposed to a
// contiguous block split. The permutation is realized purely by the source
// ordering fed to the recombining BUNDLER edges; no edge kind needs to
// express a permutation itself.
func splitBitInterleaved[V value.Value](b *hbuilder.Builder[V], wire hgraph.VertexID, n, groupWidth int) ([]hgraph.VertexID, error) {
	bits, err := splitToBits[V](b, wire, n*groupWidth)
	if err != nil {
		return nil, err
	}
	groups := make([]hgraph.VertexID, n)
	for g := 0; g < n; g++ {
		groupBits := make([]hgraph.VertexID, groupWidth)
		for j := 0; j < groupWidth; j++ {
			groupBits[j] = bits[j*n+g]
		}
		gw, err := mergeBits[V](b, groupBits)
		if err != nil {
			return nil, err
		}
		groups[g] = gw
	}
	return groups, nil
}

// mergeBitInterleaved is the inverse of splitBitInterleaved: it combines n
// wires of groupWidth bits each into one wire of n*groupWidth bits, placing
// group g's bit j at original bit position j*n+g.
func mergeBitInterleaved[V value.Value](b *hbuilder.Builder[V], groups []hgraph.VertexID, groupWidth int) (hgraph.VertexID, error) {
	n := len(groups)
	perGroupBits := make([][]hgraph.VertexID, n)
	for g, gw := range groups {
		bits, err := splitToBits[V](b, gw, groupWidth)
		if err != nil {
			return 0, err
		}
		perGroupBits[g] = bits
	}
	combined := make([]hgraph.VertexID, n*groupWidth)
	for g := 0; g < n; g++ {
		for j := 0; j < groupWidth; j++ {
			combined[j*n+g] = perGroupBits[g][j]
		}
	}
	return mergeBits[V](b, combined)
}
