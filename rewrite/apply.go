package rewrite

import (
	"fmt"

	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/signature"
	"github.com/wireforge/hypercircuit/value"
)

// applyFunc is the pure (inputs -> outputs) function an "apply"-family edge
// label denotes, once its sources are resolved to concrete signals.
type applyFunc[V value.Value] func([]signal.Signal[V]) ([]signal.Signal[V], error)

// applyFuncFor extracts the apply function for a PRIMITIVE, ENHANCED_PRIMITIVE,
// BUNDLER, or BLACKBOX label. ENHANCED_PRIMITIVE is applied exactly like its
// underlying Primitive — the attached per-output delay vector affects where
// the evaluator cuts the Mealy core, not the value computed within one
// cycle.
func applyFuncFor[V value.Value](sig *signature.Signature[V], label hgraph.EdgeLabel[V]) (applyFunc[V], error) {
	switch label.Kind {
	case hgraph.LabelPrimitive:
		g := label.Prim()
		return func(inputs []signal.Signal[V]) ([]signal.Signal[V], error) {
			return sig.Interpret(g, inputs)
		}, nil
	case hgraph.LabelEnhancedPrimitive:
		g := label.Enhanced().Primitive
		return func(inputs []signal.Signal[V]) ([]signal.Signal[V], error) {
			return sig.Interpret(g, inputs)
		}, nil
	case hgraph.LabelBundler:
		outArities := label.BundlerOut()
		return func(inputs []signal.Signal[V]) ([]signal.Signal[V], error) {
			return bundlerReshape(inputs, outArities)
		}, nil
	case hgraph.LabelBlackbox:
		bb := label.Blackbox()
		return bb.Apply, nil
	default:
		return nil, fmt.Errorf("applyFuncFor: label kind %s: %w", label.Kind, ErrIncompatibleVariant)
	}
}

// bundlerReshape implements BUNDLER's dual role, reshape/split or fork.
// When total input bits equal total output
// bits, it concatenates inputs LSB-first (input 0 supplies the lowest
// bits) into one flat signal and re-slices it into len(outArities) pieces.
// When there is a single input and every declared output width equals its
// width, it instead broadcasts that one signal unchanged to every output —
// the identity-like fork InsertForks uses to give a shared vertex one
// consumer per original edge.
func bundlerReshape[V value.Value](inputs []signal.Signal[V], outArities []int) ([]signal.Signal[V], error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("bundlerReshape: no inputs")
	}

	if len(inputs) == 1 {
		isFork := true
		for _, w := range outArities {
			if w != inputs[0].Width() {
				isFork = false
				break
			}
		}
		if isFork {
			outputs := make([]signal.Signal[V], len(outArities))
			for i := range outputs {
				outputs[i] = inputs[0]
			}
			return outputs, nil
		}
	}

	flat := inputs[0]
	for _, in := range inputs[1:] {
		flat = flat.Concat(in)
	}
	outputs := make([]signal.Signal[V], len(outArities))
	pos := 0
	for i, w := range outArities {
		s, err := flat.Slice(pos, pos+w)
		if err != nil {
			return nil, err
		}
		outputs[i] = s
		pos += w
	}
	return outputs, nil
}

func definiteSignals[V value.Value](rs []resolved[V]) []signal.Signal[V] {
	out := make([]signal.Signal[V], len(rs))
	for i, r := range rs {
		out[i] = r.definite
	}
	return out
}
