// File: rules.go
// Role: the built-in rule set — bottom absorption, primitive apply
// (definite/partial/waveform), join, and feedback resolution. Rules are
// tried in list order per edge; a decline is not an error, it falls
// through to the next rule in the list whose pattern also matches.
package rewrite

import (
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/signature"
	"github.com/wireforge/hypercircuit/value"
)

// FireFunc attempts to fire a rule against edge e, returning fired=true and
// the newly unlocked consumer edges on success, fired=false with a nil
// error on a clean decline, and a non-nil error only for a genuine failure
// (width mismatch, unknown primitive, incompatible variant).
type FireFunc[V value.Value] func(g *hgraph.Hypergraph[V], sig *signature.Signature[V], e hgraph.EdgeID) (fired bool, next []TraversalElement, err error)

// Rule pairs a name and a label-kind pattern with a FireFunc.
type Rule[V value.Value] struct {
	Name  string
	Match func(hgraph.EdgeLabel[V]) bool
	Fire  FireFunc[V]
}

// applyFamily is the set of label kinds the apply/bottom rules both match.
func applyFamily[V value.Value](l hgraph.EdgeLabel[V]) bool {
	switch l.Kind {
	case hgraph.LabelPrimitive, hgraph.LabelEnhancedPrimitive, hgraph.LabelBundler, hgraph.LabelBlackbox:
		return true
	default:
		return false
	}
}

// DefaultRules returns the built-in rule set in firing-priority order:
// bottom absorption and primitive apply share the PRIMITIVE/ENHANCED_
// PRIMITIVE/BUNDLER/BLACKBOX pattern (bottom tried first, so it can
// override the primitive's own interpretation on all-bottom inputs); join
// and feedback resolution match their own dedicated label kinds. There is
// no separate "delay shift" rule: a DELAY edge is a rewrite stop point by
// construction (hbuilder places it exactly at the state boundary), so the
// Mealy core naturally ends there without needing a migration step.
func DefaultRules[V value.Value]() []Rule[V] {
	return []Rule[V]{
		{Name: "bottom-absorption", Match: applyFamily[V], Fire: fireBottomAbsorption[V]},
		{Name: "primitive-apply", Match: applyFamily[V], Fire: fireApply[V]},
		{Name: "join", Match: func(l hgraph.EdgeLabel[V]) bool { return l.Kind == hgraph.LabelJoin }, Fire: fireJoin[V]},
		{Name: "feedback-resolution", Match: func(l hgraph.EdgeLabel[V]) bool { return l.Kind == hgraph.LabelFeedback }, Fire: fireFeedback[V]},
	}
}

func fireBottomAbsorption[V value.Value](g *hgraph.Hypergraph[V], sig *signature.Signature[V], e hgraph.EdgeID) (bool, []TraversalElement, error) {
	edge, ok := g.Edge(e)
	if !ok {
		return false, nil, nil
	}
	rs, ok := resolveAll(g, edge.Sources)
	if !ok || !allKind(rs, resolvedDefinite) {
		return false, nil, nil
	}
	bottom := sig.Lattice.Bottom()
	for _, r := range rs {
		for _, bit := range r.definite.BitsSlice() {
			if bit != bottom {
				return false, nil, nil
			}
		}
	}

	outWidths := edge.Label.OutPortWidths()
	labels := make([]hgraph.EdgeLabel[V], len(outWidths))
	for i, w := range outWidths {
		labels[i] = hgraph.SignalLabel[V](signal.Fill(bottom, w))
	}
	next, err := replaceWithLeaf(g, e, labels)
	if err != nil {
		return false, nil, err
	}
	return true, next, nil
}

func fireApply[V value.Value](g *hgraph.Hypergraph[V], sig *signature.Signature[V], e hgraph.EdgeID) (bool, []TraversalElement, error) {
	edge, ok := g.Edge(e)
	if !ok {
		return false, nil, nil
	}
	rs, ok := resolveAll(g, edge.Sources)
	if !ok {
		return false, nil, nil
	}
	fn, err := applyFuncFor(sig, edge.Label)
	if err != nil {
		return false, nil, err
	}

	switch {
	case allKind(rs, resolvedDefinite):
		outs, err := fn(definiteSignals(rs))
		if err != nil {
			return false, nil, err
		}
		labels := make([]hgraph.EdgeLabel[V], len(outs))
		for i, s := range outs {
			labels[i] = hgraph.SignalLabel[V](s)
		}
		next, err := replaceWithLeaf(g, e, labels)
		if err != nil {
			return false, nil, err
		}
		return true, next, nil

	case allKind(rs, resolvedWaveform):
		return fireWaveformApply(g, e, edge, rs, fn)

	case anyKind(rs, resolvedPartial) && !anyKind(rs, resolvedWaveform):
		// A mix of DEFINITE and PARTIAL arguments (e.g. AND(x, FALSE))
		// still resolves, by closing the DEFINITE arguments as
		// zero-variable VariableSignals alongside the genuinely PARTIAL
		// ones (see asVariableSignal).
		return firePartialApply(g, sig, e, edge, rs, fn)

	default:
		return false, nil, nil
	}
}

func firePartialApply[V value.Value](g *hgraph.Hypergraph[V], sig *signature.Signature[V], e hgraph.EdgeID, edge *hgraph.Edge[V], rs []resolved[V], fn applyFunc[V]) (bool, []TraversalElement, error) {
	varSet := map[signal.VarID]struct{}{}
	parts := make([]signal.VariableSignal[V], len(rs))
	for i, r := range rs {
		parts[i] = asVariableSignal(r)
		for _, v := range parts[i].Vars() {
			varSet[v] = struct{}{}
		}
	}
	vars := make([]signal.VarID, 0, len(varSet))
	for v := range varSet {
		vars = append(vars, v)
	}

	outWidths := edge.Label.OutPortWidths()
	perOutputBitFuncs := make([][]signal.BitFunc[V], len(outWidths))
	for i := range outWidths {
		perOutputBitFuncs[i] = make([]signal.BitFunc[V], outWidths[i])
	}
	for bitIdx := range outWidths {
		for b := 0; b < outWidths[bitIdx]; b++ {
			outIdx, bitInPort := bitIdx, b
			perOutputBitFuncs[outIdx][bitInPort] = func(assignment signal.Assignment[V]) V {
				closed := make([]signal.Signal[V], len(parts))
				for i, p := range parts {
					closed[i], _ = p.Close(assignment)
				}
				outs, _ := fn(closed)
				bit, _ := outs[outIdx].Bit(bitInPort)
				return bit
			}
		}
	}

	domain := sig.Lattice.Carrier()
	labels := make([]hgraph.EdgeLabel[V], len(outWidths))
	for i := range outWidths {
		vs := signal.NewVariableSignal(vars, perOutputBitFuncs[i])
		distinct := vs.EnumerateOver(domain)
		if len(distinct) == 1 {
			labels[i] = hgraph.SignalLabel[V](distinct[0])
		} else {
			labels[i] = hgraph.PartialLabel[V](vs)
		}
	}

	next, err := replaceWithLeaf(g, e, labels)
	if err != nil {
		return false, nil, err
	}
	return true, next, nil
}

func fireWaveformApply[V value.Value](g *hgraph.Hypergraph[V], e hgraph.EdgeID, edge *hgraph.Edge[V], rs []resolved[V], fn applyFunc[V]) (bool, []TraversalElement, error) {
	waves := make([]signal.Waveform[V], len(rs))
	for i, r := range rs {
		waves[i] = r.waveform
	}
	rows, err := signal.JoinWaveforms(waves)
	if err != nil {
		return false, nil, err
	}

	outWidths := edge.Label.OutPortWidths()
	perPortTicks := make([][]signal.Signal[V], len(outWidths))
	for _, row := range rows {
		outs, err := fn(row)
		if err != nil {
			return false, nil, err
		}
		for i, s := range outs {
			perPortTicks[i] = append(perPortTicks[i], s)
		}
	}

	labels := make([]hgraph.EdgeLabel[V], len(outWidths))
	for i, ticks := range perPortTicks {
		w, err := signal.NewWaveform(ticks)
		if err != nil {
			return false, nil, err
		}
		labels[i] = hgraph.InfiniteWaveformLabel[V](w)
	}

	next, err := replaceWithLeaf(g, e, labels)
	if err != nil {
		return false, nil, err
	}
	return true, next, nil
}

func fireJoin[V value.Value](g *hgraph.Hypergraph[V], sig *signature.Signature[V], e hgraph.EdgeID) (bool, []TraversalElement, error) {
	edge, ok := g.Edge(e)
	if !ok {
		return false, nil, nil
	}
	rs, ok := resolveAll(g, edge.Sources)
	if !ok || !allKind(rs, resolvedDefinite) {
		return false, nil, nil
	}

	a, b := rs[0].definite, rs[1].definite
	width := edge.Label.JoinWidth()
	bits := make([]V, width)
	for i := 0; i < width; i++ {
		ab, _ := a.Bit(i)
		bb, _ := b.Bit(i)
		bits[i] = sig.Lattice.Join(ab, bb)
	}
	next, err := replaceWithLeaf(g, e, []hgraph.EdgeLabel[V]{hgraph.SignalLabel[V](signal.Bits(bits...))})
	if err != nil {
		return false, nil, err
	}
	return true, next, nil
}

func fireFeedback[V value.Value](g *hgraph.Hypergraph[V], sig *signature.Signature[V], e hgraph.EdgeID) (bool, []TraversalElement, error) {
	edge, ok := g.Edge(e)
	if !ok {
		return false, nil, nil
	}
	r, ok := resolveVertex(g, edge.Sources[0])
	if !ok {
		return false, nil, nil
	}

	var label hgraph.EdgeLabel[V]
	switch r.kind {
	case resolvedDefinite:
		label = hgraph.SignalLabel[V](r.definite)
	case resolvedPartial:
		label = hgraph.PartialLabel[V](r.partial)
	case resolvedWaveform:
		label = hgraph.InfiniteWaveformLabel[V](r.waveform)
	}

	target := edge.Targets[0]
	if err := g.RemoveEdge(e); err != nil {
		return false, nil, err
	}
	if _, err := g.AddEdgeToExistingTarget(label, nil, target); err != nil {
		return false, nil, err
	}
	return true, enqueueConsumers(g, []hgraph.VertexID{target}), nil
}
