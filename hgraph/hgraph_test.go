package hgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireforge/hypercircuit/belnap"
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/signature"
)

func andPrim(t *testing.T) signature.Primitive {
	t.Helper()
	sig, err := belnap.Signature()
	require.NoError(t, err)
	p, ok := sig.Lookup("AND")
	require.True(t, ok)
	return p
}

func paramKind(t *testing.T, err error) hgraph.ParamKind {
	t.Helper()
	require.ErrorIs(t, err, hgraph.ErrIncompatibleParameter)
	var ipe *hgraph.IncompatibleParameterError
	require.True(t, errors.As(err, &ipe))
	return ipe.Kind
}

func TestAddWireRejectsZeroWidth(t *testing.T) {
	g := hgraph.NewHypergraph[belnap.Value]()
	_, err := g.AddWire(0)
	assert.Equal(t, hgraph.KindWidth, paramKind(t, err))
}

func TestAddEdgeValidation(t *testing.T) {
	and := andPrim(t)
	g := hgraph.NewHypergraph[belnap.Value]()
	a, err := g.AddWire(1)
	require.NoError(t, err)

	// Too few sources for a 2-input primitive.
	_, err = g.AddEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a})
	assert.Equal(t, hgraph.KindInputs, paramKind(t, err))

	// A source id the arena has never issued.
	_, err = g.AddEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, 99999})
	assert.Equal(t, hgraph.KindOwner, paramKind(t, err))

	// A source whose width does not match the declared port.
	wide, err := g.AddWire(4)
	require.NoError(t, err)
	_, err = g.AddEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, wide})
	assert.Equal(t, hgraph.KindWidth, paramKind(t, err))
}

func TestAddEdgeCreatesTargets(t *testing.T) {
	and := andPrim(t)
	g := hgraph.NewHypergraph[belnap.Value]()
	a, _ := g.AddWire(1)
	b, _ := g.AddWire(1)

	outs, err := g.AddEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, b})
	require.NoError(t, err)
	require.Len(t, outs, 1)

	out, ok := g.Vertex(outs[0])
	require.True(t, ok)
	assert.Equal(t, 1, out.Width)
	assert.True(t, out.HasInEdge())

	av, _ := g.Vertex(a)
	assert.Len(t, av.OutEdges(), 1)
}

func TestRemoveEdgeDetaches(t *testing.T) {
	and := andPrim(t)
	g := hgraph.NewHypergraph[belnap.Value]()
	a, _ := g.AddWire(1)
	b, _ := g.AddWire(1)
	outs, err := g.AddEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, b})
	require.NoError(t, err)

	av, _ := g.Vertex(a)
	eid := av.OutEdges()[0]
	require.NoError(t, g.RemoveEdge(eid))

	av, _ = g.Vertex(a)
	assert.Empty(t, av.OutEdges())
	out, _ := g.Vertex(outs[0])
	assert.False(t, out.HasInEdge())
	_, ok := g.Edge(eid)
	assert.False(t, ok)
}

func TestAddEdgeToExistingTarget(t *testing.T) {
	g := hgraph.NewHypergraph[belnap.Value]()
	w, _ := g.AddWire(1)

	_, err := g.AddEdgeToExistingTarget(hgraph.ValueLabel(belnap.TRUE), nil, w)
	require.NoError(t, err)
	wv, _ := g.Vertex(w)
	assert.True(t, wv.HasInEdge())

	// A second producer for the same wire is rejected.
	_, err = g.AddEdgeToExistingTarget(hgraph.ValueLabel(belnap.FALSE), nil, w)
	assert.Equal(t, hgraph.KindInEdges, paramKind(t, err))

	// Width mismatch between label output and target.
	wide, _ := g.AddWire(4)
	_, err = g.AddEdgeToExistingTarget(hgraph.ValueLabel(belnap.TRUE), nil, wide)
	assert.Equal(t, hgraph.KindWidth, paramKind(t, err))
}

func TestValidateMissingInEdge(t *testing.T) {
	and := andPrim(t)
	g := hgraph.NewHypergraph[belnap.Value]()
	a, _ := g.AddWire(1)
	b, _ := g.AddWire(1)
	outs, err := g.AddEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, b})
	require.NoError(t, err)

	// b is neither an interface wire nor produced by anything.
	ihg, err := hgraph.NewInterfacedHypergraph(g, []hgraph.VertexID{a}, outs, "broken")
	require.NoError(t, err)
	assert.ErrorIs(t, ihg.Validate(), hgraph.ErrMissingInEdge)
}

func TestValidateInputWithProducer(t *testing.T) {
	g := hgraph.NewHypergraph[belnap.Value]()
	w, _ := g.AddWire(1)
	_, err := g.AddEdgeToExistingTarget(hgraph.ValueLabel(belnap.TRUE), nil, w)
	require.NoError(t, err)

	ihg, err := hgraph.NewInterfacedHypergraph(g, []hgraph.VertexID{w}, []hgraph.VertexID{w}, "bad-input")
	require.NoError(t, err)
	assert.Equal(t, hgraph.KindInEdges, paramKind(t, ihg.Validate()))
}

func TestValidateOutputWithConsumers(t *testing.T) {
	and := andPrim(t)
	g := hgraph.NewHypergraph[belnap.Value]()
	a, _ := g.AddWire(1)
	b, _ := g.AddWire(1)
	_, err := g.AddEdgeToExistingTarget(hgraph.ValueLabel(belnap.TRUE), nil, a)
	require.NoError(t, err)
	outs, err := g.AddEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, b})
	require.NoError(t, err)
	// a doubles as output even though the AND edge consumes it.
	ihg, err := hgraph.NewInterfacedHypergraph(g, []hgraph.VertexID{b}, []hgraph.VertexID{a, outs[0]}, "bad-output")
	require.NoError(t, err)
	assert.Equal(t, hgraph.KindOutEdges, paramKind(t, ihg.Validate()))
}

func TestInterfaceWireMustExist(t *testing.T) {
	g := hgraph.NewHypergraph[belnap.Value]()
	_, err := hgraph.NewInterfacedHypergraph(g, []hgraph.VertexID{12345}, nil, "ghost")
	assert.Equal(t, hgraph.KindWires, paramKind(t, err))
}

// buildLoop wires out = BUNDLER(NOT-ish chain) back into its own input so
// that t -> e -> s -> closer -> t is a directed cycle, with the closing edge
// carrying the given label.
func buildLoop(t *testing.T, closer func(width int) hgraph.EdgeLabel[belnap.Value]) *hgraph.Hypergraph[belnap.Value] {
	t.Helper()
	g := hgraph.NewHypergraph[belnap.Value]()
	loopWire, err := g.AddWire(1)
	require.NoError(t, err)
	outs, err := g.AddEdge(hgraph.BundlerLabel[belnap.Value]([]int{1}, []int{1}), []hgraph.VertexID{loopWire})
	require.NoError(t, err)
	_, err = g.AddEdgeToExistingTarget(closer(1), outs, loopWire)
	require.NoError(t, err)
	return g
}

func TestHasCycleIgnoringDelay(t *testing.T) {
	instant := buildLoop(t, func(w int) hgraph.EdgeLabel[belnap.Value] {
		return hgraph.BundlerLabel[belnap.Value]([]int{w}, []int{w})
	})
	assert.True(t, instant.HasCycleIgnoringDelay())

	guarded := buildLoop(t, func(w int) hgraph.EdgeLabel[belnap.Value] {
		return hgraph.DelayLabel[belnap.Value](1, w)
	})
	assert.False(t, guarded.HasCycleIgnoringDelay())
}

func TestValidateDelayFreeCycle(t *testing.T) {
	g := buildLoop(t, func(w int) hgraph.EdgeLabel[belnap.Value] {
		return hgraph.BundlerLabel[belnap.Value]([]int{w}, []int{w})
	})
	ihg, err := hgraph.NewInterfacedHypergraph(g, nil, nil, "loop")
	require.NoError(t, err)
	assert.Equal(t, hgraph.KindInstantFeedback, paramKind(t, ihg.Validate()))

	ihg.CyclicCombinational = true
	// Output-wire bookkeeping aside, the cycle itself is now permitted.
	assert.NoError(t, ihg.Validate())
}

func TestCloneIsIndependent(t *testing.T) {
	and := andPrim(t)
	g := hgraph.NewHypergraph[belnap.Value]()
	a, _ := g.AddWire(1)
	b, _ := g.AddWire(1)
	outs, err := g.AddEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, b})
	require.NoError(t, err)

	clone := g.Clone()
	assert.Equal(t, g.VertexIDs(), clone.VertexIDs())
	assert.Equal(t, g.EdgeIDs(), clone.EdgeIDs())

	// Mutating the clone leaves the original untouched.
	av, _ := clone.Vertex(a)
	require.NoError(t, clone.RemoveEdge(av.OutEdges()[0]))
	assert.Empty(t, clone.EdgeIDs())
	assert.Len(t, g.EdgeIDs(), 1)
	origOut, _ := g.Vertex(outs[0])
	assert.True(t, origOut.HasInEdge())
}

func TestInlineAllComposites(t *testing.T) {
	and := andPrim(t)

	// Inner: a bare AND gate.
	inner := hgraph.NewHypergraph[belnap.Value]()
	ia, _ := inner.AddWire(1)
	ib, _ := inner.AddWire(1)
	iouts, err := inner.AddEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{ia, ib})
	require.NoError(t, err)
	innerSub, err := hgraph.NewInterfacedHypergraph(inner, []hgraph.VertexID{ia, ib}, iouts, "and-gate")
	require.NoError(t, err)

	// Middle: wraps the inner composite.
	middle := hgraph.NewHypergraph[belnap.Value]()
	ma, _ := middle.AddWire(1)
	mb, _ := middle.AddWire(1)
	mouts, err := middle.AddEdge(hgraph.CompositeLabel(innerSub), []hgraph.VertexID{ma, mb})
	require.NoError(t, err)
	middleSub, err := hgraph.NewInterfacedHypergraph(middle, []hgraph.VertexID{ma, mb}, mouts, "wrapped")
	require.NoError(t, err)

	// Top: wraps the middle composite, two levels of nesting deep.
	top := hgraph.NewHypergraph[belnap.Value]()
	ta, _ := top.AddWire(1)
	tb, _ := top.AddWire(1)
	touts, err := top.AddEdge(hgraph.CompositeLabel(middleSub), []hgraph.VertexID{ta, tb})
	require.NoError(t, err)

	require.NoError(t, top.InlineAllComposites())

	for _, eid := range top.EdgeIDs() {
		e, _ := top.Edge(eid)
		assert.NotEqual(t, hgraph.LabelComposite, e.Label.Kind)
	}
	// The flattened graph is exactly the AND gate wired to the original
	// top-level interface wires.
	require.Len(t, top.EdgeIDs(), 1)
	e, _ := top.Edge(top.EdgeIDs()[0])
	assert.Equal(t, hgraph.LabelPrimitive, e.Label.Kind)
	assert.Equal(t, []hgraph.VertexID{ta, tb}, e.Sources)
	assert.Equal(t, touts, e.Targets)
}

func TestLabelPortWidths(t *testing.T) {
	join := hgraph.JoinLabel[belnap.Value](4)
	assert.Equal(t, []int{4, 4}, join.InPortWidths())
	assert.Equal(t, []int{4}, join.OutPortWidths())

	bundler := hgraph.BundlerLabel[belnap.Value]([]int{2, 2}, []int{1, 3})
	assert.Equal(t, []int{2, 2}, bundler.InPortWidths())
	assert.Equal(t, []int{1, 3}, bundler.OutPortWidths())

	sig := hgraph.SignalLabel(signal.Bits(belnap.TRUE, belnap.FALSE, belnap.TRUE))
	assert.Empty(t, sig.InPortWidths())
	assert.Equal(t, []int{3}, sig.OutPortWidths())

	delay := hgraph.DelayLabel[belnap.Value](2, 8)
	assert.Equal(t, []int{8}, delay.InPortWidths())
	assert.Equal(t, []int{8}, delay.OutPortWidths())
	assert.Equal(t, 2, delay.DelayN())
}
