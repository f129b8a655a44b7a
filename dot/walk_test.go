package dot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireforge/hypercircuit/belnap"
	"github.com/wireforge/hypercircuit/dot"
	"github.com/wireforge/hypercircuit/hbuilder"
	"github.com/wireforge/hypercircuit/hgraph"
)

func buildNestedCircuit(t *testing.T) *hgraph.Hypergraph[belnap.Value] {
	t.Helper()
	sig, err := belnap.Signature()
	require.NoError(t, err)

	inner := hbuilder.New[belnap.Value]()
	a, err := inner.UseWire(1)
	require.NoError(t, err)
	bb, err := inner.UseWire(1)
	require.NoError(t, err)
	and, _ := sig.Lookup("AND")
	out, err := inner.UseEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, bb})
	require.NoError(t, err)
	andGate, err := inner.MakeSubcircuit([]hgraph.VertexID{a, bb}, out, "and-gate")
	require.NoError(t, err)

	outer := hbuilder.New[belnap.Value]()
	x, err := outer.UseWire(1)
	require.NoError(t, err)
	y, err := outer.UseWire(1)
	require.NoError(t, err)
	_, err = outer.UseSubcircuit(andGate, []hgraph.VertexID{x, y})
	require.NoError(t, err)

	return outer.Graph
}

func TestWalkYieldsOneNodePerEdge(t *testing.T) {
	g := buildNestedCircuit(t)
	nodes := dot.Collect(g)
	require.Len(t, nodes, 2)
	assert.Equal(t, "COMPOSITE(and-gate)", nodes[0].Label)
	assert.Empty(t, nodes[0].SubgraphID)
	assert.Len(t, nodes[0].InIDs, 2)
	assert.Len(t, nodes[0].OutIDs, 1)
}

func TestWalkRecursesIntoComposite(t *testing.T) {
	g := buildNestedCircuit(t)
	var labels []string
	var subIDs []string
	dot.Walk(g, "", func(n dot.Node) bool {
		labels = append(labels, n.Label)
		subIDs = append(subIDs, n.SubgraphID)
		return true
	})
	require.Len(t, labels, 2)
	assert.Equal(t, "COMPOSITE(and-gate)", labels[0])
	assert.Equal(t, "AND", labels[1])
	assert.Empty(t, subIDs[0])
	assert.NotEmpty(t, subIDs[1])
}

func TestWalkStopsEarly(t *testing.T) {
	g := buildNestedCircuit(t)
	count := 0
	dot.Walk(g, "", func(n dot.Node) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
