// File: term.go
// Role: OutputTerm, the per-output-port symbolic result of one PerformCycle,
// and the backward walk that builds one by memoised recursion over a
// rewritten working graph.
package evaluator

import (
	"fmt"

	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/value"
)

// TermKind discriminates OutputTerm's four variants:
// BASE(CycleInput) | JOIN(left, right) | FUNCTION(fn, args, port_index) |
// BUNDLE(args, arities, port_index).
type TermKind int

const (
	// TermBase is a settled leaf: a concrete or symbolic value.
	TermBase TermKind = iota
	// TermJoin is the lattice join of two unresolved subterms.
	TermJoin
	// TermFunction is a primitive/enhanced-primitive/blackbox application
	// whose arguments did not all settle to a single concrete result.
	TermFunction
	// TermBundle is a BUNDLER reshape/fork whose arguments did not all
	// settle to a single concrete result.
	TermBundle
)

func (k TermKind) String() string {
	switch k {
	case TermBase:
		return "BASE"
	case TermJoin:
		return "JOIN"
	case TermFunction:
		return "FUNCTION"
	case TermBundle:
		return "BUNDLE"
	default:
		return "UNKNOWN"
	}
}

// FunctionKind names which label family a TermFunction wraps.
type FunctionKind int

const (
	FunctionPrimitive FunctionKind = iota
	FunctionEnhanced
	FunctionBlackbox
	// FunctionComposite is carried for completeness only: a flattened
	// working graph (package hgraph's InlineAllComposites runs at
	// Evaluator construction) never has a live COMPOSITE edge left to
	// reach, so a TermFunction of this kind is never actually produced.
	FunctionComposite
)

func (k FunctionKind) String() string {
	switch k {
	case FunctionPrimitive:
		return "PRIMITIVE"
	case FunctionEnhanced:
		return "ENHANCED_PRIMITIVE"
	case FunctionBlackbox:
		return "BLACKBOX"
	case FunctionComposite:
		return "COMPOSITE"
	default:
		return "UNKNOWN"
	}
}

// Function names the operator a TermFunction applies, without committing to
// the concrete Primitive/Blackbox/InterfacedHypergraph payload — the kind
// and name already identify it.
type Function struct {
	Kind FunctionKind
	Name string
}

// OutputTerm is the symbolic result recorded for one output port after a
// cycle's rewriting reaches its fixed point. Exactly one group of accessors is meaningful, selected by Kind.
type OutputTerm[V value.Value] struct {
	kind TermKind

	base    signal.CycleInput[V]
	wave    signal.Waveform[V]
	hasWave bool

	left, right *OutputTerm[V]

	fn        Function
	children  []OutputTerm[V]
	arities   []int
	portIndex int
}

// Kind reports which OutputTerm variant t holds.
func (t OutputTerm[V]) Kind() TermKind { return t.kind }

// Base returns the settled CycleInput of a TermBase term. Call IsWaveform
// first: a TermBase reached through a settled INFINITE_WAVEFORM producer
// carries no CycleInput and Base returns the zero value.
func (t OutputTerm[V]) Base() signal.CycleInput[V] { return t.base }

// IsWaveform reports whether a TermBase term is a settled periodic
// waveform rather than a single-tick CycleInput; Waveform returns its value.
func (t OutputTerm[V]) IsWaveform() bool { return t.hasWave }

// Waveform returns the settled Waveform of a TermBase term for which
// IsWaveform is true.
func (t OutputTerm[V]) Waveform() signal.Waveform[V] { return t.wave }

// Left and Right return the two operands of a TermJoin term.
func (t OutputTerm[V]) Left() *OutputTerm[V]  { return t.left }
func (t OutputTerm[V]) Right() *OutputTerm[V] { return t.right }

// Fn returns the applied operator of a TermFunction term.
func (t OutputTerm[V]) Fn() Function { return t.fn }

// Children returns the argument subterms of a TermFunction or TermBundle
// term.
func (t OutputTerm[V]) Children() []OutputTerm[V] {
	return append([]OutputTerm[V](nil), t.children...)
}

// Arities returns the declared output bit-widths of a TermBundle term.
func (t OutputTerm[V]) Arities() []int { return append([]int(nil), t.arities...) }

// PortIndex identifies which output port of a multi-output FUNCTION or
// BUNDLE edge this term corresponds to.
func (t OutputTerm[V]) PortIndex() int { return t.portIndex }

func baseTerm[V value.Value](ci signal.CycleInput[V]) OutputTerm[V] {
	return OutputTerm[V]{kind: TermBase, base: ci}
}

// termBuilder walks a rewritten working graph backward from a root vertex,
// memoising by vertex id so a shared subexpression (fanned out by
// InsertForks, or simply reached from two different output ports) is built
// once.
type termBuilder[V value.Value] struct {
	g    *hgraph.Hypergraph[V]
	memo map[hgraph.VertexID]OutputTerm[V]
}

func newTermBuilder[V value.Value](g *hgraph.Hypergraph[V]) *termBuilder[V] {
	return &termBuilder[V]{g: g, memo: make(map[hgraph.VertexID]OutputTerm[V])}
}

func (tb *termBuilder[V]) build(v hgraph.VertexID) (OutputTerm[V], error) {
	if t, ok := tb.memo[v]; ok {
		return t, nil
	}

	vv, ok := tb.g.Vertex(v)
	if !ok || !vv.HasInEdge() {
		return OutputTerm[V]{}, fmt.Errorf("evaluator: vertex %d has no producer: %w", v, ErrMissingProducer)
	}
	edge, ok := tb.g.Edge(vv.InEdge)
	if !ok {
		return OutputTerm[V]{}, fmt.Errorf("evaluator: vertex %d's in-edge %d not found: %w", v, vv.InEdge, ErrMissingProducer)
	}

	var (
		term OutputTerm[V]
		err  error
	)
	switch edge.Label.Kind {
	case hgraph.LabelArgument:
		term = baseTerm[V](edge.Label.Argument())
	case hgraph.LabelValue:
		term = baseTerm[V](signal.DefiniteInput[V](signal.Of(edge.Label.Value())))
	case hgraph.LabelSignal:
		term = baseTerm[V](signal.DefiniteInput[V](edge.Label.Signal()))
	case hgraph.LabelPartial:
		term = baseTerm[V](signal.PartialInput[V](edge.Label.Partial()))
	case hgraph.LabelInfiniteWaveform:
		// A settled INFINITE_WAVEFORM producer is a base case too, even
		// though it has no CycleInput encoding: record it with
		// Kind()==TermBase and a zero-value Base so callers branching on
		// Kind still stop here, and expose it via a dedicated accessor.
		term = OutputTerm[V]{kind: TermBase, wave: edge.Label.Waveform(), hasWave: true}
	case hgraph.LabelJoin:
		term, err = tb.buildJoin(edge)
	case hgraph.LabelPrimitive:
		term, err = tb.buildFunction(edge, v, FunctionPrimitive, edge.Label.Prim().Name)
	case hgraph.LabelEnhancedPrimitive:
		term, err = tb.buildFunction(edge, v, FunctionEnhanced, edge.Label.Enhanced().Primitive.Name)
	case hgraph.LabelBlackbox:
		term, err = tb.buildFunction(edge, v, FunctionBlackbox, edge.Label.Blackbox().Name())
	case hgraph.LabelBundler:
		term, err = tb.buildBundle(edge, v)
	case hgraph.LabelDelay, hgraph.LabelFeedback, hgraph.LabelComposite:
		return OutputTerm[V]{}, fmt.Errorf("evaluator: %s label reached in Mealy core at vertex %d: %w", edge.Label.Kind, v, ErrIncompatibleVariant)
	default:
		return OutputTerm[V]{}, fmt.Errorf("evaluator: unrecognized label kind %s at vertex %d: %w", edge.Label.Kind, v, ErrIncompatibleVariant)
	}
	if err != nil {
		return OutputTerm[V]{}, err
	}

	tb.memo[v] = term
	return term, nil
}

func (tb *termBuilder[V]) buildJoin(edge *hgraph.Edge[V]) (OutputTerm[V], error) {
	left, err := tb.build(edge.Sources[0])
	if err != nil {
		return OutputTerm[V]{}, err
	}
	right, err := tb.build(edge.Sources[1])
	if err != nil {
		return OutputTerm[V]{}, err
	}
	return OutputTerm[V]{kind: TermJoin, left: &left, right: &right}, nil
}

func (tb *termBuilder[V]) buildFunction(edge *hgraph.Edge[V], v hgraph.VertexID, kind FunctionKind, name string) (OutputTerm[V], error) {
	children, err := tb.buildChildren(edge)
	if err != nil {
		return OutputTerm[V]{}, err
	}
	return OutputTerm[V]{
		kind:      TermFunction,
		fn:        Function{Kind: kind, Name: name},
		children:  children,
		portIndex: portIndexOf(edge, v),
	}, nil
}

func (tb *termBuilder[V]) buildBundle(edge *hgraph.Edge[V], v hgraph.VertexID) (OutputTerm[V], error) {
	children, err := tb.buildChildren(edge)
	if err != nil {
		return OutputTerm[V]{}, err
	}
	return OutputTerm[V]{
		kind:      TermBundle,
		children:  children,
		arities:   append([]int(nil), edge.Label.BundlerOut()...),
		portIndex: portIndexOf(edge, v),
	}, nil
}

func (tb *termBuilder[V]) buildChildren(edge *hgraph.Edge[V]) ([]OutputTerm[V], error) {
	children := make([]OutputTerm[V], len(edge.Sources))
	for i, s := range edge.Sources {
		t, err := tb.build(s)
		if err != nil {
			return nil, err
		}
		children[i] = t
	}
	return children, nil
}

func portIndexOf[V value.Value](edge *hgraph.Edge[V], v hgraph.VertexID) int {
	for i, t := range edge.Targets {
		if t == v {
			return i
		}
	}
	return 0
}
