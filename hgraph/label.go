// File: label.go
// Role: EdgeLabel, the closed 13-case tagged union. Implemented as a flat
// struct with a Kind discriminant rather than an interface hierarchy: edge
// labels are a closed sum, and switch exhaustiveness over Kind is the
// correctness tool for rule dispatch.
package hgraph

import (
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/signature"
	"github.com/wireforge/hypercircuit/value"
)

// LabelKind discriminates the EdgeLabel variant.
type LabelKind int

// The thirteen EdgeLabel variants.
const (
	LabelValue LabelKind = iota
	LabelSignal
	LabelPartial
	LabelInfiniteWaveform
	LabelPrimitive
	LabelEnhancedPrimitive
	LabelJoin
	LabelBundler
	LabelDelay
	LabelFeedback
	LabelBlackbox
	LabelComposite
	LabelArgument
)

func (k LabelKind) String() string {
	switch k {
	case LabelValue:
		return "VALUE"
	case LabelSignal:
		return "SIGNAL"
	case LabelPartial:
		return "PARTIAL"
	case LabelInfiniteWaveform:
		return "INFINITE_WAVEFORM"
	case LabelPrimitive:
		return "PRIMITIVE"
	case LabelEnhancedPrimitive:
		return "ENHANCED_PRIMITIVE"
	case LabelJoin:
		return "JOIN"
	case LabelBundler:
		return "BUNDLER"
	case LabelDelay:
		return "DELAY"
	case LabelFeedback:
		return "FEEDBACK"
	case LabelBlackbox:
		return "BLACKBOX"
	case LabelComposite:
		return "COMPOSITE"
	case LabelArgument:
		return "ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// EnhancedPrimitive is a Primitive with an attached per-output delay
// vector, carried by an ENHANCED_PRIMITIVE label.
type EnhancedPrimitive struct {
	Primitive Primitive
	Delays    []int // one non-negative delay per output port
}

// Blackbox is an opaque, externally-specified operator: it declares its
// own ports and interpretation, bypassing the owning Signature's primitive
// set entirely.
type Blackbox[V value.Value] interface {
	Name() string
	InputPorts() []Port
	OutputPorts() []Port
	Apply(inputs []signal.Signal[V]) ([]signal.Signal[V], error)
}

// Primitive and Port alias the signature package's types so callers of
// hgraph do not need to import signature directly for label construction.
type Primitive = signature.Primitive
type Port = signature.Port

// EdgeLabel is the tagged union carried by every hyperedge. Exactly one
// group of fields is meaningful, selected by Kind; constructors below
// (Value, SignalL, Partial, ...) are the only supported way to build one.
type EdgeLabel[V value.Value] struct {
	Kind LabelKind

	value    V
	sig      signal.Signal[V]
	partial  signal.VariableSignal[V]
	waveform signal.Waveform[V]
	prim     Primitive
	enhanced EnhancedPrimitive
	joinW    int
	bIn      []int
	bOut     []int
	delayN   int
	blackbox Blackbox[V]
	embedded *InterfacedHypergraph[V]
	arg      signal.CycleInput[V]

	// hasInitial/initial/signed are set only on DELAY labels created via
	// DelayLabelWithInitial, realizing a 1-cycle register: the delay's
	// visible state before any cycle has run is `initial` rather than the
	// lattice bottom.
	hasInitial bool
	initial    signal.Signal[V]
	signed     bool
}

// ValueLabel builds a VALUE(v) label: a 1-bit constant source.
func ValueLabel[V value.Value](v V) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelValue, value: v}
}

// SignalLabel builds a SIGNAL(s) label: a multi-bit constant source.
func SignalLabel[V value.Value](s signal.Signal[V]) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelSignal, sig: s}
}

// PartialLabel builds a PARTIAL(vs) label: a symbolic constant source.
func PartialLabel[V value.Value](vs signal.VariableSignal[V]) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelPartial, partial: vs}
}

// InfiniteWaveformLabel builds an INFINITE_WAVEFORM(w) label: a periodic
// stream source.
func InfiniteWaveformLabel[V value.Value](w signal.Waveform[V]) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelInfiniteWaveform, waveform: w}
}

// PrimitiveLabel builds a PRIMITIVE(g) label: an atomic operator.
func PrimitiveLabel[V value.Value](g Primitive) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelPrimitive, prim: g}
}

// EnhancedPrimitiveLabel builds an ENHANCED_PRIMITIVE(ep) label.
func EnhancedPrimitiveLabel[V value.Value](ep EnhancedPrimitive) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelEnhancedPrimitive, enhanced: ep}
}

// JoinLabel builds a JOIN(width) label: the lattice join of two width-wide
// inputs.
func JoinLabel[V value.Value](width int) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelJoin, joinW: width}
}

// BundlerLabel builds a BUNDLER(inArities, outArities) label: a
// reshape/split/fork node. Total input bits must equal total output bits.
func BundlerLabel[V value.Value](inArities, outArities []int) EdgeLabel[V] {
	return EdgeLabel[V]{
		Kind: LabelBundler,
		bIn:  append([]int(nil), inArities...),
		bOut: append([]int(nil), outArities...),
	}
}

// DelayLabel builds a DELAY(n) label: an n-cycle integer delay of a
// single width-preserving channel. width is recorded so the label is
// self-describing without consulting the source vertex.
func DelayLabel[V value.Value](n int, width int) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelDelay, delayN: n, joinW: width}
}

// DelayLabelWithInitial builds a DELAY(n) label carrying an explicit
// initial state, realizing a 1-cycle register with reset value.
// signed records whether the register's value should be interpreted as
// two's-complement signed for decimal I/O; it does not affect core
// evaluation.
func DelayLabelWithInitial[V value.Value](n int, initial signal.Signal[V], signed bool) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelDelay, delayN: n, joinW: initial.Width(), hasInitial: true, initial: initial, signed: signed}
}

// FeedbackLabel builds a FEEDBACK label: an instantaneous back-edge of the
// given width, guarded by construction-time checks in package hbuilder.
func FeedbackLabel[V value.Value](width int) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelFeedback, joinW: width}
}

// BlackboxLabel builds a BLACKBOX(bb) label: an opaque specified operator.
func BlackboxLabel[V value.Value](bb Blackbox[V]) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelBlackbox, blackbox: bb}
}

// CompositeLabel builds a COMPOSITE label: a hierarchical reference to a
// named subgraph.
func CompositeLabel[V value.Value](sub *InterfacedHypergraph[V]) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelComposite, embedded: sub}
}

// ArgumentLabel builds an ARGUMENT(cycleInput) label: the auxiliary
// single-output node the rewrite engine attaches to an input interface wire
// at the start of each cycle.
func ArgumentLabel[V value.Value](ci signal.CycleInput[V]) EdgeLabel[V] {
	return EdgeLabel[V]{Kind: LabelArgument, arg: ci}
}

// Accessors below return the payload for the corresponding Kind; callers
// are expected to have already dispatched on Kind (see rewrite's rule
// pattern matching) and must not call the wrong accessor.

func (l EdgeLabel[V]) Value() V                           { return l.value }
func (l EdgeLabel[V]) Signal() signal.Signal[V]            { return l.sig }
func (l EdgeLabel[V]) Partial() signal.VariableSignal[V]   { return l.partial }
func (l EdgeLabel[V]) Waveform() signal.Waveform[V]        { return l.waveform }
func (l EdgeLabel[V]) Prim() Primitive                     { return l.prim }
func (l EdgeLabel[V]) Enhanced() EnhancedPrimitive         { return l.enhanced }
func (l EdgeLabel[V]) JoinWidth() int                      { return l.joinW }
func (l EdgeLabel[V]) BundlerIn() []int                    { return append([]int(nil), l.bIn...) }
func (l EdgeLabel[V]) BundlerOut() []int                   { return append([]int(nil), l.bOut...) }
func (l EdgeLabel[V]) DelayN() int                         { return l.delayN }
func (l EdgeLabel[V]) DelayWidth() int                     { return l.joinW }
func (l EdgeLabel[V]) FeedbackWidth() int                  { return l.joinW }
func (l EdgeLabel[V]) Blackbox() Blackbox[V]               { return l.blackbox }
func (l EdgeLabel[V]) Composite() *InterfacedHypergraph[V] { return l.embedded }
func (l EdgeLabel[V]) Argument() signal.CycleInput[V]      { return l.arg }
func (l EdgeLabel[V]) HasInitial() bool                    { return l.hasInitial }
func (l EdgeLabel[V]) Initial() signal.Signal[V]            { return l.initial }
func (l EdgeLabel[V]) Signed() bool                         { return l.signed }

// InPortWidths returns the declared input widths for this label, i.e. the
// widths every source vertex of an edge carrying this label must have, in
// order.
func (l EdgeLabel[V]) InPortWidths() []int {
	switch l.Kind {
	case LabelValue, LabelSignal, LabelPartial, LabelInfiniteWaveform, LabelArgument:
		return nil
	case LabelPrimitive:
		return portWidths(l.prim.Inputs)
	case LabelEnhancedPrimitive:
		return portWidths(l.enhanced.Primitive.Inputs)
	case LabelJoin:
		return []int{l.joinW, l.joinW}
	case LabelBundler:
		return append([]int(nil), l.bIn...)
	case LabelDelay:
		return []int{l.joinW}
	case LabelFeedback:
		return []int{l.joinW}
	case LabelBlackbox:
		return portWidths(l.blackbox.InputPorts())
	case LabelComposite:
		return l.embedded.InputWidths()
	default:
		return nil
	}
}

// OutPortWidths returns the declared output widths for this label, i.e.
// the widths every target vertex of an edge carrying this label must have,
// in order.
func (l EdgeLabel[V]) OutPortWidths() []int {
	switch l.Kind {
	case LabelValue:
		return []int{1}
	case LabelSignal:
		return []int{l.sig.Width()}
	case LabelPartial:
		return []int{l.partial.Width()}
	case LabelInfiniteWaveform:
		return []int{l.waveform.Width()}
	case LabelArgument:
		return []int{l.arg.Width()}
	case LabelPrimitive:
		return portWidths(l.prim.Outputs)
	case LabelEnhancedPrimitive:
		return portWidths(l.enhanced.Primitive.Outputs)
	case LabelJoin:
		return []int{l.joinW}
	case LabelBundler:
		return append([]int(nil), l.bOut...)
	case LabelDelay:
		return []int{l.joinW}
	case LabelFeedback:
		return []int{l.joinW}
	case LabelBlackbox:
		return portWidths(l.blackbox.OutputPorts())
	case LabelComposite:
		return l.embedded.OutputWidths()
	default:
		return nil
	}
}

func portWidths(ports []Port) []int {
	out := make([]int, len(ports))
	for i, p := range ports {
		out[i] = p.Width
	}
	return out
}
