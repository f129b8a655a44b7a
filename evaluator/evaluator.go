// File: evaluator.go
// Role: Evaluator — the cycle-driven symbolic evaluator. Each
// PerformCycle call takes one disposable copy of the circuit's flattened
// structure, attaches an ARGUMENT edge per external input and per currently
// held delay state, runs package rewrite's engine to a fixed point, reads
// back one OutputTerm per output interface wire, advances delay state from
// the newly settled next-value wires, and records the tick in history.
package evaluator

import (
	"errors"
	"fmt"

	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/rewrite"
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/signature"
	"github.com/wireforge/hypercircuit/value"
)

// delayState tracks one DELAY(n) edge's cross-cycle pipeline: the values
// currently in flight through it, and the template vertex ids identifying
// its data input (newValue, read back after rewriting and pushed onto the
// back of the queue) and its state output (stateOut, where the front of the
// queue is spliced in as an ARGUMENT leaf each cycle).
type delayState[V value.Value] struct {
	edge     hgraph.EdgeID
	newValue hgraph.VertexID
	stateOut hgraph.VertexID
	width    int

	// queue has length n for a DELAY(n) edge: queue[0] is the value visible
	// at stateOut this cycle, and a value read from newValue at the end of
	// a cycle emerges n cycles later.
	queue []signal.CycleInput[V]
}

// Evaluator holds a Signature, a flattened circuit template, and the
// current state of every DELAY edge within it. It is not safe for
// concurrent PerformCycle calls — each call mutates delay state and
// appends to history.
type Evaluator[V value.Value] struct {
	sig  *signature.Signature[V]
	tmpl *hgraph.InterfacedHypergraph[V]

	delays []delayState[V]
	opts   config

	history []CycleRecord[V]

	pending       *hgraph.Hypergraph[V]
	pendingInputs []signal.CycleInput[V]
}

// New builds an Evaluator over top. It validates top's structural
// invariants, then flattens every COMPOSITE edge in place
// (hgraph.InlineAllComposites) — top is mutated and owned by the returned
// Evaluator from this point on; callers should not continue to use or
// mutate it directly. Every DELAY(n) edge reachable in the flattened graph
// is discovered and its n-slot pipeline seeded throughout with its declared
// initial state, or the lattice bottom filled to its width if it declares
// none.
func New[V value.Value](sig *signature.Signature[V], top *hgraph.InterfacedHypergraph[V], opts ...Option) (*Evaluator[V], error) {
	if err := top.Validate(); err != nil {
		return nil, fmt.Errorf("evaluator.New: %w", err)
	}
	if err := top.Graph.InlineAllComposites(); err != nil {
		return nil, fmt.Errorf("evaluator.New: flattening composites: %w", err)
	}

	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	ev := &Evaluator[V]{sig: sig, tmpl: top, opts: cfg}

	for _, eid := range top.Graph.EdgeIDs() {
		edge, ok := top.Graph.Edge(eid)
		if !ok || edge.Label.Kind != hgraph.LabelDelay {
			continue
		}
		n := edge.Label.DelayN()
		if n < 1 {
			return nil, fmt.Errorf("evaluator.New: %w", hgraph.NewIncompatibleParameter(hgraph.KindValues, "delay edge %d declares %d cycles, want >= 1", eid, n))
		}
		width := edge.Label.DelayWidth()
		var seed signal.CycleInput[V]
		if edge.Label.HasInitial() {
			seed = signal.DefiniteInput[V](edge.Label.Initial())
		} else {
			seed = signal.DefiniteInput[V](signal.Fill(sig.Lattice.Bottom(), width))
		}
		queue := make([]signal.CycleInput[V], n)
		for i := range queue {
			queue[i] = seed
		}
		ev.delays = append(ev.delays, delayState[V]{
			edge:     eid,
			newValue: edge.Sources[0],
			stateOut: edge.Targets[0],
			width:    width,
			queue:    queue,
		})
	}

	return ev, nil
}

// PerformCycle runs one clock cycle: inputs.len must equal the circuit's
// arity, and each input's width must match the corresponding interface
// wire's declared width. Returns one OutputTerm per output
// interface wire, in order, and also advances every delay's held state
// before returning.
//
// A rewrite.ErrStepBudgetExceeded failure (only possible when New was given
// WithStepBudget) leaves the partially-rewritten working graph retained:
// call RetryWithBudget with a larger budget to continue the same cycle
// rather than losing the progress already made.
func (ev *Evaluator[V]) PerformCycle(inputs []signal.CycleInput[V]) ([]OutputTerm[V], error) {
	if len(inputs) != ev.tmpl.Arity() {
		return nil, fmt.Errorf("evaluator.PerformCycle: got %d inputs, want %d: %w", len(inputs), ev.tmpl.Arity(), ErrArityMismatch)
	}
	widths := ev.tmpl.InputWidths()
	for i, ci := range inputs {
		if ci.Width() != widths[i] {
			return nil, fmt.Errorf("evaluator.PerformCycle: input %d width %d, want %d: %w", i, ci.Width(), widths[i], ErrWidthMismatch)
		}
	}

	work := ev.tmpl.Graph.Clone()
	if err := ev.prepareCycle(work, inputs); err != nil {
		return nil, err
	}

	if err := ev.runEngine(work); err != nil {
		if errors.Is(err, rewrite.ErrStepBudgetExceeded) {
			ev.pending = work
			ev.pendingInputs = inputs
		}
		return nil, err
	}

	return ev.finishCycle(work, inputs)
}

// RetryWithBudget continues the cycle most recently left pending by a
// rewrite.ErrStepBudgetExceeded failure, with a (presumably larger) step
// budget. ErrNoPendingCycle if no cycle is pending.
func (ev *Evaluator[V]) RetryWithBudget(stepBudget int) ([]OutputTerm[V], error) {
	if ev.pending == nil {
		return nil, ErrNoPendingCycle
	}
	work := ev.pending
	eng := rewrite.NewEngine(work, ev.sig)
	if err := eng.Run(allEdgeElems(work), stepBudget); err != nil {
		if errors.Is(err, rewrite.ErrStepBudgetExceeded) {
			return nil, err // ev.pending stays set for a further retry
		}
		ev.pending = nil
		return nil, err
	}
	ev.pending = nil
	inputs := ev.pendingInputs
	ev.pendingInputs = nil
	return ev.finishCycle(work, inputs)
}

// PerformCycleWaveform threads w's ticks through PerformCycle one at a
// time, running w.Period() ordinary cycles and returning each tick's
// output terms in order. w's width
// must equal the sum of every input interface wire's width; tick t's bits
// are de-muxed onto the circuit's input ports in declaration order, port 0
// taking the lowest bits — the same LSB-first convention package signal
// uses throughout.
func (ev *Evaluator[V]) PerformCycleWaveform(w signal.Waveform[V]) ([][]OutputTerm[V], error) {
	widths := ev.tmpl.InputWidths()
	total := 0
	for _, wd := range widths {
		total += wd
	}
	if w.Width() != total {
		return nil, fmt.Errorf("evaluator.PerformCycleWaveform: waveform width %d, want %d (sum of input widths): %w", w.Width(), total, ErrWidthMismatch)
	}

	results := make([][]OutputTerm[V], w.Period())
	for t := 0; t < w.Period(); t++ {
		tick := w.SignalAtTick(t)
		inputs := make([]signal.CycleInput[V], len(widths))
		pos := 0
		for i, wd := range widths {
			s, err := tick.Slice(pos, pos+wd)
			if err != nil {
				return nil, fmt.Errorf("evaluator.PerformCycleWaveform: tick %d: %w", t, err)
			}
			inputs[i] = signal.DefiniteInput[V](s)
			pos += wd
		}
		outs, err := ev.PerformCycle(inputs)
		if err != nil {
			return nil, fmt.Errorf("evaluator.PerformCycleWaveform: tick %d: %w", t, err)
		}
		results[t] = outs
	}
	return results, nil
}

// prepareCycle attaches an ARGUMENT edge at each input interface wire
// (carrying that port's cycle input) and at each delay's state-output wire
// (carrying its currently held state, replacing the DELAY edge itself for
// the duration of this cycle's combinational rewriting).
func (ev *Evaluator[V]) prepareCycle(work *hgraph.Hypergraph[V], inputs []signal.CycleInput[V]) error {
	for i, id := range ev.tmpl.Inputs {
		if _, err := work.AddEdgeToExistingTarget(hgraph.ArgumentLabel[V](inputs[i]), nil, id); err != nil {
			return fmt.Errorf("evaluator.prepareCycle: input %d: %w", i, err)
		}
	}
	for _, d := range ev.delays {
		if err := work.RemoveEdge(d.edge); err != nil {
			return fmt.Errorf("evaluator.prepareCycle: detaching delay edge %d: %w", d.edge, err)
		}
		if _, err := work.AddEdgeToExistingTarget(hgraph.ArgumentLabel[V](d.queue[0]), nil, d.stateOut); err != nil {
			return fmt.Errorf("evaluator.prepareCycle: seeding delay state at wire %d: %w", d.stateOut, err)
		}
	}
	return rewrite.InsertForks(work)
}

func (ev *Evaluator[V]) runEngine(work *hgraph.Hypergraph[V]) error {
	eng := rewrite.NewEngine(work, ev.sig)
	return eng.Run(allEdgeElems(work), ev.opts.stepBudget)
}

// finishCycle reads back an OutputTerm per output interface wire, shifts
// every delay's queue forward by pushing its now-settled next value onto
// the back, and records the tick into history.
func (ev *Evaluator[V]) finishCycle(work *hgraph.Hypergraph[V], inputs []signal.CycleInput[V]) ([]OutputTerm[V], error) {
	tb := newTermBuilder(work)
	outs := make([]OutputTerm[V], len(ev.tmpl.Outputs))
	for i, id := range ev.tmpl.Outputs {
		t, err := tb.build(id)
		if err != nil {
			return nil, fmt.Errorf("evaluator.finishCycle: output %d: %w", i, err)
		}
		outs[i] = t
	}

	newStates := make([]signal.CycleInput[V], len(ev.delays))
	for i, d := range ev.delays {
		ci, ok := rewrite.ResolveLeaf(work, d.newValue)
		if !ok {
			return nil, fmt.Errorf("evaluator.finishCycle: delay %d's next value at wire %d did not settle: %w", d.edge, d.newValue, ErrMissingProducer)
		}
		newStates[i] = ci
	}
	for i := range ev.delays {
		ev.delays[i].queue = append(ev.delays[i].queue[1:], newStates[i])
	}

	ev.history = append(ev.history, CycleRecord[V]{
		Inputs:  append([]signal.CycleInput[V](nil), inputs...),
		Outputs: outs,
	})
	return outs, nil
}

func allEdgeElems[V value.Value](g *hgraph.Hypergraph[V]) []rewrite.TraversalElement {
	ids := g.EdgeIDs()
	out := make([]rewrite.TraversalElement, len(ids))
	for i, id := range ids {
		out[i] = rewrite.OfEdge(id)
	}
	return out
}

