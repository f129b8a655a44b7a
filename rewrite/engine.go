// File: engine.go
// Role: Engine — the FIFO work-queue traversal that drives the built-in
// rules to a fixed point.
package rewrite

import (
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/signature"
	"github.com/wireforge/hypercircuit/value"
)

// terminationFactor bounds the engine's internal well-founded-measure
// check: a cyclic-combinational graph whose feedback never settles is
// aborted once the queue has processed more than terminationFactor times
// the edge count without emptying, rather than spinning indefinitely.
const terminationFactor = 8

// Engine runs the rewrite rule set over one Hypergraph until its work
// queue is exhausted (a fixed point) or a failure condition is reached.
type Engine[V value.Value] struct {
	Graph *hgraph.Hypergraph[V]
	Sig   *signature.Signature[V]
	Rules []Rule[V]
}

// NewEngine returns an Engine over graph/sig with the built-in rule set.
func NewEngine[V value.Value](graph *hgraph.Hypergraph[V], sig *signature.Signature[V]) *Engine[V] {
	return &Engine[V]{Graph: graph, Sig: sig, Rules: DefaultRules[V]()}
}

// Run drains the work queue seeded by initial, dispatching each dequeued
// edge element to the first matching rule that fires, and requeueing the
// edges that rule's firing unlocks. stepBudget, if > 0, is a caller-
// supplied cap on dequeue count; exceeding it
// returns ErrStepBudgetExceeded. Independently of stepBudget, exceeding
// terminationFactor*edgeCount dequeues returns ErrNonTerminatingRewrite.
func (e *Engine[V]) Run(initial []TraversalElement, stepBudget int) error {
	queue := append([]TraversalElement(nil), initial...)
	hardCap := terminationFactor * (len(e.Graph.EdgeIDs()) + 1)
	steps := 0

	for len(queue) > 0 {
		elem := queue[0]
		queue = queue[1:]
		if elem.Kind != EdgeElem {
			continue
		}

		if stepBudget > 0 && steps >= stepBudget {
			return ErrStepBudgetExceeded
		}
		if steps >= hardCap {
			return ErrNonTerminatingRewrite
		}
		steps++

		if _, ok := e.Graph.Edge(elem.Edge); !ok {
			continue // already rewritten away by an earlier firing
		}

		for _, r := range e.Rules {
			edge, ok := e.Graph.Edge(elem.Edge)
			if !ok {
				break
			}
			if !r.Match(edge.Label) {
				continue
			}
			fired, next, err := r.Fire(e.Graph, e.Sig, elem.Edge)
			if err != nil {
				return err
			}
			if fired {
				queue = append(queue, next...)
				break
			}
		}
	}
	return nil
}
