package evaluator

import "errors"

// ErrArityMismatch indicates PerformCycle was called with a different
// number of inputs than the circuit's input interface arity.
var ErrArityMismatch = errors.New("evaluator: input count does not match circuit arity")

// ErrWidthMismatch indicates one supplied input's width does not match the
// corresponding input interface wire's declared width.
var ErrWidthMismatch = errors.New("evaluator: input width does not match interface wire width")

// ErrMissingProducer indicates OutputTerm construction walked back to a
// vertex with no producing edge — a malformed or incompletely-flattened
// circuit, since every non-interface-input vertex must have exactly one
// (package hgraph's InterfacedHypergraph.Validate already enforces this at
// construction; this only fires if a caller bypasses it).
var ErrMissingProducer = errors.New("evaluator: vertex has no producer")

// ErrIncompatibleVariant indicates the rewrite pass left a DELAY, FEEDBACK
// or COMPOSITE label (or an unrecognized label kind) reachable from an
// output wire: those are not combinational leaves and never belong in a
// finished OutputTerm tree.
var ErrIncompatibleVariant = errors.New("evaluator: incompatible label variant in Mealy core")

// ErrNoPendingCycle indicates RetryWithBudget was called without a prior
// PerformCycle having failed with rewrite.ErrStepBudgetExceeded.
var ErrNoPendingCycle = errors.New("evaluator: no pending cycle to retry")
