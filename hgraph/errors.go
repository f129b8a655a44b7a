// File: errors.go
// Role: the IncompatibleParameter(kind) error taxonomy, plus the
// structural sentinels hgraph itself can raise (MissingInEdge,
// IncompatibleVariant). UnguardedFeedback belongs to package hbuilder,
// since feedback realisability is a builder-time concern.
package hgraph

import (
	"errors"
	"fmt"
)

// ParamKind classifies which parameter of a construction call was
// incompatible: width, inputs, outputs, wires, in-edges, out-edges, owner,
// values, signals, or instant-feedback.
type ParamKind string

// The parameter kinds an IncompatibleParameterError can carry.
const (
	KindWidth          ParamKind = "width"
	KindInputs         ParamKind = "inputs"
	KindOutputs        ParamKind = "outputs"
	KindWires          ParamKind = "wires"
	KindInEdges        ParamKind = "in-edges"
	KindOutEdges       ParamKind = "out-edges"
	KindOwner          ParamKind = "owner"
	KindValues         ParamKind = "values"
	KindSignals        ParamKind = "signals"
	KindInstantFeedback ParamKind = "instant-feedback"
)

// ErrIncompatibleParameter is the sentinel wrapped by every
// IncompatibleParameter(kind) error; branch with errors.Is, and recover the
// offending kind with AsIncompatibleParameter.
var ErrIncompatibleParameter = errors.New("hgraph: incompatible parameter")

// ErrMissingInEdge indicates a non-interface vertex has no incoming edge —
// a construction bug, not a user input error.
var ErrMissingInEdge = errors.New("hgraph: missing in-edge")

// ErrIncompatibleVariant indicates a pattern match over EdgeLabel fell
// through to an unexpected case.
var ErrIncompatibleVariant = errors.New("hgraph: incompatible label variant")

// IncompatibleParameterError carries the offending ParamKind alongside a
// human-readable message identifying which parameter mismatched.
type IncompatibleParameterError struct {
	Kind ParamKind
	Msg  string
}

func (e *IncompatibleParameterError) Error() string {
	return fmt.Sprintf("hgraph: incompatible parameter (%s): %s", e.Kind, e.Msg)
}

func (e *IncompatibleParameterError) Unwrap() error { return ErrIncompatibleParameter }

// NewIncompatibleParameter constructs an IncompatibleParameterError for the
// given kind and formatted message.
func NewIncompatibleParameter(kind ParamKind, format string, args ...interface{}) error {
	return &IncompatibleParameterError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
