package hbuilder

import "errors"

// ErrUnguardedFeedback indicates Feedback was asked to close a loop with no
// DELAY edge on any path from target to source, in a graph not declared
// cyclic-combinational; such a loop is not realisable in hardware.
var ErrUnguardedFeedback = errors.New("hbuilder: unguarded feedback")
