package rewrite

import "errors"

// ErrNonTerminatingRewrite indicates the work queue exceeded the engine's
// internal well-founded-measure bound without reaching a fixed point —
// only possible in a declared cyclic-combinational graph whose feedback
// loop never settles.
var ErrNonTerminatingRewrite = errors.New("rewrite: non-terminating rewrite")

// ErrStepBudgetExceeded indicates a caller-supplied step budget was
// consumed before the work queue emptied.
var ErrStepBudgetExceeded = errors.New("rewrite: step budget exceeded")

// ErrIncompatibleVariant indicates a rule's Fire encountered a label shape
// it cannot interpret (e.g. a BLACKBOX declaring a port count its own
// Apply does not honor).
var ErrIncompatibleVariant = errors.New("rewrite: incompatible variant")
