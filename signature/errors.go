package signature

import "errors"

// ErrUnknownPrimitive indicates Interpret was called with a Primitive not
// registered in the Signature.
var ErrUnknownPrimitive = errors.New("signature: unknown primitive")

// ErrArityMismatch indicates the number of input signals passed to Interpret
// did not match the primitive's declared input port count.
var ErrArityMismatch = errors.New("signature: arity mismatch")

// ErrCoarityMismatch indicates the interpretation function returned a number
// of output signals different from the primitive's declared output ports.
var ErrCoarityMismatch = errors.New("signature: coarity mismatch")

// ErrPortWidthMismatch indicates an input or output signal's width did not
// match the width declared by the corresponding Port.
var ErrPortWidthMismatch = errors.New("signature: port width mismatch")
