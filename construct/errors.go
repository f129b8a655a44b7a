package construct

import "errors"

// ErrBadReplication indicates a construction was asked to replicate fewer
// than the minimum number of operations it requires (n >= 1 for
// Map/BitwiseMap, n >= 2 for Ripple/RippleMap/BitwiseRipple/BitwiseRippleMap).
var ErrBadReplication = errors.New("construct: bad replication count")

// ErrBadShape indicates the operation f passed to a construction does not
// have the arity/coarity the construction requires (e.g. Ripple requires
// f: (acc, cur) -> acc, a 2-input 1-output shape).
var ErrBadShape = errors.New("construct: operation has the wrong shape")

// ErrWidthNotDivisible indicates a bitwise construction's external bus width
// is not evenly divisible into n per-copy groups.
var ErrWidthNotDivisible = errors.New("construct: bus width not divisible by replication count")
