// Package signal implements the finite-width bit-vector algebra:
// Signal (a fixed-width, LSB-first sequence of values), Waveform (a finite,
// implicitly-infinite periodic sequence of signals), VariableSignal (a
// per-bit symbolic closure over named variables, for partial evaluation),
// and CycleInput (the definite/partial union fed to the evaluator each
// cycle).
//
// A decimal codec (UnsignedFromInt/SignedFromInt/UnsignedToInt/SignedToInt)
// is provided for any value type implementing the Decimal capability.
package signal
