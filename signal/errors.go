package signal

import "errors"

// ErrEmptySignal indicates a Waveform was constructed with zero period,
// JoinWaveforms received no waveforms, or LSBAndMSBs/MSB was called on a
// width-0 Signal.
var ErrEmptySignal = errors.New("signal: empty signal or waveform")

// ErrWidthMismatch indicates NewWaveform received ticks of differing
// widths.
var ErrWidthMismatch = errors.New("signal: width mismatch")

// ErrIndexOutOfRange indicates a bit index or slice bound fell outside
// [0, width).
var ErrIndexOutOfRange = errors.New("signal: index out of range")
