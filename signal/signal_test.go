package signal_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireforge/hypercircuit/signal"
)

// trit is a three-point carrier: lo and hi are the decimal-codable bits,
// floating is neither, making signals containing it decimal-ambiguous.
type trit int

const (
	lo trit = iota
	hi
	floating
)

func (t trit) String() string {
	switch t {
	case lo:
		return "0"
	case hi:
		return "1"
	default:
		return "Z"
	}
}

func (trit) Low() trit  { return lo }
func (trit) High() trit { return hi }

func TestSignalConstructors(t *testing.T) {
	s := signal.Of(hi)
	assert.Equal(t, 1, s.Width())

	f := signal.Fill(lo, 4)
	assert.Equal(t, 4, f.Width())
	for i := 0; i < 4; i++ {
		b, err := f.Bit(i)
		require.NoError(t, err)
		assert.Equal(t, lo, b)
	}

	bits := signal.Bits(hi, lo, hi)
	assert.Equal(t, 3, bits.Width())
	b0, _ := bits.Bit(0)
	b2, _ := bits.Bit(2)
	assert.Equal(t, hi, b0)
	assert.Equal(t, hi, b2)
}

func TestSignalBitOutOfRange(t *testing.T) {
	s := signal.Bits(lo, hi)
	_, err := s.Bit(2)
	assert.ErrorIs(t, err, signal.ErrIndexOutOfRange)
	_, err = s.Bit(-1)
	assert.ErrorIs(t, err, signal.ErrIndexOutOfRange)
}

func TestSignalSlice(t *testing.T) {
	s := signal.Bits(lo, hi, hi, lo)

	mid, err := s.Slice(1, 3)
	require.NoError(t, err)
	assert.True(t, mid.Equal(signal.Bits(hi, hi)))

	empty, err := s.Slice(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Width())

	_, err = s.Slice(3, 5)
	assert.ErrorIs(t, err, signal.ErrIndexOutOfRange)
	_, err = s.Slice(3, 1)
	assert.ErrorIs(t, err, signal.ErrIndexOutOfRange)
}

func TestSignalLSBAndMSBs(t *testing.T) {
	s := signal.Bits(hi, lo, hi)
	lsb, rest, err := s.LSBAndMSBs()
	require.NoError(t, err)
	assert.Equal(t, hi, lsb)
	assert.True(t, rest.Equal(signal.Bits(lo, hi)))

	msb, err := s.MSB()
	require.NoError(t, err)
	assert.Equal(t, hi, msb)
}

func TestSignalConcatAndEqual(t *testing.T) {
	a := signal.Bits(hi, lo)
	b := signal.Bits(lo, hi)
	c := a.Concat(b)
	assert.True(t, c.Equal(signal.Bits(hi, lo, lo, hi)))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c)) // differing widths are never equal
}

func TestSignalString(t *testing.T) {
	// Rendered MSB-first for human reading.
	assert.Equal(t, "1 0", signal.Bits(lo, hi).String())
}

func TestNewWaveform(t *testing.T) {
	_, err := signal.NewWaveform[trit](nil)
	assert.ErrorIs(t, err, signal.ErrEmptySignal)

	_, err = signal.NewWaveform([]signal.Signal[trit]{signal.Of(hi), signal.Bits(lo, hi)})
	assert.ErrorIs(t, err, signal.ErrWidthMismatch)

	w, err := signal.NewWaveform([]signal.Signal[trit]{signal.Of(hi), signal.Of(lo), signal.Of(lo)})
	require.NoError(t, err)
	assert.Equal(t, 3, w.Period())
	assert.Equal(t, 1, w.Width())
}

func TestWaveformSignalAtTickWraps(t *testing.T) {
	w, err := signal.NewWaveform([]signal.Signal[trit]{signal.Of(hi), signal.Of(lo)})
	require.NoError(t, err)
	for tick := 0; tick < 6; tick++ {
		want := hi
		if tick%2 == 1 {
			want = lo
		}
		got, _ := w.SignalAtTick(tick).Bit(0)
		assert.Equalf(t, want, got, "tick %d", tick)
	}
}

func TestJoinWaveformsAlignsByLCM(t *testing.T) {
	w2, err := signal.NewWaveform([]signal.Signal[trit]{signal.Of(hi), signal.Of(lo)})
	require.NoError(t, err)
	w3, err := signal.NewWaveform([]signal.Signal[trit]{signal.Of(lo), signal.Of(lo), signal.Of(hi)})
	require.NoError(t, err)

	rows, err := signal.JoinWaveforms([]signal.Waveform[trit]{w2, w3})
	require.NoError(t, err)
	require.Len(t, rows, 6) // lcm(2, 3)
	for tick, row := range rows {
		require.Len(t, row, 2)
		assert.True(t, row[0].Equal(w2.SignalAtTick(tick)), "tick %d waveform 0", tick)
		assert.True(t, row[1].Equal(w3.SignalAtTick(tick)), "tick %d waveform 1", tick)
	}
}

func TestDecimalUnsignedRoundTrip(t *testing.T) {
	const width = 4
	for x := int64(0); x < 1<<width; x++ {
		s := signal.UnsignedFromInt[trit](big.NewInt(x), width, lo, hi)
		got, ok := signal.UnsignedToInt(s, lo, hi)
		require.Truef(t, ok, "x=%d", x)
		assert.Equalf(t, x, got.Int64(), "x=%d", x)
	}
}

func TestDecimalSignedRoundTrip(t *testing.T) {
	const width = 4
	for x := int64(-8); x <= 7; x++ {
		s := signal.SignedFromInt[trit](big.NewInt(x), width, lo, hi)
		got, ok := signal.SignedToInt(s, lo, hi)
		require.Truef(t, ok, "x=%d", x)
		assert.Equalf(t, x, got.Int64(), "x=%d", x)
	}
}

func TestDecimalWideWidth(t *testing.T) {
	// Widths past 64 bits round-trip through math/big without truncation.
	x, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10) // 2^128 - 1
	require.True(t, ok)
	s := signal.UnsignedFromInt[trit](x, 128, lo, hi)
	got, ok := signal.UnsignedToInt(s, lo, hi)
	require.True(t, ok)
	assert.Zero(t, x.Cmp(got))
}

func TestDecimalAmbiguousBit(t *testing.T) {
	s := signal.Bits(hi, floating, lo)
	_, ok := signal.UnsignedToInt(s, lo, hi)
	assert.False(t, ok)
	_, ok = signal.SignedToInt(s, lo, hi)
	assert.False(t, ok)
}

func TestVariableSignalClose(t *testing.T) {
	vs := signal.NewVariableSignal([]signal.VarID{"x"}, []signal.BitFunc[trit]{
		func(a signal.Assignment[trit]) trit { return a["x"] },
	})
	assert.Equal(t, 1, vs.Width())

	_, err := vs.Close(signal.Assignment[trit]{})
	assert.Error(t, err)

	s, err := vs.Close(signal.Assignment[trit]{"x": hi})
	require.NoError(t, err)
	b, _ := s.Bit(0)
	assert.Equal(t, hi, b)
}

func TestVariableSignalEnumerateOver(t *testing.T) {
	domain := []trit{lo, hi}

	constant := signal.NewVariableSignal([]signal.VarID{"x"}, []signal.BitFunc[trit]{
		func(signal.Assignment[trit]) trit { return lo },
	})
	assert.Len(t, constant.EnumerateOver(domain), 1)

	identity := signal.NewVariableSignal([]signal.VarID{"x"}, []signal.BitFunc[trit]{
		func(a signal.Assignment[trit]) trit { return a["x"] },
	})
	assert.Len(t, identity.EnumerateOver(domain), 2)
}

func TestCycleInput(t *testing.T) {
	def := signal.DefiniteInput(signal.Bits(hi, lo))
	assert.True(t, def.IsDefinite())
	assert.Equal(t, signal.Definite, def.Kind())
	assert.Equal(t, 2, def.Width())
	s, ok := def.AsDefinite()
	require.True(t, ok)
	assert.True(t, s.Equal(signal.Bits(hi, lo)))
	_, ok = def.AsPartial()
	assert.False(t, ok)

	vs := signal.NewVariableSignal([]signal.VarID{"x"}, []signal.BitFunc[trit]{
		func(a signal.Assignment[trit]) trit { return a["x"] },
	})
	part := signal.PartialInput(vs)
	assert.False(t, part.IsDefinite())
	assert.Equal(t, 1, part.Width())
}
