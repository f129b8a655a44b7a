package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireforge/hypercircuit/value"
)

// lv is a tiny named carrier for exercising NewLattice's validation paths
// independently of package belnap.
type lv string

func (v lv) String() string { return string(v) }

// diamond is the four-point lattice bot < {a, b} < top with a and b
// incomparable.
func diamondOrder(x, y lv) bool {
	if x == y || x == "bot" || y == "top" {
		return true
	}
	return false
}

func diamond(t *testing.T) *value.Lattice[lv] {
	t.Helper()
	lat, err := value.NewLattice([]lv{"bot", "a", "b", "top"}, diamondOrder)
	require.NoError(t, err)
	return lat
}

func TestNewLatticeDiamond(t *testing.T) {
	lat := diamond(t)
	assert.Equal(t, lv("bot"), lat.Bottom())
	assert.Equal(t, lv("top"), lat.Top())
	assert.Equal(t, lv("top"), lat.Join("a", "b"))
	assert.Equal(t, lv("bot"), lat.Meet("a", "b"))
	assert.Equal(t, lv("a"), lat.Join("bot", "a"))
	assert.Equal(t, lv("a"), lat.Meet("a", "top"))
}

func TestLatticeLaws(t *testing.T) {
	lat := diamond(t)
	carrier := lat.Carrier()
	for _, x := range carrier {
		assert.Equal(t, x, lat.Join(x, x), "join idempotence at %s", x)
		assert.Equal(t, x, lat.Meet(x, x), "meet idempotence at %s", x)
		for _, y := range carrier {
			assert.Equal(t, lat.Join(x, y), lat.Join(y, x), "join commutativity at (%s,%s)", x, y)
			assert.Equal(t, lat.Meet(x, y), lat.Meet(y, x), "meet commutativity at (%s,%s)", x, y)
			assert.Equal(t, x, lat.Meet(lat.Join(x, y), x), "absorption at (%s,%s)", x, y)
			assert.Equal(t, x, lat.Join(lat.Meet(x, y), x), "dual absorption at (%s,%s)", x, y)
			for _, z := range carrier {
				assert.Equal(t,
					lat.Join(lat.Join(x, y), z),
					lat.Join(x, lat.Join(y, z)),
					"join associativity at (%s,%s,%s)", x, y, z)
			}
		}
	}
}

func TestNewLatticeEmptyCarrier(t *testing.T) {
	_, err := value.NewLattice(nil, diamondOrder)
	assert.ErrorIs(t, err, value.ErrEmptyCarrier)
}

func TestNewLatticeNoUniqueExtremum(t *testing.T) {
	// An antichain has neither a minimum nor a maximum.
	_, err := value.NewLattice([]lv{"a", "b"}, func(x, y lv) bool { return x == y })
	assert.ErrorIs(t, err, value.ErrNotALattice)
}

func TestNewLatticeNoUniqueBound(t *testing.T) {
	// bot < {a, b} < {c, d}: a and b have two incomparable upper bounds and
	// no least one, even though a unique min (bot) and max would need one
	// too — the missing top is caught first.
	order := func(x, y lv) bool {
		if x == y || x == "bot" {
			return true
		}
		if (x == "a" || x == "b") && (y == "c" || y == "d") {
			return true
		}
		return false
	}
	_, err := value.NewLattice([]lv{"bot", "a", "b", "c", "d"}, order)
	assert.ErrorIs(t, err, value.ErrNotALattice)
}
