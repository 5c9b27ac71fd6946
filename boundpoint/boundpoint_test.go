package boundpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBoundPointConstructors tests that the constructors wrap the expected BoundValues.
func TestBoundPointConstructors(t *testing.T) {
	require.Equal(t, FiniteValue(1, BoundProximityBefore), Before(1).Value())
	require.Equal(t, FiniteValue(1, BoundProximityAt), At(1).Value())
	require.Equal(t, FiniteValue(1, BoundProximityAfter), After(1).Value())
	require.Equal(t, NegInfinityValue[int](), NegInfinity[int]().Value())
	require.Equal(t, PosInfinityValue[int](), PosInfinity[int]().Value())
}

// TestBoundPointCompare tests that BoundPoints inherit the total order of their contained BoundValues. In particular,
// the three bound points around a single value sort as Before(x) < At(x) < After(x) and After(x) still sorts below
// Before(y) for any bigger value y.
func TestBoundPointCompare(t *testing.T) {
	require.Equal(t, -1, Before(1).Compare(At(1)))
	require.Equal(t, -1, At(1).Compare(After(1)))
	require.Equal(t, -1, Before(1).Compare(After(1)))
	require.Equal(t, 0, At(1).Compare(At(1)))

	require.Equal(t, -1, After(1).Compare(Before(2)))
	require.Equal(t, 1, Before(2).Compare(After(1)))

	require.Equal(t, -1, NegInfinity[int]().Compare(Before(1)))
	require.Equal(t, 1, PosInfinity[int]().Compare(After(1)))
	require.Equal(t, -1, NegInfinity[int]().Compare(PosInfinity[int]()))
}

// TestBoundPointOrderingAxisTypes tests the ordering on a non-integer axis type.
func TestBoundPointOrderingAxisTypes(t *testing.T) {
	require.Equal(t, -1, Before("b").Compare(At("b")))
	require.Equal(t, -1, At("a").Compare(At("b")))
	require.Equal(t, 1, After(2.5).Compare(At(2.5)))
	require.Equal(t, -1, At(2.5).Compare(At(3.5)))
}

// TestBoundPointString tests that BoundPoints are stringified correctly.
func TestBoundPointString(t *testing.T) {
	require.Contains(t, At(1).String(), "BoundPoint")
	require.Contains(t, NegInfinity[int]().String(), "-INF")
	require.Contains(t, PosInfinity[int]().String(), "+INF")
}
