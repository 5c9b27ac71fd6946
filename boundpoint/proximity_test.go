package boundpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBoundProximityOrdering tests that the proximities are totally ordered as Before < At < After.
func TestBoundProximityOrdering(t *testing.T) {
	require.Equal(t, -1, BoundProximityBefore.Compare(BoundProximityAt))
	require.Equal(t, -1, BoundProximityAt.Compare(BoundProximityAfter))
	require.Equal(t, -1, BoundProximityBefore.Compare(BoundProximityAfter))

	require.Equal(t, 1, BoundProximityAfter.Compare(BoundProximityAt))
	require.Equal(t, 1, BoundProximityAt.Compare(BoundProximityBefore))
	require.Equal(t, 1, BoundProximityAfter.Compare(BoundProximityBefore))

	for _, proximity := range []BoundProximity{BoundProximityBefore, BoundProximityAt, BoundProximityAfter} {
		require.Equal(t, 0, proximity.Compare(proximity))
	}
}

// TestBoundProximityString tests that the BoundProximities are stringified correctly.
func TestBoundProximityString(t *testing.T) {
	require.Equal(t, "BoundProximityBefore", BoundProximityBefore.String())
	require.Equal(t, "BoundProximityAt", BoundProximityAt.String())
	require.Equal(t, "BoundProximityAfter", BoundProximityAfter.String())
	require.Equal(t, "BoundProximity(11)", BoundProximity(17).String())
}

// TestBoundProximityMarshalUnmarshal tests that marshaling and unmarshalling of BoundProximities works correctly.
func TestBoundProximityMarshalUnmarshal(t *testing.T) {
	for _, proximity := range []BoundProximity{BoundProximityBefore, BoundProximityAt, BoundProximityAfter} {
		marshaledProximity := proximity.Bytes()
		unmarshaledProximity, consumedBytes, err := BoundProximityFromBytes(marshaledProximity)
		require.NoError(t, err)
		require.Equal(t, len(marshaledProximity), consumedBytes)
		require.Equal(t, proximity, unmarshaledProximity)
	}
}

// TestBoundProximityUnmarshalUnknown tests that unmarshalling rejects unknown BoundProximities.
func TestBoundProximityUnmarshalUnknown(t *testing.T) {
	_, consumedBytes, err := BoundProximityFromBytes(BoundProximity(17).Bytes())
	require.ErrorIs(t, err, ErrParseBytesFailed)
	require.Equal(t, 0, consumedBytes)
}
