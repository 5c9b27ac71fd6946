package boundpoint

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/core/marshalutil"
)

// BoundProximity indicates where a finite bound sits relative to its value: immediately before it, exactly at it or
// immediately after it. The proximities are totally ordered as Before < At < After, which places "just below x" and
// "just above x" correctly relative to x itself when BoundValues are compared.
type BoundProximity uint8

const (
	// BoundProximityBefore indicates that the bound lies immediately before the value. It is used for an exclusive
	// upper bound, e.g. [... value).
	BoundProximityBefore BoundProximity = iota

	// BoundProximityAt indicates that the bound lies exactly at the value. It is used for an inclusive bound on either
	// side, e.g. [value ...] or [... value].
	BoundProximityAt

	// BoundProximityAfter indicates that the bound lies immediately after the value. It is used for an exclusive lower
	// bound, e.g. (value ...].
	BoundProximityAfter
)

// BoundProximityNames contains a dictionary of the names of BoundProximities.
var BoundProximityNames = [...]string{
	"BoundProximityBefore",
	"BoundProximityAt",
	"BoundProximityAfter",
}

// BoundProximityFromBytes unmarshals a BoundProximity from a sequence of bytes.
func BoundProximityFromBytes(proximityBytes []byte) (proximity BoundProximity, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(proximityBytes)
	if proximity, err = BoundProximityFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse BoundProximity from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundProximityFromMarshalUtil unmarshals a BoundProximity using a MarshalUtil (for easier unmarshalling).
func BoundProximityFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (proximity BoundProximity, err error) {
	proximityByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read BoundProximity: %w", err)

		return
	}

	if proximity = BoundProximity(proximityByte); proximity > BoundProximityAfter {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unsupported BoundProximity (%X)", proximity)

		return
	}

	return
}

// Compare returns 0 if b and other are equal, -1 if b is smaller and 1 if b is bigger.
func (b BoundProximity) Compare(other BoundProximity) int {
	return lo.Compare(b, other)
}

// Bytes returns a marshaled version of the BoundProximity.
func (b BoundProximity) Bytes() []byte {
	return []byte{byte(b)}
}

// String returns a human-readable version of the BoundProximity.
func (b BoundProximity) String() string {
	if int(b) >= len(BoundProximityNames) {
		return fmt.Sprintf("BoundProximity(%X)", uint8(b))
	}

	return BoundProximityNames[b]
}
