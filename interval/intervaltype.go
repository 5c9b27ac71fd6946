package interval

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/core/marshalutil"
)

// IntervalType selects which of the two finite endpoints of an interval are inclusive. It is a construction-time
// parameter only: the endpoints of a constructed Interval fully encode the inclusion semantics, so the IntervalType is
// never retained as interval state.
type IntervalType uint8

const (
	// IntervalTypeOpen indicates that both endpoints are exclusive, i.e. (start ... end).
	IntervalTypeOpen IntervalType = iota

	// IntervalTypeStartOpen indicates that the start is exclusive and the end is inclusive, i.e. (start ... end].
	IntervalTypeStartOpen

	// IntervalTypeEndOpen indicates that the start is inclusive and the end is exclusive, i.e. [start ... end).
	IntervalTypeEndOpen

	// IntervalTypeClose indicates that both endpoints are inclusive, i.e. [start ... end].
	IntervalTypeClose
)

// IntervalTypeNames contains a dictionary of the names of IntervalTypes.
var IntervalTypeNames = [...]string{
	"IntervalTypeOpen",
	"IntervalTypeStartOpen",
	"IntervalTypeEndOpen",
	"IntervalTypeClose",
}

// IntervalTypeFromBytes unmarshals an IntervalType from a sequence of bytes.
func IntervalTypeFromBytes(intervalTypeBytes []byte) (intervalType IntervalType, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(intervalTypeBytes)
	if intervalType, err = IntervalTypeFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse IntervalType from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// IntervalTypeFromMarshalUtil unmarshals an IntervalType using a MarshalUtil (for easier unmarshalling).
func IntervalTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (intervalType IntervalType, err error) {
	intervalTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read IntervalType: %w", err)

		return
	}

	if intervalType = IntervalType(intervalTypeByte); intervalType > IntervalTypeClose {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unsupported IntervalType (%X)", intervalType)

		return
	}

	return
}

// Bytes returns a marshaled version of the IntervalType.
func (i IntervalType) Bytes() []byte {
	return []byte{byte(i)}
}

// String returns a human-readable version of the IntervalType.
func (i IntervalType) String() string {
	if int(i) >= len(IntervalTypeNames) {
		return fmt.Sprintf("IntervalType(%X)", uint8(i))
	}

	return IntervalTypeNames[i]
}
