package boundpoint

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/stringify"
)

// BoundPoint is a specific endpoint of an interval on an ordered axis. It is a thin immutable wrapper around an
// extended BoundValue and inherits its total order, allowing it to be compared and sorted alongside other BoundPoints.
type BoundPoint[T constraints.Ordered] struct {
	value BoundValue[T]
}

// Before returns the BoundPoint immediately before the given value. It represents the largest position strictly less
// than the value and is used as an exclusive upper endpoint.
func Before[T constraints.Ordered](value T) BoundPoint[T] {
	return BoundPoint[T]{value: FiniteValue(value, BoundProximityBefore)}
}

// At returns the BoundPoint exactly at the given value. It is used as an inclusive endpoint on either side.
func At[T constraints.Ordered](value T) BoundPoint[T] {
	return BoundPoint[T]{value: FiniteValue(value, BoundProximityAt)}
}

// After returns the BoundPoint immediately after the given value. It represents the smallest position strictly greater
// than the value and is used as an exclusive lower endpoint.
func After[T constraints.Ordered](value T) BoundPoint[T] {
	return BoundPoint[T]{value: FiniteValue(value, BoundProximityAfter)}
}

// NegInfinity returns the BoundPoint that is smaller than every other BoundPoint. It is used as the start of an
// interval that is unbounded below.
func NegInfinity[T constraints.Ordered]() BoundPoint[T] {
	return BoundPoint[T]{value: NegInfinityValue[T]()}
}

// PosInfinity returns the BoundPoint that is bigger than every other BoundPoint. It is used as the end of an interval
// that is unbounded above.
func PosInfinity[T constraints.Ordered]() BoundPoint[T] {
	return BoundPoint[T]{value: PosInfinityValue[T]()}
}

// Value returns the BoundValue of the BoundPoint.
func (b BoundPoint[T]) Value() BoundValue[T] {
	return b.value
}

// Compare returns 0 if b and other represent the same position, -1 if b is smaller and 1 if b is bigger.
func (b BoundPoint[T]) Compare(other BoundPoint[T]) int {
	return b.value.Compare(other.value)
}

// String returns a human-readable version of the BoundPoint.
func (b BoundPoint[T]) String() string {
	return stringify.Struct("BoundPoint",
		stringify.NewStructField("value", b.value),
	)
}
