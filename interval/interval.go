package interval

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/orderedaxis/intervals/boundpoint"
)

// Interval defines the boundaries around a contiguous span of values on an ordered axis (i.e. "integers from 1 to 3
// inclusive"). Its endpoints are extended BoundPoints, so an exclusive bound is encoded as the position immediately
// before or after its value and an unbounded side is encoded as an infinity. Membership and overlap queries therefore
// reduce to plain BoundPoint comparisons without ever branching on the IntervalType that produced the Interval.
//
// Notation           Definition           Factory
// (a ... b)          {x | a < x < b}      FromTo(a, b, IntervalTypeOpen)
// (a ... b]          {x | a < x <= b}     FromTo(a, b, IntervalTypeStartOpen)
// [a ... b)          {x | a <= x < b}     FromTo(a, b, IntervalTypeEndOpen)
// [a ... b]          {x | a <= x <= b}    FromTo(a, b, IntervalTypeClose)
// (a ... +INF)       {x | a < x}          SinceExclusive(a)
// [a ... +INF)       {x | a <= x}         SinceInclusive(a)
// (-INF ... b)       {x | x < b}          UntilExclusive(b)
// (-INF ... b]       {x | x <= b}         UntilInclusive(b)
//
// Intervals are immutable after construction and can therefore be shared freely between concurrent readers.
type Interval[T constraints.Ordered] struct {
	start boundpoint.BoundPoint[T]
	end   boundpoint.BoundPoint[T]
}

// FromTo returns an Interval that spans from start to end, with the endpoint inclusion selected by the given
// IntervalType. It fails with ErrStartMustBeMinorThanEnd if start is strictly bigger than end under the native order
// of T. start == end is accepted for every IntervalType, including IntervalTypeOpen, which then yields an Interval
// that contains no value at all (see Empty).
func FromTo[T constraints.Ordered](start T, end T, intervalType IntervalType) (Interval[T], error) {
	if start > end {
		return Interval[T]{}, ierrors.Wrapf(ErrStartMustBeMinorThanEnd, "start %v is bigger than end %v", start, end)
	}

	switch intervalType {
	case IntervalTypeOpen:
		return Interval[T]{start: boundpoint.After(start), end: boundpoint.Before(end)}, nil
	case IntervalTypeStartOpen:
		return Interval[T]{start: boundpoint.After(start), end: boundpoint.At(end)}, nil
	case IntervalTypeEndOpen:
		return Interval[T]{start: boundpoint.At(start), end: boundpoint.Before(end)}, nil
	case IntervalTypeClose:
		return Interval[T]{start: boundpoint.At(start), end: boundpoint.At(end)}, nil
	default:
		panic("unknown IntervalType - use one of the IntervalType constants")
	}
}

// SinceExclusive returns the Interval that contains all values strictly bigger than the given value.
func SinceExclusive[T constraints.Ordered](value T) Interval[T] {
	return Interval[T]{start: boundpoint.After(value), end: boundpoint.PosInfinity[T]()}
}

// SinceInclusive returns the Interval that contains all values bigger than or equal to the given value.
func SinceInclusive[T constraints.Ordered](value T) Interval[T] {
	return Interval[T]{start: boundpoint.At(value), end: boundpoint.PosInfinity[T]()}
}

// UntilExclusive returns the Interval that contains all values strictly smaller than the given value.
func UntilExclusive[T constraints.Ordered](value T) Interval[T] {
	return Interval[T]{start: boundpoint.NegInfinity[T](), end: boundpoint.Before(value)}
}

// UntilInclusive returns the Interval that contains all values smaller than or equal to the given value.
func UntilInclusive[T constraints.Ordered](value T) Interval[T] {
	return Interval[T]{start: boundpoint.NegInfinity[T](), end: boundpoint.At(value)}
}

// Contains returns true if the given value is within the bounds of the Interval.
func (i Interval[T]) Contains(value T) bool {
	point := boundpoint.At(value)

	return i.start.Compare(point) <= 0 && i.end.Compare(point) >= 0
}

// Overlaps returns true if the Interval and other share at least one position. Two Intervals overlap iff each one's
// start is not after the other's end; the comparison happens on the extended BoundPoints, so touching open endpoints
// are excluded while touching closed endpoints are included.
func (i Interval[T]) Overlaps(other Interval[T]) bool {
	return i.start.Compare(other.end) <= 0 && i.end.Compare(other.start) >= 0
}

// Empty returns true if the Interval contains no position at all, i.e. its start BoundPoint lies after its end
// BoundPoint. This is the case for Intervals of the form (v ... v).
//
// Note that certain discrete Intervals such as the integer Interval (3 ... 4) are not considered empty, even though
// they contain no actual values.
func (i Interval[T]) Empty() bool {
	return i.start.Compare(i.end) > 0
}

// HasLowerBound returns true if the Interval is bounded below by a finite start point.
func (i Interval[T]) HasLowerBound() bool {
	return !i.start.Value().IsNegInfinity()
}

// HasUpperBound returns true if the Interval is bounded above by a finite end point.
func (i Interval[T]) HasUpperBound() bool {
	return !i.end.Value().IsPosInfinity()
}

// Start returns the start BoundPoint of the Interval.
func (i Interval[T]) Start() boundpoint.BoundPoint[T] {
	return i.start
}

// End returns the end BoundPoint of the Interval.
func (i Interval[T]) End() boundpoint.BoundPoint[T] {
	return i.end
}

// String returns a human-readable version of the Interval.
func (i Interval[T]) String() string {
	var start string
	switch startValue := i.start.Value(); {
	case startValue.IsNegInfinity():
		start = "(-INF"
	case startValue.Proximity() == boundpoint.BoundProximityAfter:
		start = "(" + fmt.Sprint(startValue.Value())
	default:
		start = "[" + fmt.Sprint(startValue.Value())
	}

	var end string
	switch endValue := i.end.Value(); {
	case endValue.IsPosInfinity():
		end = "+INF)"
	case endValue.Proximity() == boundpoint.BoundProximityBefore:
		end = fmt.Sprint(endValue.Value()) + ")"
	default:
		end = fmt.Sprint(endValue.Value()) + "]"
	}

	return "Interval" + start + " ... " + end
}
