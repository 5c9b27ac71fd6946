package boundpoint

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// boundValueKind separates the variants of a BoundValue. The ranks order NegInfinity below every finite value and
// PosInfinity above every finite value.
type boundValueKind uint8

const (
	boundValueKindNegInfinity boundValueKind = iota
	boundValueKindFinite
	boundValueKindPosInfinity
)

// BoundValue represents an extended position on an ordered axis: negative infinity, a finite value together with a
// BoundProximity, or positive infinity.
//
// BoundValues are totally ordered as NegInfinity < Finite(value, proximity) < PosInfinity. Two finite BoundValues
// compare by their value first and only then by their proximity, so exclusive and inclusive bounds around the same
// value sort correctly without requiring real infinitesimals. BoundValues are immutable after construction.
type BoundValue[T constraints.Ordered] struct {
	kind      boundValueKind
	value     T
	proximity BoundProximity
}

// NegInfinityValue returns the BoundValue that is smaller than every other BoundValue.
func NegInfinityValue[T constraints.Ordered]() BoundValue[T] {
	return BoundValue[T]{kind: boundValueKindNegInfinity}
}

// FiniteValue returns the BoundValue at the given value with the given proximity.
func FiniteValue[T constraints.Ordered](value T, proximity BoundProximity) BoundValue[T] {
	return BoundValue[T]{kind: boundValueKindFinite, value: value, proximity: proximity}
}

// PosInfinityValue returns the BoundValue that is bigger than every other BoundValue.
func PosInfinityValue[T constraints.Ordered]() BoundValue[T] {
	return BoundValue[T]{kind: boundValueKindPosInfinity}
}

// Compare returns 0 if b and other represent the same position, -1 if b is smaller and 1 if b is bigger. The variants
// compare by their rank first; two finite BoundValues compare by their value and only then by their proximity.
func (b BoundValue[T]) Compare(other BoundValue[T]) int {
	if cmp := lo.Compare(b.kind, other.kind); cmp != 0 {
		return cmp
	}

	if b.kind != boundValueKindFinite {
		return 0
	}

	if cmp := lo.Compare(b.value, other.value); cmp != 0 {
		return cmp
	}

	return b.proximity.Compare(other.proximity)
}

// IsNegInfinity returns true if the BoundValue is the negative infinity.
func (b BoundValue[T]) IsNegInfinity() bool {
	return b.kind == boundValueKindNegInfinity
}

// IsFinite returns true if the BoundValue holds a finite value.
func (b BoundValue[T]) IsFinite() bool {
	return b.kind == boundValueKindFinite
}

// IsPosInfinity returns true if the BoundValue is the positive infinity.
func (b BoundValue[T]) IsPosInfinity() bool {
	return b.kind == boundValueKindPosInfinity
}

// Value returns the finite value of the BoundValue. It panics if the BoundValue is an infinity.
func (b BoundValue[T]) Value() T {
	if b.kind != boundValueKindFinite {
		panic("BoundValue is not finite - check IsFinite() before calling this method")
	}

	return b.value
}

// Proximity returns the BoundProximity of the finite value. It panics if the BoundValue is an infinity.
func (b BoundValue[T]) Proximity() BoundProximity {
	if b.kind != boundValueKindFinite {
		panic("BoundValue is not finite - check IsFinite() before calling this method")
	}

	return b.proximity
}

// String returns a human-readable version of the BoundValue.
func (b BoundValue[T]) String() string {
	switch b.kind {
	case boundValueKindNegInfinity:
		return "BoundValue(-INF)"
	case boundValueKindPosInfinity:
		return "BoundValue(+INF)"
	default:
		return stringify.Struct("BoundValue",
			stringify.NewStructField("value", fmt.Sprint(b.value)),
			stringify.NewStructField("proximity", b.proximity),
		)
	}
}
