// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Capability constraints for deriving wrapper instances.

// Number is the constraint for [Sum] and [Product] carriers: numeric
// types with an additive zero and a multiplicative one.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bounded is the constraint for [Min] and [Max] carriers: totally
// ordered types with minimum and maximum representable values.
//
// The union lists exact predeclared types (no ~ terms) so the extremal
// constants can be recovered by type switch in [maxValue] and
// [minValue]. Strings are excluded: no greatest string exists, so
// Min[string] would have no lawful unit.
type Bounded interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// maxValue returns the maximum representable value of T. Float bounds
// are +Inf; NaN is outside the lawful domain of [Min] and [Max].
func maxValue[T Bounded]() (v T) {
	switch p := any(&v).(type) {
	case *int:
		*p = math.MaxInt
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint:
		*p = math.MaxUint
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *float32:
		*p = float32(math.Inf(1))
	case *float64:
		*p = math.Inf(1)
	}
	return v
}

// minValue returns the minimum representable value of T. The unsigned
// minimum is the zero value, so unsigned cases need no assignment.
func minValue[T Bounded]() (v T) {
	switch p := any(&v).(type) {
	case *int:
		*p = math.MinInt
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *float32:
		*p = float32(math.Inf(-1))
	case *float64:
		*p = math.Inf(-1)
	}
	return v
}
