// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Combining-operation contracts.
//
// Every contract is an F-bounded constraint interface: a carrier type
// implements the algebra for itself, and generic code is parameterized
// as [S Semigroup[S]], [M Monoid[M]], and so on.

// Semigroup is the constraint for types with an associative combining
// operation. For all a, b, c the equality
//
//	a.Combine(b).Combine(c) == a.Combine(b.Combine(c))
//
// must hold. Many types form semigroups in more than one way — integers
// combine under both addition and multiplication. When that happens, fix
// the operation with a wrapper type such as [Sum] or [Product].
type Semigroup[T any] interface {
	// Combine merges the receiver with other. Total over the carrier;
	// ownership of both inputs transfers into the result, and the
	// receiver's backing storage may be reused.
	Combine(other T) T
}

// Monoid is a [Semigroup] with a distinguished identity value.
//
// Unit must be receiver-independent: the same fixed value on every call,
// including calls on the zero value of the carrier. Generic code obtains
// the identity as
//
//	var zero M
//	unit := zero.Unit()
//
// For all x: unit.Combine(x) == x and x.Combine(unit) == x.
type Monoid[T any] interface {
	Semigroup[T]
	Unit() T
}

// Reducer is a [Semigroup] with a canonical injection from a raw element
// type T, enabling left-to-right accumulation without a pre-existing
// accumulator.
//
// Folding raw elements by injecting each one and combining —
//
//	acc = acc.Combine(zero.Inject(x))
//
// — allocates a fresh singleton per step and, for buffer-like carriers,
// runs in quadratic time. CombineRight is the override point: an instance
// may append into the existing accumulator instead. Overrides must stay
// observationally equal to the defaults [CombineLeftOf] and
// [CombineRightOf], differing only in cost.
type Reducer[R, T any] interface {
	Semigroup[R]
	// Inject maps a raw element into the carrier. Total, and
	// receiver-independent like a Monoid unit.
	Inject(value T) R
	// CombineLeft folds value in from the left:
	// equal to Inject(value).Combine(receiver).
	CombineLeft(value T) R
	// CombineRight folds value in from the right:
	// equal to receiver.Combine(Inject(value)).
	CombineRight(value T) R
}

// ReducerMonoid constrains carriers that are both a [Reducer] over T and
// a [Monoid]. [FoldReduce] requires it so an empty sequence can yield
// the unit.
type ReducerMonoid[R, T any] interface {
	Reducer[R, T]
	Monoid[R]
}

// CombineLeftOf is the default CombineLeft body: inject the value, then
// combine it on the left. Instances without a cheaper strategy delegate
// here.
func CombineLeftOf[R Reducer[R, T], T any](r R, value T) R {
	var zero R
	return zero.Inject(value).Combine(r)
}

// CombineRightOf is the default CombineRight body: inject the value,
// then combine it on the right.
func CombineRightOf[R Reducer[R, T], T any](r R, value T) R {
	var zero R
	return r.Combine(zero.Inject(value))
}

// Wrapper is the constraint for newtype wrappers: single-field types
// isomorphic to their inner value. FromInner and IntoInner are total,
// pure, and form a lossless round trip.
type Wrapper[W, T any] interface {
	// FromInner wraps a raw value. Receiver-independent; callable on the
	// zero value of W.
	FromInner(value T) W
	// IntoInner unwraps the value.
	IntoInner() T
}

// Wrap lifts a raw value into a wrapper type:
//
//	s := alg.Wrap[alg.Sum[int]](3)
func Wrap[W Wrapper[W, T], T any](value T) W {
	var zero W
	return zero.FromInner(value)
}

// Unwrap extracts the inner value from a wrapper. Equivalent to calling
// IntoInner directly; useful as a function argument.
func Unwrap[W Wrapper[W, T], T any](w W) T {
	return w.IntoInner()
}
