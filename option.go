// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Option represents an optional value over a semigroup carrier: either
// present (Some) or absent (None).
//
// Option lifts the inner algebra through absence — None is neutral on
// either side, and two present values combine inner-wise. It doubles as
// the empty-sequence signal of the nonempty folds.
type Option[T Semigroup[T]] struct {
	value   T
	present bool
}

// Some creates a present Option.
func Some[T Semigroup[T]](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an absent Option.
func None[T Semigroup[T]]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.present {
		return o.value, true
	}
	var zero T
	return zero, false
}

// GetOrElse returns the value, or fallback when absent.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Combine merges two optional values: absence is neutral, and present
// values combine inner-wise.
func (o Option[T]) Combine(other Option[T]) Option[T] {
	switch {
	case !o.present:
		return other
	case !other.present:
		return o
	default:
		return Some(o.value.Combine(other.value))
	}
}

// Unit returns the absent value.
func (Option[T]) Unit() Option[T] {
	return Option[T]{}
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[T Semigroup[T], U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[T Semigroup[T], U Semigroup[U]](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}

// OptReducer lifts a [Reducer] through optional absence: the unit is the
// absent value, the first injection seeds the inner accumulator, and
// later injections delegate to it.
//
// A reducer fold targeting OptReducer is absent exactly when the
// reducer was never invoked, so "no result" and "accumulated the unit"
// stay distinguishable.
type OptReducer[R Reducer[R, T], T any] struct {
	value   R
	present bool
}

// Get returns the inner accumulator and true, or zero and false.
func (a OptReducer[R, T]) Get() (R, bool) {
	if a.present {
		return a.value, true
	}
	var zero R
	return zero, false
}

// IsSome returns true if the accumulator has been seeded.
func (a OptReducer[R, T]) IsSome() bool {
	return a.present
}

// Combine merges two optional accumulators: absence is neutral, and
// present accumulators combine inner-wise.
func (a OptReducer[R, T]) Combine(other OptReducer[R, T]) OptReducer[R, T] {
	switch {
	case !a.present:
		return other
	case !other.present:
		return a
	default:
		return OptReducer[R, T]{value: a.value.Combine(other.value), present: true}
	}
}

// Unit returns the absent accumulator.
func (OptReducer[R, T]) Unit() OptReducer[R, T] {
	return OptReducer[R, T]{}
}

// Inject seeds a fresh inner accumulator from the element.
func (OptReducer[R, T]) Inject(value T) OptReducer[R, T] {
	var zero R
	return OptReducer[R, T]{value: zero.Inject(value), present: true}
}

// CombineLeft injects on absence, else delegates to the inner reducer.
func (a OptReducer[R, T]) CombineLeft(value T) OptReducer[R, T] {
	if !a.present {
		return a.Inject(value)
	}
	return OptReducer[R, T]{value: a.value.CombineLeft(value), present: true}
}

// CombineRight injects on absence, else delegates to the inner reducer.
func (a OptReducer[R, T]) CombineRight(value T) OptReducer[R, T] {
	if !a.present {
		return a.Inject(value)
	}
	return OptReducer[R, T]{value: a.value.CombineRight(value), present: true}
}

// Compile-time conformance checks.
var _ Monoid[Option[Sum[int]]] = Option[Sum[int]]{}
var _ ReducerMonoid[OptReducer[Text, string], string] = OptReducer[Text, string]{}
