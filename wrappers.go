// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Named wrapper types. Each is a single-field newtype pinning exactly
// one combining operation onto its carrier; the operation is fixed at
// the type level, never at runtime.

// Sum wraps a number that combines under addition.
type Sum[T Number] struct{ Value T }

// Combine adds the wrapped values.
func (s Sum[T]) Combine(other Sum[T]) Sum[T] { return Sum[T]{s.Value + other.Value} }

// Unit returns the additive zero.
func (Sum[T]) Unit() Sum[T] { return Sum[T]{} }

func (Sum[T]) FromInner(value T) Sum[T] { return Sum[T]{value} }
func (s Sum[T]) IntoInner() T           { return s.Value }

// Product wraps a number that combines under multiplication.
type Product[T Number] struct{ Value T }

// Combine multiplies the wrapped values.
func (p Product[T]) Combine(other Product[T]) Product[T] { return Product[T]{p.Value * other.Value} }

// Unit returns the multiplicative one.
func (Product[T]) Unit() Product[T] { return Product[T]{1} }

func (Product[T]) FromInner(value T) Product[T] { return Product[T]{value} }
func (p Product[T]) IntoInner() T               { return p.Value }

// All wraps a bool that combines under logical AND.
type All struct{ Value bool }

func (a All) Combine(other All) All { return All{a.Value && other.Value} }

// Unit returns All(true), the AND identity.
func (All) Unit() All { return All{true} }

func (All) FromInner(value bool) All { return All{value} }
func (a All) IntoInner() bool        { return a.Value }

// Any wraps a bool that combines under logical OR.
type Any struct{ Value bool }

func (a Any) Combine(other Any) Any { return Any{a.Value || other.Value} }

// Unit returns Any(false), the OR identity.
func (Any) Unit() Any { return Any{} }

func (Any) FromInner(value bool) Any { return Any{value} }
func (a Any) IntoInner() bool        { return a.Value }

// Min wraps a bounded ordered value; combining keeps the smaller side.
type Min[T Bounded] struct{ Value T }

func (m Min[T]) Combine(other Min[T]) Min[T] { return Min[T]{min(m.Value, other.Value)} }

// Unit returns the maximum representable value of T, the identity
// under min.
func (Min[T]) Unit() Min[T] { return Min[T]{maxValue[T]()} }

func (Min[T]) FromInner(value T) Min[T] { return Min[T]{value} }
func (m Min[T]) IntoInner() T           { return m.Value }

// Max wraps a bounded ordered value; combining keeps the larger side.
type Max[T Bounded] struct{ Value T }

func (m Max[T]) Combine(other Max[T]) Max[T] { return Max[T]{max(m.Value, other.Value)} }

// Unit returns the minimum representable value of T, the identity
// under max.
func (Max[T]) Unit() Max[T] { return Max[T]{minValue[T]()} }

func (Max[T]) FromInner(value T) Max[T] { return Max[T]{value} }
func (m Max[T]) IntoInner() T           { return m.Value }

// First keeps the leftmost of the combined values.
//
// There is no Monoid instance: no value can act as identity for "keep
// whichever side" without being distinguishable from a real element
// once folded. Fold with [FoldNonempty].
type First[T any] struct{ Value T }

func (f First[T]) Combine(First[T]) First[T] { return f }

func (First[T]) FromInner(value T) First[T] { return First[T]{value} }
func (f First[T]) IntoInner() T             { return f.Value }

// Last keeps the rightmost of the combined values. Like [First], it has
// no Monoid instance.
type Last[T any] struct{ Value T }

func (Last[T]) Combine(other Last[T]) Last[T] { return other }

func (Last[T]) FromInner(value T) Last[T] { return Last[T]{value} }
func (l Last[T]) IntoInner() T            { return l.Value }

// Compile-time conformance checks.
var _ Monoid[Sum[int]] = Sum[int]{}
var _ Monoid[Product[int]] = Product[int]{}
var _ Monoid[All] = All{}
var _ Monoid[Any] = Any{}
var _ Monoid[Min[int]] = Min[int]{}
var _ Monoid[Max[float64]] = Max[float64]{}
var _ Semigroup[First[int]] = First[int]{}
var _ Semigroup[Last[int]] = Last[int]{}
var _ Wrapper[Sum[int], int] = Sum[int]{}
var _ Wrapper[All, bool] = All{}
var _ Wrapper[Min[int], int] = Min[int]{}
var _ Wrapper[First[int], int] = First[int]{}
