// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Fixed-arity tuple monoids, arities 0 through 3. Tuples combine
// component-wise and their unit is the tuple of per-component units; the
// lifting rule extends mechanically to higher arities.

// Unit is the zero-arity tuple: the trivial monoid with a single value.
type Unit struct{}

func (Unit) Combine(Unit) Unit { return Unit{} }

func (Unit) Unit() Unit { return Unit{} }

// Pair is the two-component tuple monoid.
type Pair[A Monoid[A], B Monoid[B]] struct {
	First  A
	Second B
}

// Combine merges component-wise.
func (p Pair[A, B]) Combine(other Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		First:  p.First.Combine(other.First),
		Second: p.Second.Combine(other.Second),
	}
}

// Unit returns the pair of component units.
func (Pair[A, B]) Unit() Pair[A, B] {
	var a A
	var b B
	return Pair[A, B]{First: a.Unit(), Second: b.Unit()}
}

// Triple is the three-component tuple monoid.
type Triple[A Monoid[A], B Monoid[B], C Monoid[C]] struct {
	First  A
	Second B
	Third  C
}

// Combine merges component-wise.
func (t Triple[A, B, C]) Combine(other Triple[A, B, C]) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  t.First.Combine(other.First),
		Second: t.Second.Combine(other.Second),
		Third:  t.Third.Combine(other.Third),
	}
}

// Unit returns the triple of component units.
func (Triple[A, B, C]) Unit() Triple[A, B, C] {
	var a A
	var b B
	var c C
	return Triple[A, B, C]{First: a.Unit(), Second: b.Unit(), Third: c.Unit()}
}

// Compile-time conformance checks.
var _ Monoid[Unit] = Unit{}
var _ Monoid[Pair[Sum[int], All]] = Pair[Sum[int], All]{}
var _ Monoid[Triple[Sum[int], Any, Text]] = Triple[Sum[int], Any, Text]{}
