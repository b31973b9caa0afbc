// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

import "iter"

// Sequence folds. Every fold traverses strictly left to right, in a
// single pass, and always drives the sequence to completion — a caller
// wanting early termination must use a sequence adaptor that stops
// early. The sequence must be finite.

// FoldMonoid drains seq, starting the accumulator at the unit and
// combining each element in order. Returns the unit on an empty
// sequence.
func FoldMonoid[M Monoid[M]](seq iter.Seq[M]) M {
	var zero M
	acc := zero.Unit()
	for x := range seq {
		acc = acc.Combine(x)
	}
	return acc
}

// FoldNonempty drains seq, starting from the first element, so only a
// [Semigroup] is required. Returns [None] on an empty sequence.
func FoldNonempty[S Semigroup[S]](seq iter.Seq[S]) Option[S] {
	var acc S
	first := true
	for x := range seq {
		if first {
			acc, first = x, false
		} else {
			acc = acc.Combine(x)
		}
	}
	if first {
		return None[S]()
	}
	return Some(acc)
}

// FoldMap applies f to each element and combines the results, without
// materializing the mapped sequence. Returns the unit on empty input.
func FoldMap[E any, M Monoid[M]](seq iter.Seq[E], f func(E) M) M {
	var zero M
	acc := zero.Unit()
	for x := range seq {
		acc = acc.Combine(f(x))
	}
	return acc
}

// FoldMapNonempty is the Semigroup analogue of [FoldMap]. Returns
// [None] on an empty sequence.
func FoldMapNonempty[E any, S Semigroup[S]](seq iter.Seq[E], f func(E) S) Option[S] {
	var acc S
	first := true
	for x := range seq {
		if first {
			acc, first = f(x), false
		} else {
			acc = acc.Combine(f(x))
		}
	}
	if first {
		return None[S]()
	}
	return Some(acc)
}

// FoldReduce folds raw elements into a Reducer-typed accumulator. The
// first element seeds the accumulator through Inject; every subsequent
// element is folded in through CombineRight, so in-place specializations
// run on every step. Returns the unit on an empty sequence.
//
// The accumulator type is rarely inferable and is given explicitly:
//
//	catenated := alg.FoldReduce[alg.Text](slices.Values(words))
func FoldReduce[R ReducerMonoid[R, E], E any](seq iter.Seq[E]) R {
	var acc R
	first := true
	for x := range seq {
		if first {
			acc, first = acc.Inject(x), false
		} else {
			acc = acc.CombineRight(x)
		}
	}
	if first {
		return acc.Unit()
	}
	return acc
}

// FoldReduceNonempty is the Semigroup analogue of [FoldReduce], for
// Reducer types with no natural identity. Returns [None] on empty
// input.
func FoldReduceNonempty[R Reducer[R, E], E any](seq iter.Seq[E]) Option[R] {
	var acc R
	first := true
	for x := range seq {
		if first {
			acc, first = acc.Inject(x), false
		} else {
			acc = acc.CombineRight(x)
		}
	}
	if first {
		return None[R]()
	}
	return Some(acc)
}
