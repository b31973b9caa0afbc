// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// List is an ordered slice forming a monoid under order-preserving
// concatenation and a [Reducer] over slice chunks.
//
// The reducer mirrors [Text]: Inject copies the chunk into a new owned
// buffer, CombineRight extends the buffer in place.
type List[T any] []T

// Combine appends other after the receiver, preserving element order.
// The receiver's backing storage may be reused.
func (l List[T]) Combine(other List[T]) List[T] {
	return append(l, other...)
}

// Unit returns the empty list.
func (List[T]) Unit() List[T] {
	return nil
}

// Inject copies the chunk into a new owned buffer.
func (List[T]) Inject(value []T) List[T] {
	return append(List[T](nil), value...)
}

// CombineLeft uses the default strategy; there is no in-place prepend.
func (l List[T]) CombineLeft(value []T) List[T] {
	return CombineLeftOf(l, value)
}

// CombineRight extends the buffer in place.
func (l List[T]) CombineRight(value []T) List[T] {
	return append(l, value...)
}

// Compile-time conformance checks.
var _ Monoid[List[int]] = List[int](nil)
var _ Reducer[List[int], []int] = List[int](nil)
