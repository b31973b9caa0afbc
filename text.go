// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg

// Text is a byte buffer forming a monoid under concatenation and a
// [Reducer] over string chunks.
//
// Inject copies the chunk into a fresh owned buffer. CombineRight
// appends in place, avoiding the per-step singleton allocation — and,
// over a whole fold, the quadratic cost — of injecting then combining.
// The accumulator is the sole owner of its backing storage.
type Text []byte

// Combine concatenates the receiver and other. The receiver's backing
// storage may be reused.
func (t Text) Combine(other Text) Text {
	return append(t, other...)
}

// Unit returns the empty text.
func (Text) Unit() Text {
	return nil
}

// Inject copies the chunk into a new owned buffer.
func (Text) Inject(value string) Text {
	return Text(value)
}

// CombineLeft uses the default strategy; there is no in-place prepend.
func (t Text) CombineLeft(value string) Text {
	return CombineLeftOf(t, value)
}

// CombineRight appends the chunk in place.
func (t Text) CombineRight(value string) Text {
	return append(t, value...)
}

// String returns the accumulated text.
func (t Text) String() string {
	return string(t)
}

// Compile-time conformance checks.
var _ Monoid[Text] = Text(nil)
var _ Reducer[Text, string] = Text(nil)
