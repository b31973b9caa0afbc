// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/alg"
)

func TestTextCombine(t *testing.T) {
	got := alg.Text("foo").Combine(alg.Text("bar"))
	require.Equal(t, "foobar", got.String())
}

func TestTextUnit(t *testing.T) {
	require.Equal(t, alg.Text(nil), alg.Text{}.Unit())

	x := alg.Text("abc")
	require.Equal(t, "abc", x.Combine(x.Unit()).String())
	require.Equal(t, "abc", x.Unit().Combine(x).String())
}

func TestTextInject(t *testing.T) {
	var zero alg.Text
	require.Equal(t, "chunk", zero.Inject("chunk").String())
	require.Equal(t, "", zero.Inject("").String())
}

func TestTextCombineRight(t *testing.T) {
	got := alg.Text("foo").CombineRight("bar")
	require.Equal(t, "foobar", got.String())
}

func TestTextCombineLeft(t *testing.T) {
	got := alg.Text("bar").CombineLeft("foo")
	require.Equal(t, "foobar", got.String())
}

func TestTextReducerDefaultsAgree(t *testing.T) {
	right := alg.Text("acc").CombineRight("v").String()
	require.Equal(t, alg.CombineRightOf(alg.Text("acc"), "v").String(), right)

	left := alg.Text("acc").CombineLeft("v").String()
	require.Equal(t, alg.CombineLeftOf(alg.Text("acc"), "v").String(), left)
}

func TestListCombine(t *testing.T) {
	got := alg.List[int]{1, 2}.Combine(alg.List[int]{3})
	require.Equal(t, alg.List[int]{1, 2, 3}, got)
}

func TestListUnit(t *testing.T) {
	require.Equal(t, alg.List[int](nil), alg.List[int]{}.Unit())

	x := alg.List[string]{"a", "b"}
	require.Equal(t, x, x.Combine(x.Unit()))
	require.Equal(t, x, x.Unit().Combine(x))
}

func TestListInjectCopies(t *testing.T) {
	chunk := []int{1, 2}
	var zero alg.List[int]
	l := zero.Inject(chunk)

	// The injected buffer is owned: mutating the source chunk must not
	// leak through.
	chunk[0] = 9
	require.Equal(t, alg.List[int]{1, 2}, l)
}

func TestListCombineRight(t *testing.T) {
	got := alg.List[int]{1}.CombineRight([]int{2, 3})
	require.Equal(t, alg.List[int]{1, 2, 3}, got)
}

func TestListCombineLeft(t *testing.T) {
	got := alg.List[int]{3}.CombineLeft([]int{1, 2})
	require.Equal(t, alg.List[int]{1, 2, 3}, got)
}

func TestListReducerDefaultsAgree(t *testing.T) {
	right := alg.List[int]{0}.CombineRight([]int{1})
	require.Equal(t, alg.CombineRightOf(alg.List[int]{0}, []int{1}), right)

	left := alg.List[int]{0}.CombineLeft([]int{1})
	require.Equal(t, alg.CombineLeftOf(alg.List[int]{0}, []int{1}), left)
}
