// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/alg"
)

func TestUnitMonoid(t *testing.T) {
	require.Equal(t, alg.Unit{}, alg.Unit{}.Combine(alg.Unit{}))
	require.Equal(t, alg.Unit{}, alg.Unit{}.Unit())
}

func TestPairCombine(t *testing.T) {
	a := alg.Pair[alg.Sum[int], alg.All]{First: alg.Sum[int]{1}, Second: alg.All{true}}
	b := alg.Pair[alg.Sum[int], alg.All]{First: alg.Sum[int]{2}, Second: alg.All{false}}

	got := a.Combine(b)
	require.Equal(t, alg.Sum[int]{3}, got.First)
	require.Equal(t, alg.All{false}, got.Second)
}

func TestPairUnit(t *testing.T) {
	unit := alg.Pair[alg.Sum[int], alg.All]{}.Unit()
	require.Equal(t, alg.Sum[int]{0}, unit.First)
	require.Equal(t, alg.All{true}, unit.Second)

	x := alg.Pair[alg.Sum[int], alg.All]{First: alg.Sum[int]{5}, Second: alg.All{false}}
	require.Equal(t, x, unit.Combine(x))
	require.Equal(t, x, x.Combine(unit))
}

func TestTripleCombine(t *testing.T) {
	a := alg.Triple[alg.Sum[int], alg.Any, alg.Max[int]]{
		First: alg.Sum[int]{1}, Second: alg.Any{false}, Third: alg.Max[int]{3},
	}
	b := alg.Triple[alg.Sum[int], alg.Any, alg.Max[int]]{
		First: alg.Sum[int]{2}, Second: alg.Any{true}, Third: alg.Max[int]{1},
	}

	got := a.Combine(b)
	require.Equal(t, alg.Sum[int]{3}, got.First)
	require.Equal(t, alg.Any{true}, got.Second)
	require.Equal(t, alg.Max[int]{3}, got.Third)
}

func TestTripleUnit(t *testing.T) {
	unit := alg.Triple[alg.Sum[int], alg.Any, alg.Product[int]]{}.Unit()
	require.Equal(t, alg.Sum[int]{0}, unit.First)
	require.Equal(t, alg.Any{false}, unit.Second)
	require.Equal(t, alg.Product[int]{1}, unit.Third)
}

func TestNestedTuple(t *testing.T) {
	// Component-wise lifting composes: a pair of pairs is still a monoid.
	type inner = alg.Pair[alg.Sum[int], alg.All]
	a := alg.Pair[inner, alg.Any]{
		First:  inner{First: alg.Sum[int]{1}, Second: alg.All{true}},
		Second: alg.Any{false},
	}
	b := alg.Pair[inner, alg.Any]{
		First:  inner{First: alg.Sum[int]{2}, Second: alg.All{true}},
		Second: alg.Any{true},
	}

	got := a.Combine(b)
	require.Equal(t, alg.Sum[int]{3}, got.First.First)
	require.Equal(t, alg.All{true}, got.First.Second)
	require.Equal(t, alg.Any{true}, got.Second)
}
