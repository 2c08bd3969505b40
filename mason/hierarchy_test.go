// SPDX-License-Identifier: MIT

package mason_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mason/dfs"
	"github.com/katalvlaran/mason/mason"
)

// threeDisjoint are three pairwise non-touching loops.
func threeDisjoint() []dfs.Loop {
	return []dfs.Loop{
		loop("L1", "A", "B"),
		loop("L2", "C", "D"),
		loop("L3", "E", "F"),
	}
}

func TestHierarchy_ThreeDisjoint(t *testing.T) {
	tbl, err := mason.Hierarchy(threeDisjoint(), nil, 0)
	require.NoError(t, err)

	require.Len(t, tbl, 3)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, combos(tbl, 0))
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}}, combos(tbl, 1))
	assert.Equal(t, [][]int{{0, 1, 2}}, combos(tbl, 2))
	assert.Equal(t, 7, tbl.Count())
	assertExpr(t, "L1*L2*L3", tbl[2][0].Gain)

	assertExpr(t, "1 - (L1 + L2 + L3) + (L1*L2 + L1*L3 + L2*L3) - L1*L2*L3", mason.Determinant(tbl))
}

func TestHierarchy_Touching(t *testing.T) {
	// L1 and L2 share B; L3 is disjoint from both.
	loops := []dfs.Loop{
		loop("L1", "A", "B"),
		loop("L2", "B", "C"),
		loop("L3", "D", "E"),
	}
	tbl, err := mason.Hierarchy(loops, nil, 0)
	require.NoError(t, err)

	require.Len(t, tbl, 2)
	assert.Equal(t, [][]int{{0, 2}, {1, 2}}, combos(tbl, 1))
	assertExpr(t, "1 - L1 - L2 - L3 + L1*L3 + L2*L3", mason.Determinant(tbl))
}

func TestHierarchy_Subset(t *testing.T) {
	loops := threeDisjoint()

	tbl, err := mason.Hierarchy(loops, []int{2, 0, 2}, 0)
	require.NoError(t, err)
	require.Len(t, tbl, 2)
	assert.Equal(t, [][]int{{0}, {2}}, combos(tbl, 0))
	assert.Equal(t, [][]int{{0, 2}}, combos(tbl, 1))

	tbl, err = mason.Hierarchy(loops, []int{}, 0)
	require.NoError(t, err)
	assert.Empty(t, tbl)
	assertExpr(t, "1", mason.Determinant(tbl))
}

func TestHierarchy_Empty(t *testing.T) {
	tbl, err := mason.Hierarchy(nil, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Count())
	assert.True(t, mason.Determinant(tbl).IsOne())
}

func TestHierarchy_LoopIndex(t *testing.T) {
	_, err := mason.Hierarchy(threeDisjoint(), []int{0, 5}, 0)
	assert.ErrorIs(t, err, mason.ErrLoopIndex)

	_, err = mason.Hierarchy(threeDisjoint(), []int{-1}, 0)
	assert.ErrorIs(t, err, mason.ErrLoopIndex)
}

func TestHierarchy_MalformedLoop(t *testing.T) {
	loops := append(threeDisjoint(), dfs.Loop{})
	_, err := mason.Hierarchy(loops, nil, 0)
	assert.ErrorIs(t, err, mason.ErrMalformedLoop)

	// Only the named loops are checked.
	tbl, err := mason.Hierarchy(loops, []int{0, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Count())

	_, err = mason.Hierarchy([]dfs.Loop{{Nodes: []string{"A", "B"}}}, nil, 0)
	assert.ErrorIs(t, err, mason.ErrMalformedLoop)
}

func TestHierarchy_CombinationLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		fail  bool
	}{
		{"SingletonsOverflow", 2, true},
		{"PairsOverflow", 5, true},
		{"TripleOverflow", 6, true},
		{"Exact", 7, false},
		{"Unbounded", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mason.Hierarchy(threeDisjoint(), nil, tc.limit)
			if tc.fail {
				assert.ErrorIs(t, err, mason.ErrCombinationLimit)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestHierarchy_ChainOfLoops checks a chain where each loop touches only its
// neighbours: L1-L2-L3-L4 share one vertex pairwise.
func TestHierarchy_ChainOfLoops(t *testing.T) {
	loops := []dfs.Loop{
		loop("L1", "A", "B"),
		loop("L2", "B", "C"),
		loop("L3", "C", "D"),
		loop("L4", "D", "E"),
	}
	tbl, err := mason.Hierarchy(loops, nil, 0)
	require.NoError(t, err)

	require.Len(t, tbl, 2)
	assert.Equal(t, [][]int{{0, 2}, {0, 3}, {1, 3}}, combos(tbl, 1))
	assert.Equal(t, "L1·L3 + L1·L4 + L2·L4", tbl.Expand(1))
	assert.Equal(t, "", tbl.Expand(2))
	assert.Equal(t, "", tbl.Expand(-1))
}
