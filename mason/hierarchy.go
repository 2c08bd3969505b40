// SPDX-License-Identifier: MIT

package mason

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/mason/dfs"
	"github.com/katalvlaran/mason/symbolic"
)

// Hierarchy builds the non-touching combinations of the loops named by subset
// (indices into loops; nil means every loop).
//
// Level 0 holds one singleton per loop. Level n extends each level n-1
// combination with every loop of higher index that touches none of the
// combination's vertices; extending only upward makes each loop set appear
// exactly once. Construction halts at the first empty level.
//
// Errors:
//   - ErrLoopIndex if subset names a loop outside loops.
//   - ErrMalformedLoop if a named loop is not a closed walk.
//   - ErrCombinationLimit if more than limit combinations exist (limit <= 0: unbounded).
//
// Complexity: proportional to the number of combinations, exponential in the
// number of mutually non-touching loops.
func Hierarchy(loops []dfs.Loop, subset []int, limit int) (Table, error) {
	return hierarchy(context.Background(), loops, subset, limit)
}

// hierarchy is Hierarchy with cancellation.
func hierarchy(ctx context.Context, loops []dfs.Loop, subset []int, limit int) (Table, error) {
	if subset == nil {
		subset = make([]int, len(loops))
		for i := range loops {
			subset[i] = i
		}
	} else {
		subset = sortedUnique(subset)
	}
	for _, i := range subset {
		if i < 0 || i >= len(loops) {
			return nil, fmt.Errorf("Hierarchy: index %d of %d loops: %w", i, len(loops), ErrLoopIndex)
		}
		if n := loops[i].Nodes; len(n) < 2 || n[0] != n[len(n)-1] {
			return nil, fmt.Errorf("Hierarchy: loop %d: %w", i, ErrMalformedLoop)
		}
	}
	if len(subset) == 0 {
		return Table{}, nil
	}

	// node[i] is the vertex set of loop i, shared by every combination check.
	node := make(map[int]map[string]struct{}, len(subset))
	for _, i := range subset {
		set := make(map[string]struct{})
		for _, v := range loops[i].Vertices() {
			set[v] = struct{}{}
		}
		node[i] = set
	}

	type entry struct {
		Combination
		touched map[string]struct{}
	}

	// 1) Singletons.
	level := make([]entry, 0, len(subset))
	for _, i := range subset {
		level = append(level, entry{
			Combination: Combination{Loops: []int{i}, Gain: loops[i].Weight},
			touched:     node[i],
		})
	}
	total := len(level)
	if limit > 0 && total > limit {
		return nil, fmt.Errorf("Hierarchy: more than %d combinations: %w", limit, ErrCombinationLimit)
	}

	var table Table
	for len(level) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := make([]Combination, len(level))
		for i, e := range level {
			row[i] = e.Combination
		}
		table = append(table, row)

		// 2) Extend each combination with higher-index disjoint loops.
		var next []entry
		for _, e := range level {
			last := e.Loops[len(e.Loops)-1]
			for _, j := range subset {
				if j <= last || touches(e.touched, node[j]) {
					continue
				}
				ids := make([]int, len(e.Loops)+1)
				copy(ids, e.Loops)
				ids[len(e.Loops)] = j

				merged := make(map[string]struct{}, len(e.touched)+len(node[j]))
				for v := range e.touched {
					merged[v] = struct{}{}
				}
				for v := range node[j] {
					merged[v] = struct{}{}
				}

				next = append(next, entry{
					Combination: Combination{Loops: ids, Gain: e.Gain.Mul(loops[j].Weight)},
					touched:     merged,
				})
				total++
				if limit > 0 && total > limit {
					return nil, fmt.Errorf("Hierarchy: more than %d combinations: %w", limit, ErrCombinationLimit)
				}
			}
		}
		level = next
	}

	return table, nil
}

// sortedUnique returns the distinct indices of s in ascending order.
func sortedUnique(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}

	return out[:n]
}

// touches reports whether two vertex sets intersect.
func touches(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for v := range a {
		if _, ok := b[v]; ok {
			return true
		}
	}

	return false
}

// Determinant returns 1 − Σ level0 + Σ level1 − Σ level2 + …
// An empty table gives 1.
func Determinant(t Table) symbolic.Expr {
	d := symbolic.One()
	for i, level := range t {
		sum := symbolic.Sum(gains(level)...)
		if i%2 == 0 {
			d = d.Sub(sum)
		} else {
			d = d.Add(sum)
		}
	}

	return d
}

func gains(level []Combination) []symbolic.Expr {
	out := make([]symbolic.Expr, len(level))
	for i, c := range level {
		out[i] = c.Gain
	}

	return out
}
