// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mason/builder"
	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/mason"
)

// edgeDump renders the edges of g as "From->To:gain" in creation order.
func edgeDump(g *core.Graph) []string {
	es := g.Edges()
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = fmt.Sprintf("%s->%s:%s", e.From, e.To, e.Weight)
	}

	return out
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	loops := []core.GraphOption{core.WithLoops(), core.WithMultiEdges()}
	tests := []struct {
		name  string
		gopts []core.GraphOption
		bopts []builder.BuilderOption
		cons  []builder.Constructor
		want  []string
	}{
		{
			name: "Chain(4)",
			cons: []builder.Constructor{builder.Chain(4)},
			want: []string{"0->1:g1", "1->2:g2", "2->3:g3"},
		},
		{
			name:  "Chain(3)+SymbolIDs+UnitGains",
			bopts: []builder.BuilderOption{builder.WithSymbolIDs(), builder.WithUnitGains()},
			cons:  []builder.Constructor{builder.Chain(3)},
			want:  []string{"A->B:1", "B->C:1"},
		},
		{
			name:  "Chain+Feedback+Feedforward",
			bopts: []builder.BuilderOption{builder.WithSymbolIDs(), builder.WithGainPrefix("G")},
			cons: []builder.Constructor{
				builder.Chain(4),
				builder.Feedback(2, 1, "-H1"),
				builder.Feedforward(0, 2, "G4"),
			},
			want: []string{"A->B:G1", "B->C:G2", "C->D:G3", "C->B:-H1", "A->C:G4"},
		},
		{
			name:  "Chain+SelfLoop",
			gopts: loops,
			bopts: []builder.BuilderOption{builder.WithSymbNumb("x")},
			cons:  []builder.Constructor{builder.Chain(3), builder.SelfLoop(1, "L")},
			want:  []string{"x0->x1:g1", "x1->x2:g2", "x1->x1:L"},
		},
		{
			name: "EdgeList",
			cons: []builder.Constructor{builder.EdgeList("R -> A : a; A -> B : b")},
			want: []string{"R->A:a", "A->B:b"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, tc.bopts, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, edgeDump(g))
		})
	}
}

// TestBuilders_Errors checks that every constructor reports its sentinel.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	sym := []builder.BuilderOption{builder.WithSymbolIDs()}
	tests := []struct {
		name  string
		gopts []core.GraphOption
		bopts []builder.BuilderOption
		cons  []builder.Constructor
		want  error
	}{
		{"ChainTooShort", nil, nil, []builder.Constructor{builder.Chain(1)}, builder.ErrTooFewVertices},
		{"ChainPastAlphabet", nil, sym, []builder.Constructor{builder.Chain(27)}, builder.ErrBadIndex},
		{"FeedbackForward", nil, nil, []builder.Constructor{builder.Chain(3), builder.Feedback(0, 2, "h")}, builder.ErrBadIndex},
		{"FeedbackMissingStage", nil, nil, []builder.Constructor{builder.Chain(3), builder.Feedback(5, 1, "h")}, builder.ErrBadIndex},
		{"FeedbackNegative", nil, nil, []builder.Constructor{builder.Chain(3), builder.Feedback(1, -1, "h")}, builder.ErrBadIndex},
		{"FeedforwardBackward", nil, nil, []builder.Constructor{builder.Chain(3), builder.Feedforward(2, 0, "f")}, builder.ErrBadIndex},
		{"SelfLoopWithoutLoops", nil, nil, []builder.Constructor{builder.Chain(3), builder.SelfLoop(1, "L")}, core.ErrLoopNotAllowed},
		{"ParallelWithoutMulti", nil, nil, []builder.Constructor{builder.Chain(3), builder.Feedforward(0, 1, "f")}, core.ErrMultiEdgeNotAllowed},
		{"NilConstructor", nil, nil, []builder.Constructor{builder.Chain(3), nil}, builder.ErrConstructFailed},
		{"RandomFeedbackNoRNG", nil, nil, []builder.Constructor{builder.Chain(5), builder.RandomFeedback(2)}, builder.ErrNeedRandSource},
		{"RandomFeedbackShortChain", nil, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.Chain(3), builder.RandomFeedback(2)}, builder.ErrTooFewVertices},
		{"EdgeListSyntax", nil, nil, []builder.Constructor{builder.EdgeList("R -> : a")}, builder.ErrEdgeListSyntax},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(tc.gopts, tc.bopts, tc.cons...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.True(t, strings.HasPrefix(err.Error(), "BuildGraph: "), "got %v", err)
		})
	}
}

// TestBuilders_Deterministic verifies that the same seed gives the same graph.
func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []string {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithMultiEdges()},
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.Chain(8),
			builder.RandomFeedback(6),
		)
		require.NoError(t, err)

		return edgeDump(g)
	}

	first := build(7)
	assert.Equal(t, first, build(7))
	assert.Len(t, first, 7+6)
	for _, e := range first[7:] {
		assert.NotContains(t, e, "->0:", "feedback must not enter the input stage")
		assert.False(t, strings.HasPrefix(e, "7->"), "feedback must not leave the output stage")
	}
}

// TestBuilders_RandomFeedbackSolvable checks that random feedback keeps a
// single input and output, so the graph always solves.
func TestBuilders_RandomFeedbackSolvable(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithMultiEdges()},
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.Chain(6),
			builder.RandomFeedback(3),
		)
		require.NoError(t, err)

		a, err := mason.Analyze(g)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, "0", a.Inventory.Input)
		assert.Equal(t, "5", a.Inventory.Output)
		assert.Len(t, a.Inventory.Paths, 1)
	}
}

// TestApply_NilGraph covers the guard on Apply.
func TestApply_NilGraph(t *testing.T) {
	t.Parallel()

	err := builder.Apply(nil, nil, builder.Chain(2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuilders_Feedback solves the chain A -G1-> … -G4-> E with two touching
// feedback branches C→B (-H1) and D→C (-H2).
func TestBuilders_Feedback(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithGainPrefix("G")},
		builder.Chain(5),
		builder.Feedback(2, 1, "-H1"),
		builder.Feedback(3, 2, "-H2"),
	)
	require.NoError(t, err)

	a, err := mason.Analyze(g)
	require.NoError(t, err)

	// Two touching loops: Δ = 1 + G2*H1 + G3*H2.
	assert.Equal(t, "1 + G2*H1 + G3*H2", a.Result.Delta.String())
	assert.Equal(t, "G1*G2*G3*G4/(1 + G2*H1 + G3*H2)", a.Result.Transfer.String())
}
