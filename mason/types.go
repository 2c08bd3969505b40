// SPDX-License-Identifier: MIT

package mason

import (
	"context"
	"errors"
	"runtime"

	"github.com/katalvlaran/mason/dfs"
	"github.com/katalvlaran/mason/symbolic"
)

var (
	// ErrCombinationLimit indicates that the non-touching hierarchy grew past
	// Options.MaxCombinations.
	ErrCombinationLimit = errors.New("mason: non-touching combination limit exceeded")

	// ErrLoopIndex indicates a subset index outside the loop inventory.
	ErrLoopIndex = errors.New("mason: loop index out of range")

	// ErrMalformedLoop indicates a loop that is not a closed walk [v0 … v0].
	ErrMalformedLoop = errors.New("mason: malformed loop")
)

// Combination is a set of pairwise non-touching loops.
type Combination struct {
	// Loops holds indices into the loop inventory, ascending.
	Loops []int

	// Gain is the product of the member loop gains, simplified.
	Gain symbolic.Expr
}

// Table is the non-touching hierarchy: Table[i] holds every combination of
// i+1 pairwise non-touching loops. It has no empty levels; len(Table) is
// the size of the largest combination.
type Table [][]Combination

// Count returns the total number of combinations over all levels.
func (t Table) Count() int {
	n := 0
	for _, level := range t {
		n += len(level)
	}

	return n
}

// Result is the outcome of Mason's Gain Formula.
type Result struct {
	// Delta is the graph determinant Δ.
	Delta symbolic.Expr

	// Table is the non-touching hierarchy of the whole loop inventory.
	Table Table

	// Cofactors[k] is Δ_k for path k.
	Cofactors []symbolic.Expr

	// PathTables[k] is the hierarchy of the loops not touching path k.
	PathTables []Table

	// Numerator is Σ P_k·Δ_k.
	Numerator symbolic.Expr

	// Transfer is T = Numerator/Δ. It is zero when there are no forward
	// paths and meaningless when Unbounded is set.
	Transfer symbolic.Expr

	// Unbounded reports Δ ≡ 0 with at least one forward path.
	Unbounded bool
}

// Analysis pairs the extracted inventory with the solved result.
type Analysis struct {
	Inventory *dfs.Inventory
	Result    *Result
}

// Option configures Solve and Analyze.
type Option func(*Options)

// Options holds the engine configuration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Concurrency bounds the goroutines computing cofactors; defaults to GOMAXPROCS.
	Concurrency int

	// MaxCombinations bounds the size of any single hierarchy; <= 0 disables the bound.
	MaxCombinations int

	// Extract holds the options forwarded to dfs.Extract by Analyze.
	Extract []dfs.Option
}

// DefaultMaxCombinations is the default bound on a hierarchy's size.
const DefaultMaxCombinations = 100000

// DefaultOptions returns background context, GOMAXPROCS workers and
// DefaultMaxCombinations.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		Concurrency:     runtime.GOMAXPROCS(0),
		MaxCombinations: DefaultMaxCombinations,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConcurrency bounds the cofactor workers; n < 1 is treated as 1.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Concurrency = n
	}
}

// WithMaxCombinations bounds the hierarchy size; n <= 0 disables the bound.
func WithMaxCombinations(n int) Option {
	return func(o *Options) { o.MaxCombinations = n }
}

// WithExtractOptions forwards options to dfs.Extract (Analyze only).
func WithExtractOptions(opts ...dfs.Option) Option {
	return func(o *Options) { o.Extract = append(o.Extract, opts...) }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
