// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mason/symbolic"
)

// GainFn produces the gain of the chain branch leaving stage idx.
// It must be pure: the same idx always yields the same gain.
type GainFn func(idx int) symbolic.Expr

// IndexedGainFn returns a GainFn naming branch idx prefix+(idx+1), so a
// chain gets "g1", "g2", …. Panics if prefix is not a valid symbol start.
func IndexedGainFn(prefix string) GainFn {
	if !validPrefix(prefix) {
		panic(fmt.Sprintf("IndexedGainFn: invalid symbol prefix %q", prefix))
	}

	return func(idx int) symbolic.Expr {
		return symbolic.Var(prefix + strconv.Itoa(idx+1))
	}
}

// UnitGainFn gives every branch gain 1.
func UnitGainFn(_ int) symbolic.Expr {
	return symbolic.One()
}

// ConstantGainFn gives every branch the gain parsed from text.
// Panics if text does not parse.
func ConstantGainFn(text string) GainFn {
	gain := symbolic.MustParse(text)

	return func(_ int) symbolic.Expr {
		return gain
	}
}

// validPrefix reports whether prefix followed by digits is a single symbol.
func validPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	for i, r := range prefix {
		letter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !letter && (i == 0 || r < '0' || r > '9') {
			return false
		}
	}

	return true
}

// WithGainPrefix sets the gain scheme to IndexedGainFn(prefix).
func WithGainPrefix(prefix string) BuilderOption {
	return WithGainScheme(IndexedGainFn(prefix))
}

// WithUnitGains sets every chain gain to 1.
func WithUnitGains() BuilderOption {
	return WithGainScheme(UnitGainFn)
}

// WithConstantGain sets every chain gain to the parsed text.
func WithConstantGain(text string) BuilderOption {
	return WithGainScheme(ConstantGainFn(text))
}
