// SPDX-License-Identifier: MIT
// Package: mason/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn   = DefaultIDFn               ("0","1","2",...)
//   • gainFn = IndexedGainFn("g")        ("g1","g2",...)
//   • rng    = nil                       (pure/deterministic unless seeded)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: stage index -> ID.
	idFn IDFn
	// Gain of the chain branch leaving stage i.
	gainFn GainFn
	// RNG for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		gainFn: IndexedGainFn(DefaultGainPrefix),
		rng:    nil,
	}

	// Last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
