// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (e.g. Chain n) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadIndex indicates a stage index that is negative, names a vertex the
// graph does not contain, or points in the wrong direction (e.g. a Feedback
// edge that does not go backwards).
// Usage: if errors.Is(err, ErrBadIndex) { /* fix stage indices */ }.
var ErrBadIndex = errors.New("builder: bad stage index")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved builderConfig (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEdgeListSyntax indicates edge-list text that does not follow the
// "From -> To : gain" grammar.
var ErrEdgeListSyntax = errors.New("builder: edge list syntax error")

// ErrConstructFailed indicates that a constructor could not complete, e.g. a
// nil constructor passed to BuildGraph or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the constructor name and
// wraps the sentinel, giving "<Method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
