// SPDX-License-Identifier: MIT

// Common helpers for node-set bookkeeping shared by paths, loops and package mason.

package dfs

import (
	"sort"
	"strconv"
	"strings"
)

// SortedUnique returns the distinct elements of s in ascending order.
// The input is not modified.
func SortedUnique(s []string) []string {
	out := make([]string, 0, len(s))
	seen := make(map[string]struct{}, len(s))
	for _, x := range s {
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	sort.Strings(out)

	return out
}

// NodeSetKey is the order-independent signature of a vertex set. Each ID is
// length-prefixed ("1:A1:B"), so IDs containing separators cannot collide.
func NodeSetKey(nodes []string) string {
	var sb strings.Builder
	for _, id := range SortedUnique(nodes) {
		sb.WriteString(strconv.Itoa(len(id)))
		sb.WriteByte(':')
		sb.WriteString(id)
	}

	return sb.String()
}

// Disjoint reports whether a and b share no element ("non-touching").
// Time Complexity: O(len(a)+len(b)).
func Disjoint(a, b []string) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	set := make(map[string]struct{}, len(a))
	for _, x := range a {
		set[x] = struct{}{}
	}
	for _, x := range b {
		if _, ok := set[x]; ok {
			return false
		}
	}

	return true
}

// cloneStrings returns a copy of s that shares no backing array.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)

	return out
}
