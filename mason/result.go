// SPDX-License-Identifier: MIT

package mason

import (
	"fmt"
	"strings"
)

// String renders the transfer function, "T = …", or "T = ∞ (Δ = 0)".
func (r *Result) String() string {
	if r.Unbounded {
		return "T = ∞ (Δ = 0)"
	}

	return "T = " + r.Transfer.String()
}

// Expand renders one level of a table as "L1·L3 + L2·L4" style products over
// 1-based loop labels; useful for reports.
func (t Table) Expand(level int) string {
	if level < 0 || level >= len(t) {
		return ""
	}
	parts := make([]string, len(t[level]))
	for i, c := range t[level] {
		labels := make([]string, len(c.Loops))
		for j, idx := range c.Loops {
			labels[j] = fmt.Sprintf("L%d", idx+1)
		}
		parts[i] = strings.Join(labels, "·")
	}

	return strings.Join(parts, " + ")
}
