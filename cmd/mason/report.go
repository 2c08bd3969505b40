// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/dfs"
	"github.com/katalvlaran/mason/mason"
	"github.com/katalvlaran/mason/matrix"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

// writeInventory prints the terminals, forward paths and loops.
func writeInventory(w io.Writer, inv *dfs.Inventory) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "input\t%s\n", inv.Input)
	fmt.Fprintf(tw, "output\t%s\n", inv.Output)
	fmt.Fprintf(tw, "\nforward paths\t%d\n", len(inv.Paths))
	for i, p := range inv.Paths {
		fmt.Fprintf(tw, "P%d\t%s\t%s\n", i+1, strings.Join(p.Nodes, " → "), p.Weight)
	}
	fmt.Fprintf(tw, "\nloops\t%d\n", len(inv.Loops))
	for i, l := range inv.Loops {
		fmt.Fprintf(tw, "L%d\t%s\t%s\n", i+1, strings.Join(l.Nodes, " → "), l.Weight)
	}

	return tw.Flush()
}

// writeReport prints the inventory, the non-touching table, Δ, the
// cofactors, T and, for each --at binding set, T evaluated exactly.
func writeReport(w io.Writer, a *mason.Analysis, at []binding) error {
	if err := writeInventory(w, a.Inventory); err != nil {
		return err
	}
	res := a.Result

	tw := newTable(w)
	if len(res.Table) > 1 {
		fmt.Fprintln(tw, "\nnon-touching loops")
		for i := 1; i < len(res.Table); i++ {
			fmt.Fprintf(tw, "%d at a time\t%s\n", i+1, res.Table.Expand(i))
		}
	}
	fmt.Fprintf(tw, "\nΔ\t%s\n", res.Delta)
	for k, c := range res.Cofactors {
		fmt.Fprintf(tw, "Δ%d\t%s\n", k+1, c)
	}
	if res.Unbounded {
		fmt.Fprintln(tw, "T\t∞ (Δ = 0)")
	} else {
		fmt.Fprintf(tw, "T\t%s\n", res.Transfer)
	}
	if len(at) > 0 && !res.Unbounded {
		v, err := evalAt(res, at)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "T(%s)\t%s\n", bindingList(at), v.RatString())
	}

	return tw.Flush()
}

func evalAt(res *mason.Result, at []binding) (*big.Rat, error) {
	values := make(map[string]*big.Rat, len(at))
	for _, b := range at {
		values[b.name] = b.value
	}
	v, err := res.Transfer.Eval(values)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluate T at %s", bindingList(at))
	}

	return v, nil
}

func bindingList(at []binding) string {
	parts := make([]string, len(at))
	for i, b := range at {
		parts[i] = b.name + "=" + b.value.RatString()
	}

	return strings.Join(parts, ", ")
}

// writeCheck prints det(I − A) and whether it agrees with Δ.
func writeCheck(w io.Writer, g *core.Graph, res *mason.Result) error {
	det, err := matrix.Determinant(g)
	if err != nil {
		return errors.Wrap(err, "check")
	}
	verdict := "matches Δ"
	if !det.Equal(res.Delta) {
		verdict = "differs from Δ"
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "\ndet(I − A)\t%s\t%s\n", det, verdict)

	return tw.Flush()
}
