// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"math/big"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mason/builder"
	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/dfs"
	"github.com/katalvlaran/mason/mason"
)

// cliFlags are the values bound to the command line.
type cliFlags struct {
	configPath      string
	file            string
	maxPaths        int
	maxLoops        int
	maxVertices     int
	maxCombinations int
	concurrency     int
	at              []string
	check           bool
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}
	def := defaultConfig()

	root := &cobra.Command{
		Use:   "mason",
		Short: "Signal-flow graph analysis with Mason's Gain Formula",
		Long: `mason reads a signal-flow graph as an edge list, one branch per item:

    R -> A : a; A -> B : b
    B -> C : c     # comment
    B -> A : -L

and derives the transfer function from the single input node (no inward
branches) to the single output node (no outward branches). Gains are exact
symbolic expressions.`,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML file with analysis limits")
	pf.StringVarP(&f.file, "file", "f", "", "read the edge list from this file")
	pf.IntVar(&f.maxPaths, "max-paths", def.MaxPaths, "fail when more forward paths exist (<= 0: unbounded)")
	pf.IntVar(&f.maxLoops, "max-loops", def.MaxLoops, "fail when more loops exist (<= 0: unbounded)")
	pf.IntVar(&f.maxVertices, "max-vertices", def.MaxVertices, "reject larger graphs (<= 0: unbounded)")

	solve := &cobra.Command{
		Use:   "solve [edge list]",
		Short: "Print paths, loops, Δ, the cofactors and the transfer function",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, f, args)
		},
	}
	solve.Flags().IntVar(&f.maxCombinations, "max-combinations", def.MaxCombinations, "fail when a non-touching table grows larger (<= 0: unbounded)")
	solve.Flags().IntVar(&f.concurrency, "concurrency", def.Concurrency, "goroutines computing the path cofactors")
	solve.Flags().StringArrayVar(&f.at, "at", nil, "evaluate T exactly at symbol=value, e.g. --at K=1/2 (repeatable)")
	solve.Flags().BoolVar(&f.check, "check", false, "cross-check Δ against det(I − A) of the gain matrix")

	extract := &cobra.Command{
		Use:   "extract [edge list]",
		Short: "Print the forward paths and loops only",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, f, args)
		},
	}

	root.AddCommand(solve, extract)

	return root
}

// resolveConfig loads --config and overlays explicitly set flags.
func resolveConfig(cmd *cobra.Command, f *cliFlags) (Config, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	overlay := func(name string, dst *int, v int) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	overlay("max-paths", &cfg.MaxPaths, f.maxPaths)
	overlay("max-loops", &cfg.MaxLoops, f.maxLoops)
	overlay("max-vertices", &cfg.MaxVertices, f.maxVertices)
	overlay("max-combinations", &cfg.MaxCombinations, f.maxCombinations)
	overlay("concurrency", &cfg.Concurrency, f.concurrency)

	if v := flags.Lookup("v"); v != nil && !v.Changed && cfg.Verbosity > 0 {
		if err = v.Value.Set(strconv.Itoa(cfg.Verbosity)); err != nil {
			return cfg, errors.Wrap(err, "set verbosity")
		}
	}

	return cfg, nil
}

// readGraph builds the graph from the positional edge list or --file.
func readGraph(f *cliFlags, args []string) (*core.Graph, error) {
	var text string
	switch {
	case len(args) == 1 && f.file != "":
		return nil, errors.New("give the edge list either as an argument or with --file, not both")
	case len(args) == 1:
		text = args[0]
	case f.file != "":
		raw, err := os.ReadFile(f.file)
		if err != nil {
			return nil, errors.Wrap(err, "read edge list")
		}
		text = string(raw)
	default:
		return nil, errors.New("no edge list: pass it as an argument or with --file")
	}

	return builder.BuildGraph(
		[]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		nil,
		builder.EdgeList(text),
	)
}

func runSolve(cmd *cobra.Command, f *cliFlags, args []string) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	at, err := parseAt(f.at)
	if err != nil {
		return err
	}
	g, err := readGraph(f, args)
	if err != nil {
		return err
	}
	klog.V(1).Infof("mason: solving %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	opts := append(cfg.options(), mason.WithContext(cmdContext(cmd)))
	a, err := mason.Analyze(g, opts...)
	if err != nil {
		return err
	}

	if err = writeReport(cmd.OutOrStdout(), a, at); err != nil {
		return err
	}
	if !f.check {
		return nil
	}

	return writeCheck(cmd.OutOrStdout(), g, a.Result)
}

func runExtract(cmd *cobra.Command, f *cliFlags, args []string) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	g, err := readGraph(f, args)
	if err != nil {
		return err
	}

	opts := append(cfg.extractOptions(), dfs.WithContext(cmdContext(cmd)))
	inv, err := dfs.Extract(g, opts...)
	if err != nil {
		return err
	}

	return writeInventory(cmd.OutOrStdout(), inv)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// binding is one --at symbol=value pair.
type binding struct {
	name  string
	value *big.Rat
}

// parseAt parses --at values into bindings sorted by symbol.
func parseAt(specs []string) ([]binding, error) {
	out := make([]binding, 0, len(specs))
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		name, val, ok := strings.Cut(s, "=")
		name, val = strings.TrimSpace(name), strings.TrimSpace(val)
		if !ok || name == "" || val == "" {
			return nil, errors.Errorf("--at %q: want symbol=value", s)
		}
		r, ok := new(big.Rat).SetString(val)
		if !ok {
			return nil, errors.Errorf("--at %q: %q is not a rational number", s, val)
		}
		if seen[name] {
			return nil, errors.Errorf("--at %q: %s bound twice", s, name)
		}
		seen[name] = true
		out = append(out, binding{name: name, value: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out, nil
}
