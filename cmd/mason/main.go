// SPDX-License-Identifier: MIT

// Command mason derives the transfer function of a signal-flow graph given
// as an edge list, using Mason's Gain Formula.
//
//	mason solve "R -> A : a; A -> B : b; B -> C : c; B -> A : L"
//	mason solve --file amplifier.sfg --at K=10
//	mason extract --file amplifier.sfg
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	root := newRootCmd()
	root.PersistentFlags().AddGoFlagSet(fset)
	err := root.Execute()

	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
