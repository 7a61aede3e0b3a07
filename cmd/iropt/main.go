// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"chocopyopt/internal/diagnostics"
	"chocopyopt/internal/ingest"
	"chocopyopt/internal/ir"
	"chocopyopt/internal/optimize"
)

func main() {
	diag := flag.Bool("diagnostics", false, "print the CFA dump and iteration trace")
	noFold := flag.Bool("no-fold", false, "disable constant folding")
	noDCE := flag.Bool("no-dce", false, "disable dead code elimination")
	maxIter := flag.Int("max-iterations", optimize.DefaultMaxIterations, "fixed-point iteration cap per body")
	out := flag.String("out", "", "write the optimized IR as JSON to this path instead of printing it")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: iropt [flags] <program.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	prog, err := ingest.Load(path)
	if err != nil {
		color.Red("failed to load %s: %s", path, err)
		os.Exit(1)
	}

	opts := optimize.Options{
		MaxIterations: *maxIter,
		Diagnostics:   *diag,
		Folding:       !*noFold,
		DCE:           !*noDCE,
	}

	optimized, diags, err := optimize.Run(prog, opts)
	if err != nil {
		reportOptimizeError(err)
		os.Exit(1)
	}

	if *diag {
		diagnostics.Write(os.Stdout, diags)
	}

	if *out != "" {
		if err := ingest.Save(*out, optimized); err != nil {
			color.Red("failed to write %s: %s", *out, err)
			os.Exit(1)
		}
	} else {
		fmt.Print(ir.Print(optimized))
	}

	color.Green("✅ optimized %s", path)
}

func reportOptimizeError(err error) {
	var inv *optimize.InvariantError
	if errors.As(err, &inv) {
		color.Red("❌ invariant violated in %s at %s: %s", inv.Body, inv.Line, inv.Invariant)
		return
	}
	color.Red("❌ %s", err)
}
