// Package diagnostics renders optimizer output for a human: the CFA
// dump and the per-body iteration trace. Nothing here is consulted by
// internal/optimize when deciding what to rewrite — it is a read-only
// view over results optimize.Run already produced.
package diagnostics

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"chocopyopt/internal/dataflow"
	"chocopyopt/internal/ir"
	"chocopyopt/internal/optimize"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	changedColor = color.New(color.FgYellow)
	fixedColor   = color.New(color.FgGreen)
	dimColor     = color.New(color.FgHiBlack)
)

// Write renders diag to w, colorizing when w is a terminal the way the
// teacher's own CLI colorizes its diagnostic output — fatih/color
// detects that on its own and degrades to plain text otherwise, so
// callers never need to branch on whether output is piped.
func Write(w io.Writer, diag optimize.Diagnostics) {
	for _, body := range diag.Bodies {
		writeBody(w, body)
	}
}

func writeBody(w io.Writer, body optimize.BodyDiagnostics) {
	headingColor.Fprintf(w, "== %s ==\n", qualifierOrTop(body.Qualifier))

	if body.Iterations <= 1 {
		fixedColor.Fprintf(w, "  fixed point reached after %d iteration\n", body.Iterations)
	} else {
		changedColor.Fprintf(w, "  fixed point reached after %d iterations\n", body.Iterations)
	}

	if len(body.CFA) == 0 {
		return
	}
	dimColor.Fprintln(w, "  reaching definitions:")
	for _, entry := range body.CFA {
		writeCFAEntry(w, entry)
	}
}

func writeCFAEntry(w io.Writer, entry dataflow.CFAResult) {
	if len(entry.Reach) == 0 {
		dimColor.Fprintf(w, "    %s: (unreached)\n", lineString(entry.Line))
		return
	}
	names := make([]string, 0, len(entry.Reach))
	for n := range entry.Reach {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "    %s:\n", lineString(entry.Line))
	for _, n := range names {
		lines := entry.Reach[n].Lines()
		sort.Slice(lines, func(i, j int) bool {
			if lines[i].Block != lines[j].Block {
				return lines[i].Block < lines[j].Block
			}
			return lines[i].Index < lines[j].Index
		})
		rendered := make([]string, len(lines))
		for i, l := range lines {
			rendered[i] = lineString(l)
		}
		dimColor.Fprintf(w, "      %s <- %v\n", n, rendered)
	}
}

func lineString(l ir.Line) string { return fmt.Sprintf("%s:%d", l.Block, l.Index) }

func qualifierOrTop(q string) string {
	if q == "" {
		return "<program>"
	}
	return q
}
