package optimize

import (
	"chocopyopt/internal/dataflow"
	"chocopyopt/internal/ir"
)

// DCE replaces every dead assign in blocks with a pass statement, using
// a neededness analysis already computed over the same blocks. An
// assign is dead when its name is not needed immediately after itself,
// not needed anywhere else in the body, and its expression carries no
// effect that must survive regardless — the same double check spec.md's
// literal elimination rule describes, kept as two explicit conditions
// rather than folded into one so each has an independent test.
//
// The statement becomes a pass rather than being spliced out so that
// every other Line in the body keeps addressing the same (block, index)
// it did before DCE ran; removing entries would shift every later index
// in the block and invalidate the neededness map mid-rewrite.
func DCE[A any](blocks []ir.BasicBlock[A], needed dataflow.NeededResult) ([]ir.BasicBlock[A], bool) {
	changed := false
	out := make([]ir.BasicBlock[A], len(blocks))
	for bi, b := range blocks {
		stmts := make([]ir.Stmt[A], len(b.Stmts))
		for si, s := range b.Stmts {
			line := ir.Line{Block: b.Label, Index: si}
			if s.Kind == ir.SAssign && isDead(s, line, needed) {
				stmts[si] = ir.Pass(s.Annot)
				changed = true
				continue
			}
			stmts[si] = s
		}
		out[bi] = ir.BasicBlock[A]{Label: b.Label, Stmts: stmts}
	}
	return out, changed
}

func isDead[A any](s ir.Stmt[A], line ir.Line, needed dataflow.NeededResult) bool {
	if dataflow.Necessary(s) {
		return false
	}
	out, ok := needed.NeededOut[line]
	if ok && out.Contains(s.Name) {
		return false
	}
	if dataflow.NeededAnywhere(needed, s.Name) {
		return false
	}
	return true
}
