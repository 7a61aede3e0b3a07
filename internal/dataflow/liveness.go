package dataflow

import "chocopyopt/internal/ir"

// LiveResult holds, for every Line, the set of names live on entry to
// that statement (live-in) per §4.2.
type LiveResult struct {
	LiveIn map[ir.Line]NameSet
}

// Liveness computes the classic backward liveness analysis: a name is
// live-in at a line if some successor needs it before it is redefined.
// The engine iterates to a fixed point rather than tracking explicit
// predecessors, since Bodies are small enough that repeated full passes
// converge quickly and the logic stays a direct transcription of the
// per-construct rules.
func Liveness[A any](blocks []ir.BasicBlock[A]) LiveResult {
	lines, line2num := flatten(blocks)
	universe := NewUniverse[string]()

	liveIn := make([]NameSet, len(lines))
	for i := range liveIn {
		liveIn[i] = NewNameSet(universe)
	}

	for {
		changed := false
		for idx := len(lines) - 1; idx >= 0; idx-- {
			stmt := blockStmtAt(blocks, lines[idx])
			succIdxs := cfaSuccessors(stmt, lines[idx], line2num, idx, len(lines))

			liveOut := NewNameSet(universe)
			for _, s := range succIdxs {
				liveOut = liveOut.Union(liveIn[s])
			}

			newIn := liveInFor(stmt, liveOut)
			if !newIn.Equal(liveIn[idx]) {
				liveIn[idx] = newIn
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	result := LiveResult{LiveIn: make(map[ir.Line]NameSet, len(lines))}
	for i, l := range lines {
		result.LiveIn[l] = liveIn[i]
	}
	return result
}

// liveInFor applies the per-construct transfer rule: live_in = (live_out
// minus any name defined here) union (names used here).
func liveInFor[A any](stmt ir.Stmt[A], liveOut NameSet) NameSet {
	switch stmt.Kind {
	case ir.SAssign:
		in := NewNameSet(liveOut.universe)
		for _, n := range liveOut.Names() {
			if n != stmt.Name {
				in = in.Add(n)
			}
		}
		return addAll(in, usesExpr(stmt.Expr))
	case ir.SExpr:
		return addAll(liveOut.Clone(), usesExpr(stmt.Expr))
	case ir.SReturn:
		return addAll(liveOut.Clone(), usesValue(stmt.Val))
	case ir.SIfJmp:
		return addAll(liveOut.Clone(), usesValue(stmt.Cond))
	case ir.SStore:
		in := liveOut.Clone()
		in = addAll(in, usesValue(stmt.Base))
		in = addAll(in, usesValue(stmt.Offset))
		in = addAll(in, usesValue(stmt.Val))
		return in
	default:
		return liveOut.Clone()
	}
}
