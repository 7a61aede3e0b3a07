package dataflow

import "chocopyopt/internal/ir"

// NeededResult refines liveness with the knowledge that some statements
// must be kept regardless of whether their result is consumed — a call
// may have side effects, a store always writes memory, a division or
// modulo can trap. NeededOut/NeededIn are keyed the same way as
// LiveResult but an assign's operands are folded into NeededIn whenever
// the expression is intrinsically necessary, not only when its target
// is itself needed.
type NeededResult struct {
	NeededIn  map[ir.Line]NameSet
	NeededOut map[ir.Line]NameSet
}

// Necessary reports whether stmt must be kept independent of whether
// its assigned name (if any) is ever used again:
//
//   - a call may perform I/O or mutate shared state (R1)
//   - division and modulo can trap on a zero divisor (R2)
//   - a store always writes through a pointer (R3)
//   - every non-assign statement is necessary by construction: an
//     expression statement, return, branch, jump, memory store, and
//     pass are already control or side-effecting constructs, not
//     candidates for the "unused result" question assigns face
func Necessary[A any](stmt ir.Stmt[A]) bool {
	if stmt.Kind != ir.SAssign {
		return true
	}
	e := stmt.Expr
	switch e.Kind {
	case ir.ECall, ir.EAlloc:
		return true
	case ir.EBinOp:
		return e.Op == "//" || e.Op == "%"
	default:
		return false
	}
}

// forcedUses returns the operands of stmt's expression that must be
// counted as needed even when stmt's own assigned name is dead — the
// part of the expression that can fault or observe memory independent
// of whether the result is ever read. A load's offset indexes into
// memory and must stay live; its base is just a pointer carried along
// and only matters if the loaded value itself is needed.
func forcedUses[A any](e ir.Expr[A]) []string {
	if e.Kind == ir.ELoad {
		return usesValue(e.Offset)
	}
	return nil
}

// Needed computes the neededness analysis over blocks.
func Needed[A any](blocks []ir.BasicBlock[A]) NeededResult {
	lines, line2num := flatten(blocks)
	universe := NewUniverse[string]()

	in := make([]NameSet, len(lines))
	out := make([]NameSet, len(lines))
	for i := range in {
		in[i] = NewNameSet(universe)
		out[i] = NewNameSet(universe)
	}

	for {
		changed := false
		for idx := len(lines) - 1; idx >= 0; idx-- {
			stmt := blockStmtAt(blocks, lines[idx])
			succIdxs := cfaSuccessors(stmt, lines[idx], line2num, idx, len(lines))

			newOut := NewNameSet(universe)
			for _, s := range succIdxs {
				newOut = newOut.Union(in[s])
			}
			if !newOut.Equal(out[idx]) {
				out[idx] = newOut
				changed = true
			}

			newIn := neededInFor(stmt, newOut)
			if !newIn.Equal(in[idx]) {
				in[idx] = newIn
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	result := NeededResult{
		NeededIn:  make(map[ir.Line]NameSet, len(lines)),
		NeededOut: make(map[ir.Line]NameSet, len(lines)),
	}
	for i, l := range lines {
		result.NeededIn[l] = in[i]
		result.NeededOut[l] = out[i]
	}
	return result
}

// neededInFor applies the per-construct rule. For an assign whose name
// is not needed out and whose expression is not intrinsically
// necessary, the defined name is dropped and only the operands that
// forcedUses returns (a load's offset) are added to needed-in — exactly
// the information internal/optimize's DCE pass needs to justify
// removing the statement.
func neededInFor[A any](stmt ir.Stmt[A], neededOut NameSet) NameSet {
	switch stmt.Kind {
	case ir.SAssign:
		in := NewNameSet(neededOut.universe)
		for _, n := range neededOut.Names() {
			if n != stmt.Name {
				in = in.Add(n)
			}
		}
		if neededOut.Contains(stmt.Name) || Necessary(stmt) {
			in = addAll(in, usesExpr(stmt.Expr))
		} else {
			in = addAll(in, forcedUses(stmt.Expr))
		}
		return in
	case ir.SExpr:
		return addAll(neededOut.Clone(), usesExpr(stmt.Expr))
	case ir.SReturn:
		return addAll(neededOut.Clone(), usesValue(stmt.Val))
	case ir.SIfJmp:
		return addAll(neededOut.Clone(), usesValue(stmt.Cond))
	case ir.SStore:
		in := neededOut.Clone()
		in = addAll(in, usesValue(stmt.Base))
		in = addAll(in, usesValue(stmt.Offset))
		in = addAll(in, usesValue(stmt.Val))
		return in
	default:
		return neededOut.Clone()
	}
}

// NeededAnywhere conservatively reports whether name appears in the
// needed-in set of any line in result, independent of reachability from
// a particular definition. DCE uses this alongside NeededOut at the
// definition's own line before dropping an assign.
func NeededAnywhere(result NeededResult, name string) bool {
	for _, set := range result.NeededIn {
		if set.Contains(name) {
			return true
		}
	}
	return false
}
