package dataflow

import "chocopyopt/internal/ir"

// CFAResult is one reaching-definitions entry per statement, in program
// order, exactly as §4.1 describes: "CFA = sequence of (line, var->set
// of Line), one entry per statement".
type CFAResult struct {
	Line  ir.Line
	Reach map[string]LineSet
}

// ReachingDefs computes the reaching-definitions analysis (CFA) over a
// single Body. The returned slice is addressable positionally and by
// LineLabel via the accompanying index.
func ReachingDefs[A any](inits []ir.VarInit[A], blocks []ir.BasicBlock[A]) (entries []CFAResult, line2num map[ir.Line]int) {
	lines, line2num := flatten(blocks)
	lineUniverse := NewUniverse[ir.Line]()

	entries = make([]CFAResult, len(lines))
	for i, l := range lines {
		entries[i] = CFAResult{Line: l, Reach: make(map[string]LineSet)}
	}
	if len(entries) == 0 {
		return entries, line2num
	}

	// Entry 0's map binds every VarInit name to {$varInit} iff its
	// value is not none; otherwise to the empty set.
	for _, v := range inits {
		set := NewLineSet(lineUniverse)
		if v.Value.Kind != ir.VNone {
			set = set.Add(ir.VarInitLine)
		}
		entries[0].Reach[v.Name] = set
	}

	worklist := []int{0}
	for len(worklist) > 0 {
		n := len(worklist) - 1
		idx := worklist[n]
		worklist = worklist[:n]

		stmt := blockStmtAt(blocks, lines[idx])
		succIdxs := cfaSuccessors(stmt, lines[idx], line2num, idx, len(lines))

		for _, succ := range succIdxs {
			changed := propagateReach(entries[idx], stmt, lines[idx], entries[succ].Reach, lineUniverse)
			if changed {
				worklist = append(worklist, succ)
			}
		}
	}

	return entries, line2num
}

// propagateReach unions entries[idx]'s reach map (as transformed by
// stmt, if stmt is an assign) into dst, reporting whether dst changed.
func propagateReach[A any](src CFAResult, stmt ir.Stmt[A], line ir.Line, dst map[string]LineSet, universe *Universe[ir.Line]) bool {
	changed := false
	merge := func(name string, set LineSet) {
		existing, ok := dst[name]
		if !ok {
			existing = NewLineSet(universe)
		}
		merged := existing.Union(set)
		if !ok || !merged.Equal(existing) {
			dst[name] = merged
			changed = true
		}
	}

	if stmt.Kind == ir.SAssign {
		merge(stmt.Name, NewLineSet(universe).Add(line))
		for k, v := range src.Reach {
			if k == stmt.Name {
				continue
			}
			merge(k, v)
		}
		return changed
	}

	for k, v := range src.Reach {
		merge(k, v)
	}
	return changed
}

// cfaSuccessors computes the successor entry indices for the statement
// at lines[idx], per §4.1's successor rules.
func cfaSuccessors[A any](stmt ir.Stmt[A], line ir.Line, line2num map[ir.Line]int, idx, total int) []int {
	switch stmt.Kind {
	case ir.SReturn:
		return nil
	case ir.SIfJmp:
		var out []int
		if n, ok := line2num[ir.EntryLine(stmt.Then)]; ok {
			out = append(out, n)
		}
		if n, ok := line2num[ir.EntryLine(stmt.Else)]; ok {
			out = append(out, n)
		}
		return out
	case ir.SJmp:
		if n, ok := line2num[ir.EntryLine(stmt.Target)]; ok {
			return []int{n}
		}
		return nil
	default:
		// Textual successor: the next entry of the flattened array.
		// For a statement that ends a block without a terminator this
		// is the first statement of the next block (fall-through), so
		// a trailing assign still propagates; only the body's very
		// last statement has no successor here.
		if idx+1 < total {
			return []int{idx + 1}
		}
		return nil
	}
}

// blockStmtAt returns the statement addressed by l.
func blockStmtAt[A any](blocks []ir.BasicBlock[A], l ir.Line) ir.Stmt[A] {
	b, ok := ir.BlockByLabel(blocks, l.Block)
	if !ok || l.Index >= len(b.Stmts) {
		return ir.Stmt[A]{Kind: ir.SPass}
	}
	return b.Stmts[l.Index]
}

// flatten lists every statement's Line in program (block, then
// statement) order and builds the reverse LineLabel->index map.
func flatten[A any](blocks []ir.BasicBlock[A]) ([]ir.Line, map[ir.Line]int) {
	var lines []ir.Line
	line2num := make(map[ir.Line]int)
	for _, b := range blocks {
		for i := range b.Stmts {
			l := ir.Line{Block: b.Label, Index: i}
			line2num[l] = len(lines)
			lines = append(lines, l)
		}
	}
	return lines, line2num
}
