package optimize

import (
	"fmt"

	"chocopyopt/internal/dataflow"
	"chocopyopt/internal/ir"
)

// Diagnostics carries the side-channel information collected while
// running the driver: per body, the iteration count, plus the CFA dump
// when Options.Diagnostics is set. Nothing here feeds back into the
// returned program.
type Diagnostics struct {
	// Bodies holds one trace per ir.Bodies entry, in the same order.
	Bodies []BodyDiagnostics
}

// BodyDiagnostics traces one intra-procedural unit's optimization.
type BodyDiagnostics struct {
	Qualifier  string
	Iterations int
	CFA        []dataflow.CFAResult
}

// Run optimizes prog to a fixed point: for every body (the top-level
// program, every function, every class method independently) it
// alternates constant folding and neededness-based dead code
// elimination until neither changes anything, then moves to the next
// body. Bodies are optimized independently and never share state,
// matching the intra-procedural scope.
func Run[A any](prog ir.Program[A], opts Options) (ir.Program[A], Diagnostics, error) {
	opts = opts.normalized()
	var diag Diagnostics

	// Function and method bodies are written back through prog's
	// slices; copy them first so the caller's program is left as is.
	prog.Funs = append(prog.Funs[:0:0], prog.Funs...)
	prog.Classes = append(prog.Classes[:0:0], prog.Classes...)
	for ci := range prog.Classes {
		prog.Classes[ci].Methods = append(prog.Classes[ci].Methods[:0:0], prog.Classes[ci].Methods...)
	}

	bodies := ir.Bodies(&prog)
	for i, body := range bodies {
		if err := validate(body); err != nil {
			return prog, diag, err
		}

		blocks := body.Blocks
		var bodyDiag BodyDiagnostics
		bodyDiag.Qualifier = body.Qualifier

		if opts.Diagnostics {
			cfa, _ := dataflow.ReachingDefs(body.Inits, blocks)
			bodyDiag.CFA = cfa
		}

		for iter := 0; iter < opts.MaxIterations; iter++ {
			bodyDiag.Iterations = iter + 1
			changed := false

			if opts.Folding {
				folded, foldChanged := foldBlocks(blocks)
				if foldChanged {
					changed = true
				}
				blocks = folded
			}

			if opts.DCE {
				needed := dataflow.Needed(blocks)
				reduced, dceChanged := DCE(blocks, needed)
				if dceChanged {
					changed = true
				}
				blocks = reduced
			}

			if !changed {
				break
			}
		}

		ir.SetBlocks(&prog, i, blocks)
		diag.Bodies = append(diag.Bodies, bodyDiag)
	}

	return prog, diag, nil
}

// foldBlocks applies FoldStmt across every statement, reporting whether
// any expression actually collapsed into a literal. Fold only ever
// rewrites EBinOp/EUniOp into EValue, so a Kind change is a reliable,
// comparable-free signal that folding made progress.
func foldBlocks[A any](blocks []ir.BasicBlock[A]) ([]ir.BasicBlock[A], bool) {
	changed := false
	out := make([]ir.BasicBlock[A], len(blocks))
	for bi, b := range blocks {
		stmts := make([]ir.Stmt[A], len(b.Stmts))
		for si, s := range b.Stmts {
			folded := FoldStmt(s)
			if exprKind(folded) != exprKind(s) {
				changed = true
			}
			stmts[si] = folded
		}
		out[bi] = ir.BasicBlock[A]{Label: b.Label, Stmts: stmts}
	}
	return out, changed
}

func exprKind[A any](s ir.Stmt[A]) ir.ExprKind {
	switch s.Kind {
	case ir.SAssign, ir.SExpr:
		return s.Expr.Kind
	default:
		return ir.EValue
	}
}

func validate[A any](body ir.Body[A]) error {
	labels := make(map[string]bool)
	for _, b := range body.Blocks {
		labels[b.Label] = true
	}
	for _, b := range body.Blocks {
		for i, s := range b.Stmts {
			line := fmt.Sprintf("%s:%d", b.Label, i)
			switch s.Kind {
			case ir.SJmp:
				if !labels[s.Target] {
					return &InvariantError{Body: body.Qualifier, Line: line, Invariant: "jmp to undeclared label " + s.Target}
				}
			case ir.SIfJmp:
				if !labels[s.Then] {
					return &InvariantError{Body: body.Qualifier, Line: line, Invariant: "ifjmp then-target undeclared: " + s.Then}
				}
				if !labels[s.Else] {
					return &InvariantError{Body: body.Qualifier, Line: line, Invariant: "ifjmp else-target undeclared: " + s.Else}
				}
			}
		}
	}
	return nil
}
