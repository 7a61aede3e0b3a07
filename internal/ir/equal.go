package ir

// Equal reports whether two programs are structurally identical,
// including annotations. It underlies the idempotence property test
// (§8): running the driver twice must yield IR Equal to running it
// once.
func Equal[A comparable](a, b Program[A]) bool {
	if len(a.Inits) != len(b.Inits) || len(a.Funs) != len(b.Funs) || len(a.Classes) != len(b.Classes) {
		return false
	}
	for i := range a.Inits {
		if !varInitEqual(a.Inits[i], b.Inits[i]) {
			return false
		}
	}
	if !blocksEqual(a.Body, b.Body) {
		return false
	}
	for i := range a.Funs {
		if a.Funs[i].Name != b.Funs[i].Name {
			return false
		}
		if len(a.Funs[i].Inits) != len(b.Funs[i].Inits) {
			return false
		}
		for j := range a.Funs[i].Inits {
			if !varInitEqual(a.Funs[i].Inits[j], b.Funs[i].Inits[j]) {
				return false
			}
		}
		if !blocksEqual(a.Funs[i].Body, b.Funs[i].Body) {
			return false
		}
	}
	for i := range a.Classes {
		if a.Classes[i].Name != b.Classes[i].Name || len(a.Classes[i].Methods) != len(b.Classes[i].Methods) {
			return false
		}
		for j := range a.Classes[i].Methods {
			af, bf := a.Classes[i].Methods[j], b.Classes[i].Methods[j]
			if af.Name != bf.Name || len(af.Inits) != len(bf.Inits) || !blocksEqual(af.Body, bf.Body) {
				return false
			}
			for k := range af.Inits {
				if !varInitEqual(af.Inits[k], bf.Inits[k]) {
					return false
				}
			}
		}
	}
	return true
}

func varInitEqual[A comparable](a, b VarInit[A]) bool {
	return a.Name == b.Name && valueEqual(a.Value, b.Value)
}

func blocksEqual[A comparable](a, b []BasicBlock[A]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Label != b[i].Label || len(a[i].Stmts) != len(b[i].Stmts) {
			return false
		}
		for j := range a[i].Stmts {
			if !stmtEqual(a[i].Stmts[j], b[i].Stmts[j]) {
				return false
			}
		}
	}
	return true
}

func stmtEqual[A comparable](a, b Stmt[A]) bool {
	if a.Kind != b.Kind || a.Annot != b.Annot {
		return false
	}
	switch a.Kind {
	case SAssign:
		return a.Name == b.Name && exprEqual(a.Expr, b.Expr)
	case SExpr:
		return exprEqual(a.Expr, b.Expr)
	case SReturn:
		return valueEqual(a.Val, b.Val)
	case SIfJmp:
		return valueEqual(a.Cond, b.Cond) && a.Then == b.Then && a.Else == b.Else
	case SJmp:
		return a.Target == b.Target
	case SStore:
		return valueEqual(a.Base, b.Base) && valueEqual(a.Offset, b.Offset) && valueEqual(a.Val, b.Val)
	case SPass:
		return true
	default:
		return false
	}
}

func exprEqual[A comparable](a, b Expr[A]) bool {
	if a.Kind != b.Kind || a.Annot != b.Annot {
		return false
	}
	switch a.Kind {
	case EValue:
		return valueEqual(a.Val, b.Val)
	case EBinOp:
		return a.Op == b.Op && valueEqual(a.Left, b.Left) && valueEqual(a.Right, b.Right)
	case EUniOp:
		return a.Op == b.Op && valueEqual(a.Operand, b.Operand)
	case ECall:
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !valueEqual(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case EAlloc:
		return valueEqual(a.Amount, b.Amount)
	case ELoad:
		return valueEqual(a.Base, b.Base) && valueEqual(a.Offset, b.Offset)
	default:
		return false
	}
}

func valueEqual[A comparable](a, b Value[A]) bool {
	if a.Kind != b.Kind || a.Annot != b.Annot {
		return false
	}
	switch a.Kind {
	case VNum:
		if a.Num == nil || b.Num == nil {
			return a.Num == b.Num
		}
		return a.Num.Cmp(b.Num) == 0
	case VBool:
		return a.Bool == b.Bool
	case VNone:
		return true
	case VID:
		return a.Name == b.Name
	default:
		return false
	}
}
