package dataflow

import "chocopyopt/internal/ir"

// usesValue returns {name} for an id value, else the empty set.
func usesValue[A any](v ir.Value[A]) []string {
	if v.Kind == ir.VID {
		return []string{v.Name}
	}
	return nil
}

// usesExpr returns the union of uses over every Value contained in e.
func usesExpr[A any](e ir.Expr[A]) []string {
	switch e.Kind {
	case ir.EValue:
		return usesValue(e.Val)
	case ir.EBinOp:
		return append(usesValue(e.Left), usesValue(e.Right)...)
	case ir.EUniOp:
		return usesValue(e.Operand)
	case ir.ECall:
		var names []string
		for _, a := range e.Args {
			names = append(names, usesValue(a)...)
		}
		return names
	case ir.EAlloc:
		return usesValue(e.Amount)
	case ir.ELoad:
		return append(usesValue(e.Base), usesValue(e.Offset)...)
	default:
		return nil
	}
}

func addAll(s NameSet, names []string) NameSet {
	for _, n := range names {
		s = s.Add(n)
	}
	return s
}
