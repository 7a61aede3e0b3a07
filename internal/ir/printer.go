package ir

import (
	"fmt"
	"strings"
)

// Printer renders a Program as indented text, the way the teacher's own
// IR printer walks a tree writing one construct per line.
type Printer struct {
	indent int
	out    strings.Builder
}

// Print returns the textual form of p. It never affects optimization —
// it exists purely for the diagnostic surface and for humans reading
// test failures.
func Print[A any](p Program[A]) string {
	pr := &Printer{}
	printProgram(pr, p)
	return pr.out.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.out.WriteString("  ")
	}
}

func (p *Printer) line(format string, args ...any) {
	p.writeIndent()
	p.out.WriteString(fmt.Sprintf(format, args...))
	p.out.WriteString("\n")
}

func printProgram[A any](p *Printer, prog Program[A]) {
	p.line("program:")
	p.indent++
	printInits(p, prog.Inits)
	printBlocks(p, prog.Body)
	for _, fn := range prog.Funs {
		printFunDef(p, fn)
	}
	for _, cls := range prog.Classes {
		printClass(p, cls)
	}
	p.indent--
}

func printFunDef[A any](p *Printer, fn FunDef[A]) {
	p.line("fun %s:", fn.Name)
	p.indent++
	printInits(p, fn.Inits)
	printBlocks(p, fn.Body)
	p.indent--
}

func printClass[A any](p *Printer, cls Class[A]) {
	p.line("class %s:", cls.Name)
	p.indent++
	for _, m := range cls.Methods {
		printFunDef(p, m)
	}
	p.indent--
}

func printInits[A any](p *Printer, inits []VarInit[A]) {
	for _, v := range inits {
		p.line("init %s = %s", v.Name, printValue(v.Value))
	}
}

func printBlocks[A any](p *Printer, blocks []BasicBlock[A]) {
	for _, b := range blocks {
		p.line("%s:", b.Label)
		p.indent++
		for i, s := range b.Stmts {
			p.line("%d: %s", i, printStmt(s))
		}
		p.indent--
	}
}

func printValue[A any](v Value[A]) string {
	switch v.Kind {
	case VNum:
		if v.Num == nil {
			return "num(?)"
		}
		return fmt.Sprintf("num(%s)", v.Num.String())
	case VBool:
		return fmt.Sprintf("bool(%t)", v.Bool)
	case VNone:
		return "none"
	case VID:
		return fmt.Sprintf("id(%s)", v.Name)
	default:
		return "value?"
	}
}

func printExpr[A any](e Expr[A]) string {
	switch e.Kind {
	case EValue:
		return printValue(e.Val)
	case EBinOp:
		return fmt.Sprintf("binop(%s, %s, %s)", e.Op, printValue(e.Left), printValue(e.Right))
	case EUniOp:
		return fmt.Sprintf("uniop(%s, %s)", e.Op, printValue(e.Operand))
	case ECall:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = printValue(a)
		}
		return fmt.Sprintf("call(%s, [%s])", e.Name, strings.Join(args, ", "))
	case EAlloc:
		return fmt.Sprintf("alloc(%s)", printValue(e.Amount))
	case ELoad:
		return fmt.Sprintf("load(%s, %s)", printValue(e.Base), printValue(e.Offset))
	default:
		return "expr?"
	}
}

func printStmt[A any](s Stmt[A]) string {
	switch s.Kind {
	case SAssign:
		return fmt.Sprintf("%s := %s", s.Name, printExpr(s.Expr))
	case SExpr:
		return printExpr(s.Expr)
	case SReturn:
		return fmt.Sprintf("return %s", printValue(s.Val))
	case SIfJmp:
		return fmt.Sprintf("ifjmp %s, %s, %s", printValue(s.Cond), s.Then, s.Else)
	case SJmp:
		return fmt.Sprintf("jmp %s", s.Target)
	case SStore:
		return fmt.Sprintf("store(%s, %s, %s)", printValue(s.Base), printValue(s.Offset), printValue(s.Val))
	case SPass:
		return "pass"
	default:
		return "stmt?"
	}
}
