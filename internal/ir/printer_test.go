package ir

import (
	"math/big"
	"strings"
	"testing"
)

func TestPrintProgram(t *testing.T) {
	prog := Program[string]{
		Inits: []VarInit[string]{{Name: "x", Value: Num(big.NewInt(1), "")}},
		Body: []BasicBlock[string]{
			{
				Label: "entry",
				Stmts: []Stmt[string]{
					Assign("y", BinOp("+", ID[string]("x", ""), Num(big.NewInt(2), ""), ""), ""),
					Return(ID[string]("y", ""), ""),
				},
			},
		},
	}

	out := Print(prog)
	for _, want := range []string{"program:", "init x = num(1)", "entry:", "y := binop(+, id(x), num(2))", "return id(y)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Print() missing %q, got:\n%s", want, out)
		}
	}
}

func TestPrintFunAndClass(t *testing.T) {
	prog := Program[string]{
		Funs: []FunDef[string]{
			{Name: "f", Body: []BasicBlock[string]{{Label: "b", Stmts: []Stmt[string]{Pass[string]("")}}}},
		},
		Classes: []Class[string]{
			{Name: "C", Methods: []FunDef[string]{
				{Name: "m", Body: []BasicBlock[string]{{Label: "b", Stmts: []Stmt[string]{Pass[string]("")}}}},
			}},
		},
	}

	out := Print(prog)
	for _, want := range []string{"fun f:", "class C:", "0: pass"} {
		if !strings.Contains(out, want) {
			t.Errorf("Print() missing %q, got:\n%s", want, out)
		}
	}
}
