package optimize

import (
	"math/big"
	"testing"

	"chocopyopt/internal/dataflow"
	"chocopyopt/internal/ir"
)

func TestDCERemovesDeadPureAssign(t *testing.T) {
	blocks := []ir.BasicBlock[string]{
		{Label: "entry", Stmts: []ir.Stmt[string]{
			ir.Assign("unused", ir.ValueExpr(num(1), ""), ""),
			ir.Return(num(2), ""),
		}},
	}
	needed := dataflow.Needed(blocks)
	out, changed := DCE(blocks, needed)
	if !changed {
		t.Fatal("expected DCE to report a change")
	}
	if out[0].Stmts[0].Kind != ir.SPass {
		t.Errorf("dead assign should become pass, got %+v", out[0].Stmts[0])
	}
}

func TestDCEKeepsLiveAssign(t *testing.T) {
	blocks := []ir.BasicBlock[string]{
		{Label: "entry", Stmts: []ir.Stmt[string]{
			ir.Assign("x", ir.ValueExpr(num(1), ""), ""),
			ir.Return(ir.ID[string]("x", ""), ""),
		}},
	}
	needed := dataflow.Needed(blocks)
	out, changed := DCE(blocks, needed)
	if changed {
		t.Error("a live assign should not be touched")
	}
	if out[0].Stmts[0].Kind != ir.SAssign {
		t.Errorf("live assign should survive, got %+v", out[0].Stmts[0])
	}
}

func TestDCEKeepsDeadCallForSideEffects(t *testing.T) {
	blocks := []ir.BasicBlock[string]{
		{Label: "entry", Stmts: []ir.Stmt[string]{
			ir.Assign("unused", ir.Call[string]("log", nil, ""), ""),
			ir.Return(num(0), ""),
		}},
	}
	needed := dataflow.Needed(blocks)
	out, changed := DCE(blocks, needed)
	if changed {
		t.Error("a call assign must never be eliminated even when its result is unused")
	}
	if out[0].Stmts[0].Kind != ir.SAssign {
		t.Errorf("call assign should survive, got %+v", out[0].Stmts[0])
	}
}

func TestDCEPreservesLineAddressing(t *testing.T) {
	blocks := []ir.BasicBlock[string]{
		{Label: "entry", Stmts: []ir.Stmt[string]{
			ir.Assign("unused", ir.ValueExpr(num(1), ""), ""),
			ir.Assign("x", ir.ValueExpr(num(2), ""), ""),
			ir.Return(ir.ID[string]("x", ""), ""),
		}},
	}
	needed := dataflow.Needed(blocks)
	out, _ := DCE(blocks, needed)
	if len(out[0].Stmts) != 3 {
		t.Fatalf("DCE must not change statement count, got %d", len(out[0].Stmts))
	}
	if out[0].Stmts[1].Kind != ir.SAssign || out[0].Stmts[1].Name != "x" {
		t.Errorf("surviving assign should stay at its original index, got %+v", out[0].Stmts[1])
	}
}
