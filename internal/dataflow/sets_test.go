package dataflow

import (
	"testing"

	"chocopyopt/internal/ir"
)

func TestNameSetUnionAndEqual(t *testing.T) {
	u := NewUniverse[string]()
	a := NewNameSet(u).Add("x").Add("y")
	b := NewNameSet(u).Add("y").Add("x")
	if !a.Equal(b) {
		t.Error("sets with the same members in different insertion order should be Equal")
	}

	c := NewNameSet(u).Add("z")
	if a.Equal(c) {
		t.Error("disjoint sets should not be Equal")
	}

	union := a.Union(c)
	if !union.Contains("x") || !union.Contains("y") || !union.Contains("z") {
		t.Errorf("Union missing a member: %v", union.Names())
	}
}

func TestNameSetSubset(t *testing.T) {
	u := NewUniverse[string]()
	small := NewNameSet(u).Add("x")
	big := NewNameSet(u).Add("x").Add("y")
	if !small.Subset(big) {
		t.Error("small should be a subset of big")
	}
	if big.Subset(small) {
		t.Error("big should not be a subset of small")
	}
}

func TestNameSetClone(t *testing.T) {
	u := NewUniverse[string]()
	a := NewNameSet(u).Add("x")
	clone := a.Clone()
	clone = clone.Add("y")
	if a.Contains("y") {
		t.Error("mutating a clone should not affect the original")
	}
}

func TestLineSetBasics(t *testing.T) {
	u := NewUniverse[ir.Line]()
	l1 := ir.Line{Block: "entry", Index: 0}
	l2 := ir.Line{Block: "entry", Index: 1}

	a := NewLineSet(u).Add(l1)
	b := NewLineSet(u).Add(l1).Add(l2)
	if a.Subset(b) != true {
		t.Error("a should be a subset of b")
	}
	if a.Equal(b) {
		t.Error("a and b differ in membership")
	}
	if len(b.Lines()) != 2 {
		t.Errorf("expected 2 lines, got %v", b.Lines())
	}
}
