// Package ir defines the block-structured intermediate representation
// consumed and produced by the optimizer. Every node is generic over an
// annotation type A, which the optimizer treats as opaque and must copy
// forward onto every rewritten node unchanged.
//
// Nodes are modeled as tagged structs with a Kind discriminant and a
// fixed set of typed fields per variant, not as an interface implemented
// by one type per variant. Dispatch lives in the analyses and rewriters
// (internal/dataflow, internal/optimize), via exhaustive switches on
// Kind, not via per-type virtual methods.
package ir

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Line addresses a single statement: the block it lives in and its
// index within that block's statement list. Line doubles as the map
// key the spec calls a LineLabel — there is no separate string-keyed
// form, since using (block, index) as a Go struct key is both exact
// and free of the spec's own "ambiguity if block names end in digits"
// warning about string concatenation.
type Line struct {
	Block string
	Index int
}

// LineLabel is an alias kept for readability at call sites that are
// talking about "the label of a program point" rather than "an address
// to index a block with" — they are the same value.
type LineLabel = Line

// EntryLine returns the address of block's first statement, i.e. the
// convention that "<block>0" is the entry of <block>.
func EntryLine(block string) Line { return Line{Block: block, Index: 0} }

// VarInitLine is the synthetic definition site of every VarInit whose
// value is not none, per §4.1's initialization rule.
var VarInitLine = Line{Block: "$varInit", Index: 0}

// ValueKind tags the variant of a Value.
type ValueKind int

const (
	VNum ValueKind = iota
	VBool
	VNone
	VID
)

func (k ValueKind) String() string {
	switch k {
	case VNum:
		return "num"
	case VBool:
		return "bool"
	case VNone:
		return "none"
	case VID:
		return "id"
	default:
		return "value?"
	}
}

// MarshalJSON renders a ValueKind as its name, e.g. "num", so IR JSON
// files read like the printer's own output.
func (k ValueKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON parses a ValueKind from its name.
func (k *ValueKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "num":
		*k = VNum
	case "bool":
		*k = VBool
	case "none":
		*k = VNone
	case "id":
		*k = VID
	default:
		return fmt.Errorf("ir: unknown value kind %q", s)
	}
	return nil
}

// Value is an operand: a tagged variant of num/bool/none/id. Values
// never own subexpressions — they are the leaves of the IR.
type Value[A any] struct {
	Kind  ValueKind
	Num   *big.Int
	Bool  bool
	Name  string // set when Kind == VID
	Annot A
}

// Num builds a num(v) value.
func Num[A any](v *big.Int, annot A) Value[A] {
	return Value[A]{Kind: VNum, Num: v, Annot: annot}
}

// MkBool builds a bool(v) value.
func MkBool[A any](v bool, annot A) Value[A] {
	return Value[A]{Kind: VBool, Bool: v, Annot: annot}
}

// None builds a none value.
func None[A any](annot A) Value[A] {
	return Value[A]{Kind: VNone, Annot: annot}
}

// ID builds an id(name) value.
func ID[A any](name string, annot A) Value[A] {
	return Value[A]{Kind: VID, Name: name, Annot: annot}
}

// IsLiteral reports whether v is a num/bool/none literal, i.e. not an
// id reference — the operand shape the constant folder requires.
func (v Value[A]) IsLiteral() bool { return v.Kind != VID }

// ExprKind tags the variant of an Expr.
type ExprKind int

const (
	EValue ExprKind = iota
	EBinOp
	EUniOp
	ECall
	EAlloc
	ELoad
)

func (k ExprKind) String() string {
	switch k {
	case EValue:
		return "value"
	case EBinOp:
		return "binop"
	case EUniOp:
		return "uniop"
	case ECall:
		return "call"
	case EAlloc:
		return "alloc"
	case ELoad:
		return "load"
	default:
		return "expr?"
	}
}

// MarshalJSON renders an ExprKind as its name.
func (k ExprKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON parses an ExprKind from its name.
func (k *ExprKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "value":
		*k = EValue
	case "binop":
		*k = EBinOp
	case "uniop":
		*k = EUniOp
	case "call":
		*k = ECall
	case "alloc":
		*k = EAlloc
	case "load":
		*k = ELoad
	default:
		return fmt.Errorf("ir: unknown expr kind %q", s)
	}
	return nil
}

// Expr is operand-atomic: every sub-position is a Value, never a nested
// Expr. This is the canonical post-lowering A-normal form.
//
// Only the fields relevant to Kind are meaningful; the rest are the
// zero Value. Which fields belong to which Kind:
//
//	EValue  -> Val
//	EBinOp  -> Op, Left, Right
//	EUniOp  -> Op, Operand
//	ECall   -> Name, Args
//	EAlloc  -> Amount
//	ELoad   -> Base, Offset
type Expr[A any] struct {
	Kind ExprKind
	Annot A

	Val Value[A]

	Op      string
	Left    Value[A]
	Right   Value[A]
	Operand Value[A]

	Name string
	Args []Value[A]

	Amount Value[A]

	Base   Value[A]
	Offset Value[A]
}

// ValueExpr builds a value(v) expression.
func ValueExpr[A any](v Value[A], annot A) Expr[A] {
	return Expr[A]{Kind: EValue, Val: v, Annot: annot}
}

// BinOp builds a binop(op, left, right) expression.
func BinOp[A any](op string, left, right Value[A], annot A) Expr[A] {
	return Expr[A]{Kind: EBinOp, Op: op, Left: left, Right: right, Annot: annot}
}

// UniOp builds a uniop(op, operand) expression.
func UniOp[A any](op string, operand Value[A], annot A) Expr[A] {
	return Expr[A]{Kind: EUniOp, Op: op, Operand: operand, Annot: annot}
}

// Call builds a call(name, args) expression.
func Call[A any](name string, args []Value[A], annot A) Expr[A] {
	return Expr[A]{Kind: ECall, Name: name, Args: args, Annot: annot}
}

// Alloc builds an alloc(amount) expression.
func Alloc[A any](amount Value[A], annot A) Expr[A] {
	return Expr[A]{Kind: EAlloc, Amount: amount, Annot: annot}
}

// Load builds a load(base, offset) expression.
func Load[A any](base, offset Value[A], annot A) Expr[A] {
	return Expr[A]{Kind: ELoad, Base: base, Offset: offset, Annot: annot}
}

// StmtKind tags the variant of a Stmt.
type StmtKind int

const (
	SAssign StmtKind = iota
	SExpr
	SReturn
	SIfJmp
	SJmp
	SStore
	SPass
)

func (k StmtKind) String() string {
	switch k {
	case SAssign:
		return "assign"
	case SExpr:
		return "expr"
	case SReturn:
		return "return"
	case SIfJmp:
		return "ifjmp"
	case SJmp:
		return "jmp"
	case SStore:
		return "store"
	case SPass:
		return "pass"
	default:
		return "stmt?"
	}
}

// MarshalJSON renders a StmtKind as its name.
func (k StmtKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON parses a StmtKind from its name.
func (k *StmtKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "assign":
		*k = SAssign
	case "expr":
		*k = SExpr
	case "return":
		*k = SReturn
	case "ifjmp":
		*k = SIfJmp
	case "jmp":
		*k = SJmp
	case "store":
		*k = SStore
	case "pass":
		*k = SPass
	default:
		return fmt.Errorf("ir: unknown stmt kind %q", s)
	}
	return nil
}

// Stmt is a tagged variant of the statement forms in §3. Which fields
// belong to which Kind:
//
//	SAssign -> Name, Expr
//	SExpr   -> Expr
//	SReturn -> Val
//	SIfJmp  -> Cond, Then, Else
//	SJmp    -> Target
//	SStore  -> Base, Offset, Val
//	SPass   -> (none)
type Stmt[A any] struct {
	Kind  StmtKind
	Annot A

	Name string
	Expr Expr[A]

	Val Value[A]

	Cond Value[A]
	Then string
	Else string

	Target string

	Base   Value[A]
	Offset Value[A]
}

// Assign builds an assign(name, value) statement.
func Assign[A any](name string, value Expr[A], annot A) Stmt[A] {
	return Stmt[A]{Kind: SAssign, Name: name, Expr: value, Annot: annot}
}

// ExprStmt builds an expr(e) statement.
func ExprStmt[A any](e Expr[A], annot A) Stmt[A] {
	return Stmt[A]{Kind: SExpr, Expr: e, Annot: annot}
}

// Return builds a return(v) statement.
func Return[A any](v Value[A], annot A) Stmt[A] {
	return Stmt[A]{Kind: SReturn, Val: v, Annot: annot}
}

// IfJmp builds an ifjmp(cond, thn, els) statement.
func IfJmp[A any](cond Value[A], thn, els string, annot A) Stmt[A] {
	return Stmt[A]{Kind: SIfJmp, Cond: cond, Then: thn, Else: els, Annot: annot}
}

// Jmp builds a jmp(lbl) statement.
func Jmp[A any](lbl string, annot A) Stmt[A] {
	return Stmt[A]{Kind: SJmp, Target: lbl, Annot: annot}
}

// Store builds a store(base, offset, value) statement.
func Store[A any](base, offset, value Value[A], annot A) Stmt[A] {
	return Stmt[A]{Kind: SStore, Base: base, Offset: offset, Val: value, Annot: annot}
}

// Pass builds a pass statement.
func Pass[A any](annot A) Stmt[A] {
	return Stmt[A]{Kind: SPass, Annot: annot}
}

// Terminator reports whether s ends a basic block. A non-terminator
// statement's textual successor in the same block is its only CFG
// successor.
func (s Stmt[A]) Terminator() bool {
	switch s.Kind {
	case SReturn, SIfJmp, SJmp:
		return true
	default:
		return false
	}
}

// BasicBlock is a label paired with its statement list. A block ends
// with a terminator or falls through into the textual-order successor
// block.
type BasicBlock[A any] struct {
	Label string
	Stmts []Stmt[A]
}

// VarInit is an initial (name, value) binding at the start of a
// function/program body.
type VarInit[A any] struct {
	Name  string
	Value Value[A]
}

// FunDef is a function: its initial bindings and its block-structured
// body.
type FunDef[A any] struct {
	Name  string
	Inits []VarInit[A]
	Body  []BasicBlock[A]
}

// Class owns a set of methods, each optimized independently
// (intra-procedurally, per the spec's non-goals).
type Class[A any] struct {
	Name    string
	Methods []FunDef[A]
}

// Program is the top-level unit: its own inits/body plus every
// function and class in the translation unit.
type Program[A any] struct {
	Inits   []VarInit[A]
	Funs    []FunDef[A]
	Classes []Class[A]
	Body    []BasicBlock[A]
}
