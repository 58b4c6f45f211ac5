package ast

import (
	"g5/internal/source"
	"g5/internal/token"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprBasicLit
	ExprUnary
	ExprBinary
	ExprParen
	ExprSelector
	ExprTypeAssert
	ExprTypeSwitchGuard
	ExprIndex
	ExprSlice
	ExprCall
	ExprCompositeLit
	ExprFuncLit
	ExprTypeOperand
)

var exprKindNames = [...]string{
	ExprIdent:           "Ident",
	ExprBasicLit:        "BasicLit",
	ExprUnary:           "UnaryExpr",
	ExprBinary:          "BinaryExpr",
	ExprParen:           "ParenExpr",
	ExprSelector:        "SelectorExpr",
	ExprTypeAssert:      "TypeAssertExpr",
	ExprTypeSwitchGuard: "TypeSwitchGuard",
	ExprIndex:           "IndexExpr",
	ExprSlice:           "SliceExpr",
	ExprCall:            "CallExpr",
	ExprCompositeLit:    "CompositeLit",
	ExprFuncLit:         "FuncLit",
	ExprTypeOperand:     "TypeExpr",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr?"
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprIdentData struct {
	Name source.StringID
}

// ExprBasicLitData keeps the literal text exactly as written, quotes
// included.
type ExprBasicLitData struct {
	Kind  token.Kind
	Value source.StringID
}

type ExprUnaryData struct {
	Op token.Kind
	X  ExprID
}

type ExprBinaryData struct {
	Op token.Kind
	X  ExprID
	Y  ExprID
}

// ExprWrapData backs parenthesized expressions and `x.(type)` guards.
type ExprWrapData struct {
	X ExprID
}

type ExprSelectorData struct {
	X   ExprID
	Sel source.StringID
}

type ExprTypeAssertData struct {
	X    ExprID
	Type TypeID
}

type ExprIndexData struct {
	X     ExprID
	Index ExprID
}

// ExprSliceData is x[Low:High] or, with Slice3, x[Low:High:Max]. Any bound
// may be absent.
type ExprSliceData struct {
	X      ExprID
	Low    ExprID
	High   ExprID
	Max    ExprID
	Slice3 bool
}

// ExprCallData is Fun(TypeArg, Args...). TypeArg is set when the first
// argument is a type literal, as in make([]int, n); Ellipsis marks a
// trailing `...` spread.
type ExprCallData struct {
	Fun      ExprID
	TypeArg  TypeID
	Args     []ExprID
	Ellipsis bool
}

// Element is one entry of a literal body. Key is absent for unkeyed
// elements; a nested `{...}` value is a CompositeLit without a type.
type Element struct {
	Key   ExprID
	Value ExprID
	Span  source.Span
}

type ExprCompositeLitData struct {
	Type TypeID
	Elts []Element
}

type ExprFuncLitData struct {
	Sig  Signature
	Body StmtID
}

type ExprTypeOperandData struct {
	Type TypeID
}
