package ast

import (
	"g5/internal/source"
	"g5/internal/token"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena        *Arena[Expr]
	Idents       *Arena[ExprIdentData]
	Literals     *Arena[ExprBasicLitData]
	Unaries      *Arena[ExprUnaryData]
	Binaries     *Arena[ExprBinaryData]
	Wraps        *Arena[ExprWrapData]
	Selectors    *Arena[ExprSelectorData]
	Asserts      *Arena[ExprTypeAssertData]
	Indices      *Arena[ExprIndexData]
	Slices       *Arena[ExprSliceData]
	Calls        *Arena[ExprCallData]
	Composites   *Arena[ExprCompositeLitData]
	FuncLits     *Arena[ExprFuncLitData]
	TypeOperands *Arena[ExprTypeOperandData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:        NewArena[Expr](capHint),
		Idents:       NewArena[ExprIdentData](capHint),
		Literals:     NewArena[ExprBasicLitData](capHint),
		Unaries:      NewArena[ExprUnaryData](capHint),
		Binaries:     NewArena[ExprBinaryData](capHint),
		Wraps:        NewArena[ExprWrapData](capHint),
		Selectors:    NewArena[ExprSelectorData](capHint),
		Asserts:      NewArena[ExprTypeAssertData](capHint),
		Indices:      NewArena[ExprIndexData](capHint),
		Slices:       NewArena[ExprSliceData](capHint),
		Calls:        NewArena[ExprCallData](capHint),
		Composites:   NewArena[ExprCompositeLitData](capHint),
		FuncLits:     NewArena[ExprFuncLitData](capHint),
		TypeOperands: NewArena[ExprTypeOperandData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(ExprIdentData{Name: name}))
}

// Ident returns the identifier data, or false if id is not a bare
// identifier.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

func (e *Exprs) NewBasicLit(span source.Span, kind token.Kind, value source.StringID) ExprID {
	return e.new(ExprBasicLit, span, e.Literals.Allocate(ExprBasicLitData{Kind: kind, Value: value}))
}

func (e *Exprs) BasicLit(id ExprID) (*ExprBasicLitData, bool) {
	p, ok := e.payload(id, ExprBasicLit)
	if !ok {
		return nil, false
	}
	return e.Literals.Get(p), true
}

func (e *Exprs) NewUnary(span source.Span, op token.Kind, x ExprID) ExprID {
	return e.new(ExprUnary, span, e.Unaries.Allocate(ExprUnaryData{Op: op, X: x}))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewBinary(span source.Span, op token.Kind, x, y ExprID) ExprID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(ExprBinaryData{Op: op, X: x, Y: y}))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewParen(span source.Span, x ExprID) ExprID {
	return e.new(ExprParen, span, e.Wraps.Allocate(ExprWrapData{X: x}))
}

func (e *Exprs) Paren(id ExprID) (*ExprWrapData, bool) {
	p, ok := e.payload(id, ExprParen)
	if !ok {
		return nil, false
	}
	return e.Wraps.Get(p), true
}

func (e *Exprs) NewTypeSwitchGuard(span source.Span, x ExprID) ExprID {
	return e.new(ExprTypeSwitchGuard, span, e.Wraps.Allocate(ExprWrapData{X: x}))
}

func (e *Exprs) TypeSwitchGuard(id ExprID) (*ExprWrapData, bool) {
	p, ok := e.payload(id, ExprTypeSwitchGuard)
	if !ok {
		return nil, false
	}
	return e.Wraps.Get(p), true
}

func (e *Exprs) NewSelector(span source.Span, x ExprID, sel source.StringID) ExprID {
	return e.new(ExprSelector, span, e.Selectors.Allocate(ExprSelectorData{X: x, Sel: sel}))
}

func (e *Exprs) Selector(id ExprID) (*ExprSelectorData, bool) {
	p, ok := e.payload(id, ExprSelector)
	if !ok {
		return nil, false
	}
	return e.Selectors.Get(p), true
}

func (e *Exprs) NewTypeAssert(span source.Span, x ExprID, typ TypeID) ExprID {
	return e.new(ExprTypeAssert, span, e.Asserts.Allocate(ExprTypeAssertData{X: x, Type: typ}))
}

func (e *Exprs) TypeAssert(id ExprID) (*ExprTypeAssertData, bool) {
	p, ok := e.payload(id, ExprTypeAssert)
	if !ok {
		return nil, false
	}
	return e.Asserts.Get(p), true
}

func (e *Exprs) NewIndex(span source.Span, x, index ExprID) ExprID {
	return e.new(ExprIndex, span, e.Indices.Allocate(ExprIndexData{X: x, Index: index}))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	p, ok := e.payload(id, ExprIndex)
	if !ok {
		return nil, false
	}
	return e.Indices.Get(p), true
}

func (e *Exprs) NewSlice(span source.Span, data ExprSliceData) ExprID {
	return e.new(ExprSlice, span, e.Slices.Allocate(data))
}

func (e *Exprs) Slice(id ExprID) (*ExprSliceData, bool) {
	p, ok := e.payload(id, ExprSlice)
	if !ok {
		return nil, false
	}
	return e.Slices.Get(p), true
}

func (e *Exprs) NewCall(span source.Span, fun ExprID, typeArg TypeID, args []ExprID, ellipsis bool) ExprID {
	return e.new(ExprCall, span, e.Calls.Allocate(ExprCallData{
		Fun:      fun,
		TypeArg:  typeArg,
		Args:     list(args),
		Ellipsis: ellipsis,
	}))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewCompositeLit(span source.Span, typ TypeID, elts []Element) ExprID {
	return e.new(ExprCompositeLit, span, e.Composites.Allocate(ExprCompositeLitData{Type: typ, Elts: list(elts)}))
}

func (e *Exprs) CompositeLit(id ExprID) (*ExprCompositeLitData, bool) {
	p, ok := e.payload(id, ExprCompositeLit)
	if !ok {
		return nil, false
	}
	return e.Composites.Get(p), true
}

func (e *Exprs) NewFuncLit(span source.Span, sig Signature, body StmtID) ExprID {
	return e.new(ExprFuncLit, span, e.FuncLits.Allocate(ExprFuncLitData{Sig: sig.normalized(), Body: body}))
}

func (e *Exprs) FuncLit(id ExprID) (*ExprFuncLitData, bool) {
	p, ok := e.payload(id, ExprFuncLit)
	if !ok {
		return nil, false
	}
	return e.FuncLits.Get(p), true
}

func (e *Exprs) NewTypeOperand(span source.Span, typ TypeID) ExprID {
	return e.new(ExprTypeOperand, span, e.TypeOperands.Allocate(ExprTypeOperandData{Type: typ}))
}

func (e *Exprs) TypeOperand(id ExprID) (*ExprTypeOperandData, bool) {
	p, ok := e.payload(id, ExprTypeOperand)
	if !ok {
		return nil, false
	}
	return e.TypeOperands.Get(p), true
}
