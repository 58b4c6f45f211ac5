package parser

import (
	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/token"
)

// parseExpr is the entry point for expressions.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	if p.opts.Binary == BinaryPrecedence {
		return p.parseBinaryExpr(precLogicalOr)
	}
	return p.parseFlatExpr()
}

func (p *Parser) parseExprList() ([]ast.ExprID, bool) {
	x, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	list := []ast.ExprID{x}
	for p.at(token.Comma) {
		p.advance()
		if x, ok = p.parseExpr(); !ok {
			return nil, false
		}
		list = append(list, x)
	}
	return list, true
}

// parseFlatExpr parses `Unary [binop Expr]`: every operator has the same
// precedence and chains group to the right.
func (p *Parser) parseFlatExpr() (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.peek().Kind.IsBinaryOp() {
		return left, true
	}
	op := p.advance()
	right, ok := p.parseFlatExpr()
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewBinary(p.exprSpan(left).Cover(p.exprSpan(right)), op.Kind, left, right), true
}

// parseBinaryExpr does precedence climbing from minPrec upwards.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		prec := binaryPrec(p.peek().Kind)
		if prec == precNone || prec < minPrec {
			return left, true
		}
		op := p.advance()
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}
		left = p.arenas.Exprs.NewBinary(p.exprSpan(left).Cover(p.exprSpan(right)), op.Kind, left, right)
	}
}

// parseUnaryExpr collects prefix operators and applies them right to left
// around the primary expression. `<-chan T` is a receive-only channel type,
// not a receive from `chan T`.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   token.Kind
		span source.Span
	}
	var prefixes []prefixOp
	for p.peek().Kind.IsUnaryOp() {
		tok := p.advance()
		prefixes = append(prefixes, prefixOp{op: tok.Kind, span: tok.Span})
	}

	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for i := len(prefixes) - 1; i >= 0; i-- {
		sp := prefixes[i].span.Cover(p.exprSpan(expr))
		if prefixes[i].op == token.Arrow && p.toRecvChan(expr, sp) {
			continue
		}
		expr = p.arenas.Exprs.NewUnary(sp, prefixes[i].op, expr)
	}
	return expr, true
}

// toRecvChan turns a bidirectional channel type operand into a
// receive-only one in place.
func (p *Parser) toRecvChan(expr ast.ExprID, sp source.Span) bool {
	op, ok := p.arenas.Exprs.TypeOperand(expr)
	if !ok {
		return false
	}
	ch, ok := p.arenas.Types.Chan(op.Type)
	if !ok || ch.Dir != ast.ChanBoth {
		return false
	}
	ch.Dir = ast.ChanRecv
	p.arenas.Types.Get(op.Type).Span = sp
	p.arenas.Exprs.Get(expr).Span = sp
	return true
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.lastSpan
}

// exprToType reinterprets an identifier or qualified identifier as a
// type name. Type operands yield their type.
func (p *Parser) exprToType(id ast.ExprID) (ast.TypeID, bool) {
	e := p.arenas.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprIdent:
		d, _ := p.arenas.Exprs.Ident(id)
		return p.arenas.Types.NewNamed(e.Span, source.NoStringID, d.Name), true
	case ast.ExprSelector:
		d, _ := p.arenas.Exprs.Selector(id)
		if pkg, ok := p.arenas.Exprs.Ident(d.X); ok {
			return p.arenas.Types.NewNamed(e.Span, pkg.Name, d.Sel), true
		}
	case ast.ExprTypeOperand:
		d, _ := p.arenas.Exprs.TypeOperand(id)
		return d.Type, true
	}
	return ast.NoTypeID, p.fail(diag.SynExpectType, e.Span, "expected type")
}
