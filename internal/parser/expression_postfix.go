package parser

import (
	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/token"
)

// parsePrimaryExpr parses an operand followed by any number of selectors,
// type assertions, index or slice expressions, calls and literal bodies.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	x, ok := p.parseOperand()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		switch p.peek().Kind {
		case token.Dot:
			x, ok = p.parseSelectorOrAssert(x)
		case token.LBracket:
			x, ok = p.parseIndexOrSlice(x)
		case token.LParen:
			x, ok = p.parseCall(x)
		case token.LBrace:
			if !p.isLiteralType(x) || (p.exprLev < 0 && p.isTypeName(x)) {
				return x, true
			}
			typ, isType := p.exprToType(x)
			if !isType {
				return ast.NoExprID, false
			}
			x, ok = p.parseLiteralValue(typ, p.exprSpan(x))
		default:
			return x, true
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
}

// parseSelectorOrAssert parses `.Name`, `.(Type)` and the switch guard
// `.(type)`.
func (p *Parser) parseSelectorOrAssert(x ast.ExprID) (ast.ExprID, bool) {
	p.advance() // .
	switch p.peek().Kind {
	case token.Ident:
		sel, sp, _ := p.parseIdent()
		return p.arenas.Exprs.NewSelector(p.exprSpan(x).Cover(sp), x, sel), true
	case token.LParen:
		p.advance()
		if p.at(token.KwType) {
			kw := p.advance()
			if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); !ok {
				return ast.NoExprID, false
			}
			sp := p.exprSpan(x).Cover(p.lastSpan)
			if !p.guardOK {
				return ast.NoExprID, p.fail(diag.SynBadTypeSwitchGuard, kw.Span, "use of .(type) outside type switch")
			}
			p.guards++
			p.guardSpan = kw.Span
			return p.arenas.Exprs.NewTypeSwitchGuard(sp, x), true
		}
		typ, ok := p.parseType()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' to close type assertion"); !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewTypeAssert(p.exprSpan(x).Cover(p.lastSpan), x, typ), true
	}
	p.errorf(diag.SynExpectIdentifier, "expected selector or type assertion, got %s", describe(p.peek()))
	return ast.NoExprID, false
}

// parseIndexOrSlice parses x[i], x[lo:hi] and x[lo:hi:max].
func (p *Parser) parseIndexOrSlice(x ast.ExprID) (ast.ExprID, bool) {
	p.advance() // [
	p.exprLev++
	var (
		idx     [3]ast.ExprID
		ncolons int
		ok      bool
	)
	if !p.at(token.Colon) {
		if idx[0], ok = p.parseExpr(); !ok {
			return ast.NoExprID, false
		}
	}
	for p.at(token.Colon) && ncolons < 2 {
		ncolons++
		p.advance()
		if !p.at(token.Colon) && !p.at(token.RBracket) {
			if idx[ncolons], ok = p.parseExpr(); !ok {
				return ast.NoExprID, false
			}
		}
	}
	p.exprLev--
	if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']'"); !ok {
		return ast.NoExprID, false
	}
	sp := p.exprSpan(x).Cover(p.lastSpan)

	if ncolons == 0 {
		return p.arenas.Exprs.NewIndex(sp, x, idx[0]), true
	}
	slice3 := ncolons == 2
	if slice3 && (!idx[1].IsValid() || !idx[2].IsValid()) {
		return ast.NoExprID, p.fail(diag.SynExpectExpression, sp, "middle and final index required in 3-index slice")
	}
	return p.arenas.Exprs.NewSlice(sp, ast.ExprSliceData{
		X:      x,
		Low:    idx[0],
		High:   idx[1],
		Max:    idx[2],
		Slice3: slice3,
	}), true
}

// parseCall parses an argument list. A type literal in first position is
// kept apart as the call's type argument, as in make([]int, n).
func (p *Parser) parseCall(fun ast.ExprID) (ast.ExprID, bool) {
	p.advance() // (
	p.exprLev++
	var (
		typeArg  ast.TypeID
		args     []ast.ExprID
		ellipsis bool
	)
	for !p.at(token.RParen) {
		arg, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if op, isType := p.arenas.Exprs.TypeOperand(arg); isType && len(args) == 0 && !typeArg.IsValid() {
			typeArg = op.Type
		} else {
			args = append(args, arg)
		}
		if p.at(token.Ellipsis) {
			p.advance()
			ellipsis = true
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		if ellipsis {
			break
		}
	}
	p.exprLev--
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' to close argument list"); !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewCall(p.exprSpan(fun).Cover(p.lastSpan), fun, typeArg, args, ellipsis), true
}

// isLiteralType reports whether x may be followed by a literal body.
func (p *Parser) isLiteralType(x ast.ExprID) bool {
	e := p.arenas.Exprs.Get(x)
	switch e.Kind {
	case ast.ExprIdent:
		return true
	case ast.ExprSelector:
		d, _ := p.arenas.Exprs.Selector(x)
		return p.arenas.Exprs.Get(d.X).Kind == ast.ExprIdent
	case ast.ExprTypeOperand:
		d, _ := p.arenas.Exprs.TypeOperand(x)
		switch p.arenas.Types.Get(d.Type).Kind {
		case ast.TypeArray, ast.TypeSlice, ast.TypeMap, ast.TypeStruct:
			return true
		}
	}
	return false
}

func (p *Parser) isTypeName(x ast.ExprID) bool {
	k := p.arenas.Exprs.Get(x).Kind
	return k == ast.ExprIdent || k == ast.ExprSelector
}
