package parser

import (
	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/token"
)

// parseOperand parses identifiers, literals, parenthesized expressions,
// function literals and type literals used in expression position.
func (p *Parser) parseOperand() (ast.ExprID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, p.arenas.Strings.Intern(tok.Text)), true

	case token.IntLit, token.FloatLit, token.ImagLit, token.CharLit, token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewBasicLit(tok.Span, tok.Kind, p.arenas.Strings.Intern(tok.Text)), true

	case token.LParen:
		p.advance()
		p.exprLev++
		x, ok := p.parseExpr()
		p.exprLev--
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewParen(tok.Span.Cover(p.lastSpan), x), true

	case token.KwFunc:
		return p.parseFuncTypeOrLit()

	case token.LBracket, token.KwStruct, token.KwMap, token.KwChan, token.KwInterface:
		typ, ok := p.parseTypeCtx(true)
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewTypeOperand(p.arenas.Types.Get(typ).Span, typ), true
	}
	p.errorf(diag.SynExpectExpression, "expected expression, got %s", describe(tok))
	return ast.NoExprID, false
}

// parseFuncTypeOrLit parses `func Signature` and, when a body follows, a
// function literal.
func (p *Parser) parseFuncTypeOrLit() (ast.ExprID, bool) {
	kw := p.advance()
	sig, ok := p.parseSignature()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.LBrace) {
		typ := p.arenas.Types.NewFunc(kw.Span.Cover(p.lastSpan), sig)
		return p.arenas.Exprs.NewTypeOperand(p.arenas.Types.Get(typ).Span, typ), true
	}
	p.exprLev++
	body, ok := p.parseBlock()
	p.exprLev--
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewFuncLit(kw.Span.Cover(p.lastSpan), sig, body), true
}

// parseLiteralValue parses `{ Element, ... }` for a literal of type typ.
// typ is absent for an elided nested literal.
func (p *Parser) parseLiteralValue(typ ast.TypeID, start source.Span) (ast.ExprID, bool) {
	lbrace := p.advance()
	if !typ.IsValid() {
		start = lbrace.Span
	}
	p.exprLev++
	var elts []ast.Element
	for !p.at(token.RBrace) {
		el, ok := p.parseElement()
		if !ok {
			return ast.NoExprID, false
		}
		elts = append(elts, el)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.exprLev--
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close composite literal"); !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewCompositeLit(start.Cover(p.lastSpan), typ, elts), true
}

// parseElement parses `[Key :] Value` where either side may be a nested
// literal body.
func (p *Parser) parseElement() (ast.Element, bool) {
	start := p.peek().Span
	value, ok := p.parseElementValue()
	if !ok {
		return ast.Element{}, false
	}
	el := ast.Element{Value: value}
	if p.at(token.Colon) {
		p.advance()
		el.Key = value
		if el.Value, ok = p.parseElementValue(); !ok {
			return ast.Element{}, false
		}
	}
	el.Span = start.Cover(p.lastSpan)
	return el, true
}

func (p *Parser) parseElementValue() (ast.ExprID, bool) {
	if p.at(token.LBrace) {
		return p.parseLiteralValue(ast.NoTypeID, source.Span{})
	}
	return p.parseExpr()
}
