package parser

import (
	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/token"
)

// atTypeStart reports whether the next token can begin a type.
func (p *Parser) atTypeStart() bool {
	switch p.peek().Kind {
	case token.Ident, token.LBracket, token.KwStruct, token.Star, token.KwFunc,
		token.KwInterface, token.KwMap, token.KwChan, token.Arrow, token.LParen:
		return true
	}
	return false
}

func (p *Parser) parseType() (ast.TypeID, bool) {
	return p.parseTypeCtx(false)
}

// parseTypeCtx parses a type. ellipsisOK admits [...]T, which is only
// meaningful as the type of a composite literal.
func (p *Parser) parseTypeCtx(ellipsisOK bool) (ast.TypeID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		return p.parseTypeName()
	case token.LBracket:
		return p.parseArrayOrSliceType(ellipsisOK)
	case token.KwStruct:
		return p.parseStructType()
	case token.Star:
		p.advance()
		elem, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewElem(ast.TypePointer, tok.Span.Cover(p.lastSpan), elem), true
	case token.KwFunc:
		p.advance()
		sig, ok := p.parseSignature()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewFunc(tok.Span.Cover(p.lastSpan), sig), true
	case token.KwInterface:
		return p.parseInterfaceType()
	case token.KwMap:
		return p.parseMapType()
	case token.KwChan, token.Arrow:
		return p.parseChanType()
	case token.LParen:
		p.advance()
		inner, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewElem(ast.TypeParen, tok.Span.Cover(p.lastSpan), inner), true
	}
	p.errorf(diag.SynExpectType, "expected type, got %s", describe(tok))
	return ast.NoTypeID, false
}

// parseTypeName parses `Name` or `Pkg.Name`.
func (p *Parser) parseTypeName() (ast.TypeID, bool) {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type name")
	if !ok {
		return ast.NoTypeID, false
	}
	if p.at(token.Dot) {
		return p.parseQualifiedRest(tok)
	}
	return p.arenas.Types.NewNamed(tok.Span, source.NoStringID, p.arenas.Strings.Intern(tok.Text)), true
}

// parseQualifiedRest finishes `pkg.Name` after pkg has been consumed.
func (p *Parser) parseQualifiedRest(pkg token.Token) (ast.TypeID, bool) {
	p.advance() // .
	name, sp, ok := p.parseIdent()
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewNamed(pkg.Span.Cover(sp), p.arenas.Strings.Intern(pkg.Text), name), true
}

func (p *Parser) parseArrayOrSliceType(ellipsisOK bool) (ast.TypeID, bool) {
	lbrack := p.advance()
	var (
		length   ast.ExprID
		ellipsis bool
		ok       bool
	)
	switch {
	case p.at(token.RBracket):
	case p.at(token.Ellipsis) && ellipsisOK:
		p.advance()
		ellipsis = true
	default:
		p.exprLev++
		length, ok = p.parseExpr()
		p.exprLev--
		if !ok {
			return ast.NoTypeID, false
		}
	}
	if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']'"); !ok {
		return ast.NoTypeID, false
	}
	elem, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}
	sp := lbrack.Span.Cover(p.lastSpan)
	if !length.IsValid() && !ellipsis {
		return p.arenas.Types.NewElem(ast.TypeSlice, sp, elem), true
	}
	return p.arenas.Types.NewArray(sp, length, elem, ellipsis), true
}

func (p *Parser) parseMapType() (ast.TypeID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LBracket, diag.SynUnexpectedToken, "expected '[' after map"); !ok {
		return ast.NoTypeID, false
	}
	key, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}
	if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']'"); !ok {
		return ast.NoTypeID, false
	}
	value, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewMap(kw.Span.Cover(p.lastSpan), key, value), true
}

// parseChanType parses `chan T`, `chan<- T` and `<-chan T`.
func (p *Parser) parseChanType() (ast.TypeID, bool) {
	start := p.peek().Span
	dir := ast.ChanBoth
	if p.at(token.Arrow) {
		p.advance()
		if _, ok := p.expect(token.KwChan, diag.SynExpectType, "expected 'chan'"); !ok {
			return ast.NoTypeID, false
		}
		dir = ast.ChanRecv
	} else {
		p.advance() // chan
		if p.at(token.Arrow) {
			p.advance()
			dir = ast.ChanSend
		}
	}
	elem, ok := p.parseType()
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewChan(start.Cover(p.lastSpan), dir, elem), true
}

func (p *Parser) parseStructType() (ast.TypeID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after struct"); !ok {
		return ast.NoTypeID, false
	}
	var fields []ast.Field
	for !p.at(token.RBrace) {
		f, ok := p.parseField()
		if !ok {
			return ast.NoTypeID, false
		}
		fields = append(fields, f)
		if p.at(token.RBrace) {
			break
		}
		if !p.expectSemi() {
			return ast.NoTypeID, false
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close struct"); !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewStruct(kw.Span.Cover(p.lastSpan), fields), true
}

// parseField parses `IdentList Type [Tag]` or an embedded `[*]TypeName
// [Tag]`. After the first identifier a `.`, `;`, `}` or tag means the
// identifier was the embedded type itself.
func (p *Parser) parseField() (ast.Field, bool) {
	start := p.peek().Span
	var f ast.Field

	switch p.peek().Kind {
	case token.Star:
		star := p.advance()
		name, ok := p.parseTypeName()
		if !ok {
			return f, false
		}
		f.Type = p.arenas.Types.NewElem(ast.TypePointer, star.Span.Cover(p.lastSpan), name)
		f.Embedded = true
	case token.Ident:
		tok := p.advance()
		switch p.peek().Kind {
		case token.Dot:
			typ, ok := p.parseQualifiedRest(tok)
			if !ok {
				return f, false
			}
			f.Type, f.Embedded = typ, true
		case token.Semicolon, token.RBrace, token.StringLit:
			f.Type = p.arenas.Types.NewNamed(tok.Span, source.NoStringID, p.arenas.Strings.Intern(tok.Text))
			f.Embedded = true
		default:
			f.Names = []source.StringID{p.arenas.Strings.Intern(tok.Text)}
			for p.at(token.Comma) {
				p.advance()
				name, _, ok := p.parseIdent()
				if !ok {
					return f, false
				}
				f.Names = append(f.Names, name)
			}
			typ, ok := p.parseType()
			if !ok {
				return f, false
			}
			f.Type = typ
		}
	default:
		p.errorf(diag.SynExpectIdentifier, "expected field name or embedded type, got %s", describe(p.peek()))
		return f, false
	}

	f.Tag = p.tagOrNone()
	f.Span = start.Cover(p.lastSpan)
	return f, true
}

// parseInterfaceType parses `interface { Name Signature; TypeName; ... }`.
func (p *Parser) parseInterfaceType() (ast.TypeID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after interface"); !ok {
		return ast.NoTypeID, false
	}
	var methods []ast.Method
	for !p.at(token.RBrace) {
		tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected method or embedded interface")
		if !ok {
			return ast.NoTypeID, false
		}
		m := ast.Method{Span: tok.Span}
		switch {
		case p.at(token.LParen):
			m.Name = p.arenas.Strings.Intern(tok.Text)
			if m.Sig, ok = p.parseSignature(); !ok {
				return ast.NoTypeID, false
			}
		case p.at(token.Dot):
			if m.Embed, ok = p.parseQualifiedRest(tok); !ok {
				return ast.NoTypeID, false
			}
		default:
			m.Embed = p.arenas.Types.NewNamed(tok.Span, source.NoStringID, p.arenas.Strings.Intern(tok.Text))
		}
		m.Span = m.Span.Cover(p.lastSpan)
		methods = append(methods, m)
		if p.at(token.RBrace) {
			break
		}
		if !p.expectSemi() {
			return ast.NoTypeID, false
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close interface"); !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewInterface(kw.Span.Cover(p.lastSpan), methods), true
}
