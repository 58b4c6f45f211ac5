package parser

import (
	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/token"
)

// parseFuncDecl parses `func [(Recv)] Name Signature [Block]`.
func (p *Parser) parseFuncDecl() (ast.ItemID, bool) {
	start := p.advance().Span
	var (
		fn ast.FuncDecl
		ok bool
	)
	if p.at(token.LParen) {
		if fn.Recv, ok = p.parseParameters(listRecv); !ok {
			return ast.NoItemID, false
		}
		if len(fn.Recv) != 1 {
			return ast.NoItemID, p.fail(diag.SynUnexpectedToken, p.lastSpan, "method must have exactly one receiver")
		}
	}
	if fn.Name, _, ok = p.parseIdent(); !ok {
		return ast.NoItemID, false
	}
	if fn.Sig, ok = p.parseSignature(); !ok {
		return ast.NoItemID, false
	}
	if p.at(token.LBrace) {
		if fn.Body, ok = p.parseBlock(); !ok {
			return ast.NoItemID, false
		}
	}
	return p.arenas.Items.NewFunc(start.Cover(p.lastSpan), fn), true
}

// parseSignature parses `(Params) [Result]` where Result is a
// parenthesized list or a single type.
func (p *Parser) parseSignature() (ast.Signature, bool) {
	var (
		sig ast.Signature
		ok  bool
	)
	if sig.Params, ok = p.parseParameters(listParams); !ok {
		return sig, false
	}
	switch {
	case p.at(token.LParen):
		if sig.Results, ok = p.parseParameters(listResults); !ok {
			return sig, false
		}
	case p.atTypeStart():
		typ, ok := p.parseType()
		if !ok {
			return sig, false
		}
		sig.Results = []ast.Param{{Type: typ, Span: p.arenas.Types.Get(typ).Span}}
	}
	return sig, true
}

// parseParameters reads a parenthesized list of entries and resolves their
// names with resolveParams.
func (p *Parser) parseParameters(kind listKind) ([]ast.Param, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return nil, false
	}
	var entries []paramEntry
	for !p.at(token.RParen) {
		e, ok := p.parseParamEntry()
		if !ok {
			return nil, false
		}
		entries = append(entries, e)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' to close parameter list"); !ok {
		return nil, false
	}

	params, issue := resolveParams(entries, kind)
	if issue != nil {
		return nil, p.fail(issue.code, issue.span, issue.msg)
	}
	return params, true
}

// parseParamEntry parses one comma-separated entry before names are known:
// `Name Type`, `Name ...Type`, `...Type` or a lone type.
func (p *Parser) parseParamEntry() (paramEntry, bool) {
	start := p.peek().Span
	if p.at(token.Ident) {
		tok := p.advance()
		name := p.arenas.Strings.Intern(tok.Text)
		switch {
		case p.at(token.Dot):
			typ, ok := p.parseQualifiedRest(tok)
			return paramEntry{typ: typ, span: start.Cover(p.lastSpan)}, ok
		case p.at(token.Ellipsis) || p.atTypeStart():
			e := paramEntry{name: name, named: true}
			ok := p.parseParamType(&e)
			e.span = start.Cover(p.lastSpan)
			return e, ok
		}
		typ := p.arenas.Types.NewNamed(tok.Span, source.NoStringID, name)
		return paramEntry{typ: typ, bare: name, span: tok.Span}, true
	}

	var e paramEntry
	ok := p.parseParamType(&e)
	e.span = start.Cover(p.lastSpan)
	return e, ok
}

func (p *Parser) parseParamType(e *paramEntry) bool {
	if p.at(token.Ellipsis) {
		p.advance()
		e.variadic = true
	}
	var ok bool
	e.typ, ok = p.parseType()
	return ok
}
