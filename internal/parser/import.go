package parser

import (
	"strconv"

	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/token"
)

// parseImportDecl parses `import Spec` or `import ( Spec; ... )`.
func (p *Parser) parseImportDecl() (ast.ItemID, bool) {
	start := p.advance().Span
	var specs []ast.ImportSpec
	grouped, ok := p.parseGroup(func() bool {
		spec, ok := p.parseImportSpec()
		specs = append(specs, spec)
		return ok
	})
	if !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewImport(start.Cover(p.lastSpan), specs, grouped), true
}

// parseImportSpec parses `[Name | . | _] "path"`.
func (p *Parser) parseImportSpec() (ast.ImportSpec, bool) {
	spec := ast.ImportSpec{Span: p.peek().Span}
	switch p.peek().Kind {
	case token.Dot:
		p.advance()
		spec.Dot = true
	case token.Ident:
		spec.Name, _, _ = p.parseIdent()
	}

	tok, ok := p.expect(token.StringLit, diag.SynExpectString, "expected import path")
	if !ok {
		return spec, false
	}
	spec.Path = p.arenas.Strings.Intern(unquote(tok.Text))
	spec.Span = spec.Span.Cover(tok.Span)
	return spec, true
}

func unquote(lit string) string {
	if s, err := strconv.Unquote(lit); err == nil {
		return s
	}
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}
	return lit
}

// parseGroup runs each once, or for every `;`-separated entry of a
// parenthesized group. The separator before `)` may be omitted.
func (p *Parser) parseGroup(each func() bool) (grouped, ok bool) {
	if !p.at(token.LParen) {
		return false, each()
	}
	p.advance()
	for !p.at(token.RParen) {
		if !each() {
			return true, false
		}
		if p.at(token.RParen) {
			break
		}
		if !p.expectSemi() {
			return true, false
		}
	}
	_, ok = p.expect(token.RParen, diag.SynExpectRParen, "expected ')' to close declaration group")
	return true, ok
}

// tagOrNone interns a trailing string literal, as used by struct tags.
func (p *Parser) tagOrNone() source.StringID {
	if !p.at(token.StringLit) {
		return source.NoStringID
	}
	return p.arenas.Strings.Intern(p.advance().Text)
}
