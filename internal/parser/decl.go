package parser

import (
	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/token"
)

// parseValueDecl parses a const or var declaration.
func (p *Parser) parseValueDecl() (ast.ItemID, bool) {
	kw := p.advance()
	kind := ast.ItemVar
	if kw.Kind == token.KwConst {
		kind = ast.ItemConst
	}

	var specs []ast.ValueSpec
	grouped, ok := p.parseGroup(func() bool {
		spec, ok := p.parseValueSpec(kind, len(specs) > 0)
		specs = append(specs, spec)
		return ok
	})
	if !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewValue(kind, kw.Span.Cover(p.lastSpan), specs, grouped), true
}

// parseValueSpec parses `IdentList [Type] [= ExprList]`. Inside a const
// group every spec after the first may repeat the previous one by listing
// names only.
func (p *Parser) parseValueSpec(kind ast.ItemKind, repeatOK bool) (ast.ValueSpec, bool) {
	names, sp, ok := p.parseIdentList()
	if !ok {
		return ast.ValueSpec{}, false
	}
	spec := ast.ValueSpec{Names: names, Span: sp}

	if !p.at(token.Assign) && !p.at(token.Semicolon) && !p.at(token.RParen) {
		if spec.Type, ok = p.parseType(); !ok {
			return spec, false
		}
	}
	if p.at(token.Assign) {
		p.advance()
		if spec.Values, ok = p.parseExprList(); !ok {
			return spec, false
		}
	}

	switch {
	case kind == ast.ItemVar && !spec.Type.IsValid() && len(spec.Values) == 0:
		return spec, p.errorf(diag.SynExpectType, "expected type or '=' in var declaration, got %s", describe(p.peek()))
	case kind == ast.ItemConst && len(spec.Values) == 0 && (!repeatOK || spec.Type.IsValid()):
		return spec, p.errorf(diag.SynExpectExpression, "missing constant value, got %s", describe(p.peek()))
	}
	spec.Span = spec.Span.Cover(p.lastSpan)
	return spec, true
}

// parseTypeDecl parses `type Name Type`, `type Name = Type` or a group.
func (p *Parser) parseTypeDecl() (ast.ItemID, bool) {
	kw := p.advance()
	var specs []ast.TypeSpec
	grouped, ok := p.parseGroup(func() bool {
		name, sp, ok := p.parseIdent()
		if !ok {
			return false
		}
		spec := ast.TypeSpec{Name: name}
		if p.at(token.Assign) {
			p.advance()
			spec.Alias = true
		}
		if spec.Type, ok = p.parseType(); !ok {
			return false
		}
		spec.Span = sp.Cover(p.lastSpan)
		specs = append(specs, spec)
		return true
	})
	if !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewTypeDecl(kw.Span.Cover(p.lastSpan), specs, grouped), true
}
