package parser

import (
	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/token"
)

// parseIfStmt parses `if [Init ;] Cond Block [else (If | Block)]`.
func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	kw := p.advance()
	init, cond, ok := p.parseIfHeader()
	if !ok {
		return ast.NoStmtID, false
	}
	data := ast.StmtIfData{Init: init, Cond: cond}
	if data.Then, ok = p.parseBlock(); !ok {
		return ast.NoStmtID, false
	}
	if p.at(token.KwElse) {
		p.advance()
		switch p.peek().Kind {
		case token.KwIf:
			data.Else, ok = p.parseIfStmt()
		case token.LBrace:
			data.Else, ok = p.parseBlock()
		default:
			ok = p.errorf(diag.SynExpectLBrace, "expected if statement or block after else, got %s", describe(p.peek()))
		}
		if !ok {
			return ast.NoStmtID, false
		}
	}
	return p.arenas.Stmts.NewIf(kw.Span.Cover(p.lastSpan), data), true
}

func (p *Parser) parseIfHeader() (ast.StmtID, ast.ExprID, bool) {
	if p.at(token.LBrace) {
		return ast.NoStmtID, ast.NoExprID, p.errorf(diag.SynExpectExpression, "missing condition in if statement")
	}
	oldLev := p.exprLev
	p.exprLev = -1
	defer func() { p.exprLev = oldLev }()

	var (
		init, condStmt ast.StmtID
		ok             bool
	)
	if !p.at(token.Semicolon) {
		if init, _, ok = p.parseSimpleStmt(simpleBasic); !ok {
			return ast.NoStmtID, ast.NoExprID, false
		}
	}
	if p.at(token.Semicolon) {
		p.advance()
		if p.at(token.LBrace) {
			return ast.NoStmtID, ast.NoExprID, p.errorf(diag.SynExpectExpression, "missing condition in if statement")
		}
		if condStmt, _, ok = p.parseSimpleStmt(simpleBasic); !ok {
			return ast.NoStmtID, ast.NoExprID, false
		}
	} else {
		condStmt, init = init, ast.NoStmtID
	}
	cond, ok := p.stmtExpr(condStmt, "if condition")
	return init, cond, ok
}

// stmtExpr unwraps a statement that must have been a bare expression.
func (p *Parser) stmtExpr(stmt ast.StmtID, what string) (ast.ExprID, bool) {
	if es, ok := p.arenas.Stmts.Expr(stmt); ok {
		return es.X, true
	}
	sp := p.arenas.Stmts.Get(stmt).Span
	return ast.NoExprID, p.fail(diag.SynBadSimpleStmt, sp, "expected expression as "+what+", found "+p.arenas.Stmts.Get(stmt).Kind.String())
}

// parseSwitchStmt parses expression and type switches:
//
//	switch [Init ;] [Tag] { CaseClause... }
//	switch [Init ;] [Name :=] X.(type) { CaseClause... }
func (p *Parser) parseSwitchStmt() (ast.StmtID, bool) {
	kw := p.advance()
	init, tag, ok := p.parseSwitchHeader()
	if !ok {
		return ast.NoStmtID, false
	}

	bind, guard, isTypeSwitch := p.typeSwitchGuard(tag)
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after switch header"); !ok {
		return ast.NoStmtID, false
	}
	var clauses []ast.CaseClause
	seenDefault := false
	for p.at(token.KwCase) || p.at(token.KwDefault) {
		cc, ok := p.parseCaseClause(isTypeSwitch)
		if !ok {
			return ast.NoStmtID, false
		}
		if cc.Default {
			if seenDefault {
				return ast.NoStmtID, p.fail(diag.SynDuplicateDefault, cc.Span, "multiple defaults in switch")
			}
			seenDefault = true
		}
		clauses = append(clauses, cc)
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected 'case', 'default' or '}'"); !ok {
		return ast.NoStmtID, false
	}

	sp := kw.Span.Cover(p.lastSpan)
	if isTypeSwitch {
		return p.arenas.Stmts.NewTypeSwitch(sp, ast.StmtTypeSwitchData{
			Init:    init,
			Bind:    bind,
			Guard:   guard,
			Clauses: clauses,
		}), true
	}
	var tagExpr ast.ExprID
	if tag.IsValid() {
		if tagExpr, ok = p.stmtExpr(tag, "switch tag"); !ok {
			return ast.NoStmtID, false
		}
	}
	return p.arenas.Stmts.NewSwitch(sp, init, tagExpr, clauses), true
}

// parseSwitchHeader returns the optional init statement and the optional
// tag statement. Only the tag may hold a `.(type)` guard, and only as the
// whole statement.
func (p *Parser) parseSwitchHeader() (init, tag ast.StmtID, ok bool) {
	if p.at(token.LBrace) {
		return ast.NoStmtID, ast.NoStmtID, true
	}
	oldLev, oldGuardOK, oldGuards := p.exprLev, p.guardOK, p.guards
	p.exprLev, p.guardOK, p.guards = -1, true, 0
	defer func() { p.exprLev, p.guardOK, p.guards = oldLev, oldGuardOK, oldGuards }()

	if !p.at(token.Semicolon) {
		if tag, _, ok = p.parseSimpleStmt(simpleBasic); !ok {
			return ast.NoStmtID, ast.NoStmtID, false
		}
	}
	if p.at(token.Semicolon) {
		p.advance()
		if p.guards > 0 {
			return ast.NoStmtID, ast.NoStmtID, p.fail(diag.SynBadTypeSwitchGuard, p.guardSpan, "use of .(type) outside type switch")
		}
		init, tag = tag, ast.NoStmtID
		if !p.at(token.LBrace) {
			if tag, _, ok = p.parseSimpleStmt(simpleBasic); !ok {
				return ast.NoStmtID, ast.NoStmtID, false
			}
		}
	}
	if p.guards > 1 || (p.guards == 1 && !p.isGuardStmt(tag)) {
		return ast.NoStmtID, ast.NoStmtID, p.fail(diag.SynBadTypeSwitchGuard, p.guardSpan, "use of .(type) outside type switch")
	}
	return init, tag, true
}

// isGuardStmt reports whether stmt is `X.(type)` or `Name := X.(type)`.
func (p *Parser) isGuardStmt(stmt ast.StmtID) bool {
	_, _, ok := p.typeSwitchGuard(stmt)
	return ok
}

func (p *Parser) typeSwitchGuard(stmt ast.StmtID) (source.StringID, ast.ExprID, bool) {
	if !stmt.IsValid() {
		return source.NoStringID, ast.NoExprID, false
	}
	if es, ok := p.arenas.Stmts.Expr(stmt); ok {
		if _, isGuard := p.arenas.Exprs.TypeSwitchGuard(es.X); isGuard {
			return source.NoStringID, es.X, true
		}
	}
	if sv, ok := p.arenas.Stmts.ShortVarDecl(stmt); ok && len(sv.Names) == 1 && len(sv.Values) == 1 {
		if _, isGuard := p.arenas.Exprs.TypeSwitchGuard(sv.Values[0]); isGuard {
			return sv.Names[0], sv.Values[0], true
		}
	}
	return source.NoStringID, ast.NoExprID, false
}

// parseCaseClause parses `case List :` or `default :` and the statements
// that follow. Type switch cases list types.
func (p *Parser) parseCaseClause(typeSwitch bool) (ast.CaseClause, bool) {
	kw := p.advance()
	cc := ast.CaseClause{Default: kw.Kind == token.KwDefault}
	if !cc.Default {
		var ok bool
		if typeSwitch {
			cc.List, ok = p.parseTypeList()
		} else {
			cc.List, ok = p.parseExprList()
		}
		if !ok {
			return cc, false
		}
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after case"); !ok {
		return cc, false
	}
	cc.Span = kw.Span.Cover(p.lastSpan)
	body, ok := p.parseStmtList()
	if !ok {
		return cc, false
	}
	cc.Body = body
	cc.Span = cc.Span.Cover(p.lastSpan)
	return cc, true
}

// parseTypeList parses types in expression position, wrapping each as a
// type operand.
func (p *Parser) parseTypeList() ([]ast.ExprID, bool) {
	var list []ast.ExprID
	for {
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		list = append(list, p.arenas.Exprs.NewTypeOperand(p.arenas.Types.Get(typ).Span, typ))
		if !p.at(token.Comma) {
			return list, true
		}
		p.advance()
	}
}

// parseSelectStmt parses `select { CommClause... }`.
func (p *Parser) parseSelectStmt() (ast.StmtID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after select"); !ok {
		return ast.NoStmtID, false
	}
	var clauses []ast.CommClause
	seenDefault := false
	for p.at(token.KwCase) || p.at(token.KwDefault) {
		ck := p.advance()
		cc := ast.CommClause{}
		if ck.Kind == token.KwDefault {
			if seenDefault {
				return ast.NoStmtID, p.fail(diag.SynDuplicateDefault, ck.Span, "multiple defaults in select")
			}
			seenDefault = true
		} else {
			comm, _, ok := p.parseSimpleStmt(simpleBasic)
			if !ok {
				return ast.NoStmtID, false
			}
			cc.Comm = comm
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after select case"); !ok {
			return ast.NoStmtID, false
		}
		body, ok := p.parseStmtList()
		if !ok {
			return ast.NoStmtID, false
		}
		cc.Body = body
		cc.Span = ck.Span.Cover(p.lastSpan)
		clauses = append(clauses, cc)
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected 'case', 'default' or '}'"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewSelect(kw.Span.Cover(p.lastSpan), clauses), true
}

// parseForStmt parses the loop forms
//
//	for { }
//	for Cond { }
//	for [Init] ; [Cond] ; [Post] { }
//	for [Key [, Value] (:= | =)] range X { }
func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	kw := p.advance()
	var (
		s1, s2, s3 ast.StmtID
		rh         *rangeHeader
		ok         bool
	)
	oldLev := p.exprLev
	p.exprLev = -1
	if !p.at(token.LBrace) {
		switch {
		case p.at(token.KwRange):
			p.advance()
			x, ok := p.parseExpr()
			if !ok {
				return ast.NoStmtID, false
			}
			rh = &rangeHeader{x: x}
		case !p.at(token.Semicolon):
			if s2, rh, ok = p.parseSimpleStmt(simpleRangeOK); !ok {
				return ast.NoStmtID, false
			}
		}
		if rh == nil && p.at(token.Semicolon) {
			p.advance()
			s1, s2 = s2, ast.NoStmtID
			if !p.at(token.Semicolon) {
				if s2, _, ok = p.parseSimpleStmt(simpleBasic); !ok {
					return ast.NoStmtID, false
				}
			}
			if !p.expectSemi() {
				return ast.NoStmtID, false
			}
			if !p.at(token.LBrace) {
				if s3, _, ok = p.parseSimpleStmt(simpleBasic); !ok {
					return ast.NoStmtID, false
				}
			}
		}
	}
	p.exprLev = oldLev

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	sp := kw.Span.Cover(p.lastSpan)

	if rh != nil {
		return p.arenas.Stmts.NewRange(sp, ast.StmtRangeData{
			Key:    rh.key,
			Value:  rh.value,
			Define: rh.define,
			X:      rh.x,
			Body:   body,
		}), true
	}
	data := ast.StmtForData{Init: s1, Post: s3, Body: body}
	if s2.IsValid() {
		if data.Cond, ok = p.stmtExpr(s2, "for condition"); !ok {
			return ast.NoStmtID, false
		}
	}
	return p.arenas.Stmts.NewFor(sp, data), true
}
