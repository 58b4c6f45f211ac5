package parser

import (
	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/token"
)

type simpleMode uint8

const (
	simpleBasic simpleMode = iota
	simpleLabelOK
	simpleRangeOK
)

// rangeHeader is the `[Key [, Value] (:=|=)] range X` part of a for loop.
type rangeHeader struct {
	key    ast.ExprID
	value  ast.ExprID
	define bool
	x      ast.ExprID
}

// parseBlock parses `{ StmtList }`. Header state of an enclosing control
// clause does not leak into the block.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	lbrace, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}
	oldLev, oldGuardOK, oldGuards := p.exprLev, p.guardOK, p.guards
	p.exprLev, p.guardOK = 0, false
	defer func() { p.exprLev, p.guardOK, p.guards = oldLev, oldGuardOK, oldGuards }()

	stmts, ok := p.parseStmtList()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close block"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewBlock(lbrace.Span.Cover(p.lastSpan), stmts), true
}

// parseStmtList parses statements up to `}` or the next case clause.
// Statements are separated by `;`; the one before `}` may be omitted.
func (p *Parser) parseStmtList() ([]ast.StmtID, bool) {
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.KwCase) && !p.at(token.KwDefault) && !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		stmts = append(stmts, stmt)
		if p.at(token.RBrace) {
			break
		}
		if !p.expectSemi() {
			return nil, false
		}
	}
	return stmts, true
}

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwConst, token.KwVar, token.KwType:
		var (
			item ast.ItemID
			ok   bool
		)
		if tok.Kind == token.KwType {
			item, ok = p.parseTypeDecl()
		} else {
			item, ok = p.parseValueDecl()
		}
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewDecl(p.arenas.Items.Get(item).Span, item), true

	case token.KwGo, token.KwDefer:
		return p.parseCallStmt()

	case token.KwReturn:
		p.advance()
		var results []ast.ExprID
		if !p.at(token.Semicolon) && !p.at(token.RBrace) {
			var ok bool
			if results, ok = p.parseExprList(); !ok {
				return ast.NoStmtID, false
			}
		}
		return p.arenas.Stmts.NewReturn(tok.Span.Cover(p.lastSpan), results), true

	case token.KwBreak, token.KwContinue, token.KwGoto:
		return p.parseBranchStmt()

	case token.KwFallthrough:
		p.advance()
		return p.arenas.Stmts.NewBare(ast.StmtFallthrough, tok.Span), true

	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwSwitch:
		return p.parseSwitchStmt()
	case token.KwSelect:
		return p.parseSelectStmt()
	case token.KwFor:
		return p.parseForStmt()

	case token.Semicolon:
		return p.arenas.Stmts.NewBare(ast.StmtEmpty, source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start}), true
	}

	stmt, _, ok := p.parseSimpleStmt(simpleLabelOK)
	return stmt, ok
}

// parseCallStmt parses `go Call` and `defer Call`.
func (p *Parser) parseCallStmt() (ast.StmtID, bool) {
	kw := p.advance()
	call, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if p.arenas.Exprs.Get(call).Kind != ast.ExprCall {
		return ast.NoStmtID, p.fail(diag.SynExpectExpression, p.exprSpan(call), "expression in "+kw.Kind.String()+" must be function call")
	}
	kind := ast.StmtGo
	if kw.Kind == token.KwDefer {
		kind = ast.StmtDefer
	}
	return p.arenas.Stmts.NewCallStmt(kind, kw.Span.Cover(p.lastSpan), call), true
}

func (p *Parser) parseBranchStmt() (ast.StmtID, bool) {
	kw := p.advance()
	var (
		label source.StringID
		ok    bool
	)
	if kw.Kind == token.KwGoto || p.at(token.Ident) {
		if label, _, ok = p.parseIdent(); !ok {
			return ast.NoStmtID, false
		}
	}
	kind := ast.StmtBreak
	switch kw.Kind {
	case token.KwContinue:
		kind = ast.StmtContinue
	case token.KwGoto:
		kind = ast.StmtGoto
	}
	return p.arenas.Stmts.NewBranch(kind, kw.Span.Cover(p.lastSpan), label), true
}

// parseSimpleStmt parses expression, send, inc/dec, assignment and short
// variable declaration statements. With simpleLabelOK a lone identifier
// followed by ':' starts a labeled statement; with simpleRangeOK an
// assignment whose right side is `range X` yields a rangeHeader instead of
// a statement.
func (p *Parser) parseSimpleStmt(mode simpleMode) (ast.StmtID, *rangeHeader, bool) {
	lhs, ok := p.parseExprList()
	if !ok {
		return ast.NoStmtID, nil, false
	}
	start := p.exprSpan(lhs[0])

	if op := p.peek().Kind; op == token.ColonAssign || op.IsAssignOp() {
		p.advance()
		if mode == simpleRangeOK && p.at(token.KwRange) && (op == token.Assign || op == token.ColonAssign) {
			return p.parseRangeHeader(lhs, op == token.ColonAssign)
		}
		rhs, ok := p.parseExprList()
		if !ok {
			return ast.NoStmtID, nil, false
		}
		sp := start.Cover(p.lastSpan)
		if op != token.ColonAssign {
			return p.arenas.Stmts.NewAssign(sp, op, lhs, rhs), nil, true
		}
		names, ok := p.identNames(lhs)
		if !ok {
			return ast.NoStmtID, nil, false
		}
		return p.arenas.Stmts.NewShortVarDecl(sp, names, rhs), nil, true
	}

	if len(lhs) > 1 {
		return ast.NoStmtID, nil, p.errorf(diag.SynBadSimpleStmt, "expected 1 expression, got %d before %s", len(lhs), describe(p.peek()))
	}
	x := lhs[0]

	switch p.peek().Kind {
	case token.Colon:
		label, isIdent := p.arenas.Exprs.Ident(x)
		if mode != simpleLabelOK || !isIdent {
			break
		}
		p.advance()
		var (
			stmt ast.StmtID
			ok   bool
		)
		if p.at(token.RBrace) {
			stmt = p.arenas.Stmts.NewBare(ast.StmtEmpty, source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End})
		} else if stmt, ok = p.parseStmt(); !ok {
			return ast.NoStmtID, nil, false
		}
		return p.arenas.Stmts.NewLabeled(start.Cover(p.lastSpan), label.Name, stmt), nil, true

	case token.Arrow:
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, nil, false
		}
		return p.arenas.Stmts.NewSend(start.Cover(p.lastSpan), x, value), nil, true

	case token.PlusPlus, token.MinusMinus:
		op := p.advance()
		return p.arenas.Stmts.NewIncDec(start.Cover(op.Span), x, op.Kind), nil, true
	}

	return p.arenas.Stmts.NewExpr(start, x), nil, true
}

// identNames checks that every left-hand side of := is an identifier.
func (p *Parser) identNames(lhs []ast.ExprID) ([]source.StringID, bool) {
	names := make([]source.StringID, 0, len(lhs))
	for _, x := range lhs {
		id, ok := p.arenas.Exprs.Ident(x)
		if !ok {
			return nil, p.fail(diag.SynBadShortVarDecl, p.exprSpan(x), "non-name on left side of :=")
		}
		names = append(names, id.Name)
	}
	return names, true
}

func (p *Parser) parseRangeHeader(lhs []ast.ExprID, define bool) (ast.StmtID, *rangeHeader, bool) {
	p.advance() // range
	if len(lhs) > 2 {
		return ast.NoStmtID, nil, p.fail(diag.SynBadSimpleStmt, p.exprSpan(lhs[2]), "range clause permits at most two iteration variables")
	}
	if define {
		if _, ok := p.identNames(lhs); !ok {
			return ast.NoStmtID, nil, false
		}
	}
	x, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, nil, false
	}
	rh := &rangeHeader{key: lhs[0], define: define, x: x}
	if len(lhs) == 2 {
		rh.value = lhs[1]
	}
	return ast.NoStmtID, rh, true
}
