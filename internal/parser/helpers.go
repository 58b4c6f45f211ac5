package parser

import (
	"fmt"
	"strconv"

	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes the next token and remembers its span.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan picks the span to blame for the next token. Insertion
// semicolons and EOF are reported right after the last real token.
func (p *Parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF || (tok.Kind == token.Semicolon && tok.Text == "") {
		if p.lastSpan.End > 0 {
			return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
		}
	}
	return tok.Span
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.fail(code, p.diagSpan(), fmt.Sprintf("%s, got %s", msg, describe(p.peek())))
	return token.Token{Kind: token.Invalid, Span: p.diagSpan()}, false
}

// expectSemi accepts an explicit or inserted semicolon.
func (p *Parser) expectSemi() bool {
	_, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' or newline")
	return ok
}

// errorf reports code at the next token.
func (p *Parser) errorf(code diag.Code, format string, args ...any) bool {
	return p.fail(code, p.diagSpan(), fmt.Sprintf(format, args...))
}

// fail records the first error and reports it. A pending lexical error
// always wins: the token that triggered the syntax error is its fallout.
// It returns false so productions can `return p.fail(...)`.
func (p *Parser) fail(code diag.Code, sp source.Span, msg string) bool {
	if p.failed != nil {
		return false
	}
	if lerr := p.lx.Err(); lerr != nil {
		p.failed = lerr
		return false
	}
	p.failed = &diag.Error{
		Code: code,
		Span: sp,
		Path: p.file.Path,
		Pos:  p.file.Position(sp.Start),
		Msg:  msg,
	}
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	}
	return false
}

// parseIdent expects an identifier and interns it.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.arenas.Strings.Intern(tok.Text), tok.Span, true
	}
	p.errorf(diag.SynExpectIdentifier, "expected identifier, got %s", describe(p.peek()))
	return source.NoStringID, source.Span{}, false
}

func (p *Parser) parseIdentList() ([]source.StringID, source.Span, bool) {
	name, sp, ok := p.parseIdent()
	if !ok {
		return nil, sp, false
	}
	names := []source.StringID{name}
	for p.at(token.Comma) {
		p.advance()
		name, nsp, ok := p.parseIdent()
		if !ok {
			return nil, sp, false
		}
		names = append(names, name)
		sp = sp.Cover(nsp)
	}
	return names, sp, true
}

// describe renders tok for "expected X, got Y" messages.
func describe(tok token.Token) string {
	switch {
	case tok.Kind == token.EOF, tok.Kind == token.Semicolon && tok.Text == "":
		return "EOF"
	case tok.Kind == token.Semicolon && tok.Text == "\n":
		return "newline"
	case tok.Kind == token.Ident:
		return "identifier " + strconv.Quote(tok.Text)
	case tok.IsLiteral():
		return "literal " + tok.Text
	case tok.IsKeyword():
		return "keyword '" + tok.Kind.String() + "'"
	}
	return "'" + tok.Kind.String() + "'"
}
