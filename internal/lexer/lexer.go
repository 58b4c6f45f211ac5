// Package lexer turns a source file into tokens on demand. A Lexer is one
// scanning session: it owns its cursor, the last emitted kind used for
// semicolon insertion and the end-of-input latch, so sessions over
// different files never share state.
package lexer

import (
	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	last   token.Kind
	err    *diag.Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		last:   token.Invalid,
	}
}

// Next returns the next token. Once EOF has been returned every further call
// returns EOF again. After a lexical error the offending token is returned
// as Invalid and the stream ends.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.err != nil {
		return lx.eofToken()
	}
	tok := lx.scan()
	lx.last = tok.Kind
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// Err returns the first lexical error as a *diag.Error, or nil.
func (lx *Lexer) Err() error {
	if lx.err == nil {
		return nil
	}
	return lx.err
}

// All drains a fresh session over file, including the final EOF token.
func All(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.Invalid {
			return out, lx.Err()
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}

func (lx *Lexer) scan() token.Token {
	if tok, ok := lx.skipSpace(); ok {
		return tok
	}
	if lx.cursor.EOF() {
		if lx.last != token.Semicolon && lx.last != token.EOF {
			return token.Token{Kind: token.Semicolon, Span: lx.emptySpan()}
		}
		return lx.eofToken()
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanRune()
	case ch == '"':
		return lx.scanString()
	case ch == '`':
		return lx.scanRawString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) eofToken() token.Token {
	return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// invalid reports code over [start, cursor) and returns the Invalid token.
func (lx *Lexer) invalid(code diag.Code, start Mark, msg string) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.fail(code, tok.Span, msg)
	return tok
}
