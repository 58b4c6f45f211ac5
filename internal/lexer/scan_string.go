package lexer

import (
	"g5/internal/diag"
	"g5/internal/token"
)

// scanRune scans 'x' or an escaped form such as '\n', '\x41', 'é'.
func (lx *Lexer) scanRune() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '

	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
		return lx.invalid(diag.LexUnterminatedRune, start, "rune literal not terminated")
	}
	switch lx.cursor.Peek() {
	case '\'':
		lx.cursor.Bump()
		return lx.invalid(diag.LexUnterminatedRune, start, "empty rune literal")
	case '\\':
		if !lx.scanEscape() {
			return lx.invalid(diag.LexBadEscape, start, "illegal escape sequence in rune literal")
		}
	default:
		lx.bumpRune()
	}

	if !lx.cursor.Eat('\'') {
		return lx.invalid(diag.LexUnterminatedRune, start, "rune literal not terminated")
	}
	return lx.emit(token.CharLit, start)
}

// scanEscape consumes a backslash escape inside a rune literal and reports
// whether it was well formed.
func (lx *Lexer) scanEscape() bool {
	lx.cursor.Bump() // backslash
	b := lx.cursor.Peek()
	switch b {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', '\'', '"':
		lx.cursor.Bump()
		return true
	case 'x':
		return lx.hexDigits(2)
	case 'u':
		return lx.hexDigits(4)
	case 'U':
		return lx.hexDigits(8)
	}
	if isOctal(b) {
		for i := 0; i < 3 && isOctal(lx.cursor.Peek()); i++ {
			lx.cursor.Bump()
		}
		return true
	}
	return false
}

func (lx *Lexer) hexDigits(n int) bool {
	lx.cursor.Bump() // x, u or U
	for i := 0; i < n; i++ {
		if !isHex(lx.cursor.Peek()) {
			return false
		}
		lx.cursor.Bump()
	}
	return true
}

// scanString scans an interpreted string. A backslash swallows the next
// character without validating it; a raw newline or end of input before
// the closing quote is an error.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // "
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			return lx.invalid(diag.LexUnterminatedString, start, "string literal not terminated")
		}
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				continue
			}
			lx.bumpRune()
		default:
			lx.bumpRune()
		}
	}
}

// scanRawString scans a backtick string, which may span lines.
func (lx *Lexer) scanRawString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // `
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '`' {
			return lx.emit(token.StringLit, start)
		}
	}
	return lx.invalid(diag.LexUnterminatedRawString, start, "raw string literal not terminated")
}
