package lexer

import (
	"g5/internal/diag"
	"g5/internal/token"
)

// scanIdentOrKeyword scans a letter/digit/underscore run and classifies it
// with token.LookupKeyword.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	r, _ := lx.peekRune()
	if !isIdentStartRune(r) {
		lx.bumpRune()
		return lx.invalid(diag.LexIllegalChar, start, "illegal character")
	}
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}
	tok := lx.emit(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}
