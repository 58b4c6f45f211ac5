package lexer

import (
	"g5/internal/diag"
	"g5/internal/token"
)

// skipSpace discards whitespace and comments. A newline following a token
// in the semicolon-trigger set is returned as a synthetic semicolon
// instead. Comments leave lx.last untouched.
func (lx *Lexer) skipSpace() (token.Token, bool) {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t' || b == '\r':
			lx.cursor.Bump()
		case b == '\n':
			lx.cursor.Bump()
			if lx.last.TriggersSemicolon() {
				return lx.emit(token.Semicolon, start), true
			}
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed := false
			for !lx.cursor.EOF() {
				if lx.cursor.Bump() == '*' && lx.cursor.Eat('/') {
					closed = true
					break
				}
			}
			if !closed {
				return lx.invalid(diag.LexUnterminatedComment, start, "comment not terminated"), true
			}
		default:
			return token.Token{}, false
		}
	}
	return token.Token{}, false
}
