package lexer

import (
	"g5/internal/diag"
	"g5/internal/token"
)

// scanNumber classifies a numeric literal while consuming it. Once a float
// indicator ('.', exponent) has been seen the kind never goes back to
// IntLit; a trailing 'i' upgrades to ImagLit and ends the literal.
//
//	0x1F -> IntLit   0755 -> IntLit   3.14, 1e10, .5 -> FloatLit   2i, 1.5i -> ImagLit
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Off += 2
		digits := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		if digits == 0 {
			return lx.invalid(diag.LexBadNumber, start, "hexadecimal literal has no digits")
		}
		return lx.emit(token.IntLit, start)
	}

	leadingZero := lx.cursor.Peek() == '0'
	badOctal := false
	for isDec(lx.cursor.Peek()) {
		if !isOctal(lx.cursor.Bump()) {
			badOctal = true
		}
	}
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if lx.cursor.Eat('i') {
		return lx.emit(token.ImagLit, start)
	}
	if kind == token.IntLit && leadingZero && badOctal {
		return lx.invalid(diag.LexBadNumber, start, "invalid digit in octal literal")
	}
	return lx.emit(kind, start)
}
