package lexer

import (
	"g5/internal/diag"
	"g5/internal/token"
)

// scanOperatorOrPunct resolves operators by maximal munch: three-byte forms
// first, then two-byte, then single bytes. Comments were already consumed
// by skipSpace, so '/' here is always division.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('<', '<', '='):
		return lx.emit(token.ShlAssign, start)
	case lx.try3('>', '>', '='):
		return lx.emit(token.ShrAssign, start)
	case lx.try3('&', '^', '='):
		return lx.emit(token.AmpCaretAssign, start)
	case lx.try3('.', '.', '.'):
		return lx.emit(token.Ellipsis, start)
	case lx.try2('.', '.'):
		return lx.invalid(diag.LexBadEllipsis, start, "expected '...', found '..'")
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok {
		if k, ok := twoByteOps[[2]byte{b0, b1}]; ok {
			lx.cursor.Off += 2
			return lx.emit(k, start)
		}
	}

	r, _ := lx.peekRune()
	if r < utf8RuneSelf {
		if k, ok := oneByteOps[byte(r)]; ok {
			lx.cursor.Bump()
			return lx.emit(k, start)
		}
	}
	lx.bumpRune()
	return lx.invalid(diag.LexIllegalChar, start, "illegal character")
}

var twoByteOps = map[[2]byte]token.Kind{
	{'&', '^'}: token.AmpCaret,
	{'+', '='}: token.PlusAssign,
	{'-', '='}: token.MinusAssign,
	{'*', '='}: token.StarAssign,
	{'/', '='}: token.SlashAssign,
	{'%', '='}: token.PercentAssign,
	{'&', '='}: token.AmpAssign,
	{'|', '='}: token.PipeAssign,
	{'^', '='}: token.CaretAssign,
	{'<', '<'}: token.Shl,
	{'>', '>'}: token.Shr,
	{'&', '&'}: token.AndAnd,
	{'|', '|'}: token.OrOr,
	{'<', '-'}: token.Arrow,
	{'+', '+'}: token.PlusPlus,
	{'-', '-'}: token.MinusMinus,
	{'=', '='}: token.EqEq,
	{'!', '='}: token.BangEq,
	{'<', '='}: token.LtEq,
	{'>', '='}: token.GtEq,
	{':', '='}: token.ColonAssign,
}

var oneByteOps = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'&': token.Amp,
	'|': token.Pipe,
	'^': token.Caret,
	'<': token.Lt,
	'>': token.Gt,
	'=': token.Assign,
	'!': token.Bang,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	';': token.Semicolon,
	'.': token.Dot,
	':': token.Colon,
}
