package parser

import "g5/internal/token"

// Binary operator precedence, used in BinaryPrecedence mode.
// Higher binds tighter; all levels are left-associative.
const (
	precNone           = 0
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precComparison     = 3 // == != < <= > >=
	precAdditive       = 4 // + - | ^
	precMultiplicative = 5 // * / % << >> & &^
)

func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.OrOr:
		return precLogicalOr
	case token.AndAnd:
		return precLogicalAnd
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison
	case token.Plus, token.Minus, token.Pipe, token.Caret:
		return precAdditive
	case token.Star, token.Slash, token.Percent, token.Shl, token.Shr, token.Amp, token.AmpCaret:
		return precMultiplicative
	}
	return precNone
}
