package token

import (
	"g5/internal/source"
)

// Token is a single lexeme together with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a basic literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsSynthetic reports whether the token was produced by semicolon insertion.
func (t Token) IsSynthetic() bool {
	return t.Kind == Semicolon && t.Text != ";"
}
