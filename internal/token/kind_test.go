package token_test

import (
	"testing"

	"g5/internal/token"
)

func TestKeywordTableIsComplete(t *testing.T) {
	words := []string{
		"break", "case", "chan", "const", "continue", "default", "defer", "else",
		"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
		"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
	}
	if len(words) != 25 {
		t.Fatalf("expected 25 reserved words, listed %d", len(words))
	}
	for _, w := range words {
		k, ok := token.LookupKeyword(w)
		if !ok || !k.IsKeyword() || k.String() != w {
			t.Errorf("LookupKeyword(%q) = %v,%v", w, k, ok)
		}
	}
	for _, w := range []string{"Func", "int", "nil", "true", "_"} {
		if _, ok := token.LookupKeyword(w); ok {
			t.Errorf("%q must not be a keyword", w)
		}
	}
}

func TestSemicolonTriggers(t *testing.T) {
	on := []token.Kind{
		token.Ident, token.IntLit, token.FloatLit, token.ImagLit, token.CharLit, token.StringLit,
		token.KwBreak, token.KwContinue, token.KwFallthrough, token.KwReturn,
		token.PlusPlus, token.MinusMinus, token.RParen, token.RBracket, token.RBrace,
	}
	for _, k := range on {
		if !k.TriggersSemicolon() {
			t.Errorf("%v should trigger a semicolon", k)
		}
	}
	off := []token.Kind{token.Plus, token.LBrace, token.Comma, token.KwFunc, token.Semicolon, token.Assign}
	for _, k := range off {
		if k.TriggersSemicolon() {
			t.Errorf("%v must not trigger a semicolon", k)
		}
	}
}

func TestOperatorClasses(t *testing.T) {
	for _, k := range []token.Kind{token.Assign, token.PlusAssign, token.ShlAssign, token.AmpCaretAssign} {
		if !k.IsAssignOp() {
			t.Errorf("%v should be an assignment operator", k)
		}
	}
	if token.ColonAssign.IsAssignOp() {
		t.Error(":= is a declaration, not an assignment operator")
	}
	for _, k := range []token.Kind{token.Arrow, token.Amp, token.Star, token.Caret} {
		if !k.IsUnaryOp() {
			t.Errorf("%v should be unary", k)
		}
	}
	if token.Arrow.IsBinaryOp() || !token.AmpCaret.IsBinaryOp() {
		t.Error("binary operator classification is wrong")
	}
	if !token.Colon.IsOperator() || token.Ident.IsOperator() {
		t.Error("operator range is wrong")
	}
}

func TestSynthetic(t *testing.T) {
	if !(token.Token{Kind: token.Semicolon, Text: "\n"}).IsSynthetic() {
		t.Error("newline semicolon is synthetic")
	}
	if !(token.Token{Kind: token.Semicolon}).IsSynthetic() {
		t.Error("end-of-input semicolon is synthetic")
	}
	if (token.Token{Kind: token.Semicolon, Text: ";"}).IsSynthetic() {
		t.Error("explicit semicolon is not synthetic")
	}
}
