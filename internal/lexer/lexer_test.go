package lexer_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"g5/internal/diag"
	"g5/internal/lexer"
	"g5/internal/source"
	"g5/internal/token"
)

func TestSemicolonInsertionTriggers(t *testing.T) {
	triggers := map[string]token.Kind{
		"x":           token.Ident,
		"42":          token.IntLit,
		"4.2":         token.FloatLit,
		"4i":          token.ImagLit,
		"'a'":         token.CharLit,
		`"s"`:         token.StringLit,
		"`r`":         token.StringLit,
		"break":       token.KwBreak,
		"continue":    token.KwContinue,
		"fallthrough": token.KwFallthrough,
		"return":      token.KwReturn,
		"x++":         token.PlusPlus,
		"x--":         token.MinusMinus,
		"()":          token.RParen,
		"[]":          token.RBracket,
		"{}":          token.RBrace,
	}
	for src, last := range triggers {
		toks := lexAll(t, src+"\n")
		n := len(toks)
		if n < 3 || toks[n-3].Kind != last {
			t.Fatalf("%q: unexpected stream %v", src, kinds(toks))
		}
		semi := toks[n-2]
		if semi.Kind != token.Semicolon || semi.Text != "\n" {
			t.Errorf("%q: newline produced %v %q, want inserted ';'", src, semi.Kind, semi.Text)
		}
		if toks[n-1].Kind != token.EOF {
			t.Errorf("%q: expected exactly one ';' before EOF, got %v", src, kinds(toks))
		}
	}
}

func TestNewlineSkippedAfterNonTriggers(t *testing.T) {
	for _, src := range []string{"x +\ny", "f(\nx)", "a,\nb", "x =\n1", "if\nx"} {
		for _, tok := range lexAll(t, src) {
			if tok.Kind == token.Semicolon && tok.Text == "\n" {
				t.Errorf("%q: unexpected inserted semicolon at %v", src, tok.Span)
			}
		}
	}
}

func TestSemicolonAtEndOfInput(t *testing.T) {
	expectKinds(t, "x", token.Ident, token.Semicolon, token.EOF)
	expectKinds(t, "x;", token.Ident, token.Semicolon, token.EOF)
	expectKinds(t, "x\n", token.Ident, token.Semicolon, token.EOF)
	expectKinds(t, "x +", token.Ident, token.Plus, token.Semicolon, token.EOF)

	toks := lexAll(t, "x")
	if toks[1].Text != "" || !toks[1].IsSynthetic() {
		t.Errorf("end-of-input semicolon should be synthetic with empty text, got %q", toks[1].Text)
	}
}

func TestCommentsDoNotAffectInsertion(t *testing.T) {
	expectKinds(t, "x // trailing\ny",
		token.Ident, token.Semicolon, token.Ident, token.Semicolon, token.EOF)
	expectKinds(t, "x + // trailing\ny",
		token.Ident, token.Plus, token.Ident, token.Semicolon, token.EOF)
	expectKinds(t, "a /* one\ntwo */ b",
		token.Ident, token.Ident, token.Semicolon, token.EOF)
	expectKinds(t, "/* only */", token.Semicolon, token.EOF)
}

func TestBlockCommentAdvancesLines(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.go", []byte("/* a\nb\n*/ x"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	tok := lx.Next()
	start, _ := fs.Resolve(tok.Span)
	if tok.Kind != token.Ident || start.Line != 3 || start.Col != 4 {
		t.Errorf("got %v at %+v, want IDENT at 3:4", tok.Kind, start)
	}
}

func TestMaximalMunch(t *testing.T) {
	expectKinds(t, "<<=", token.ShlAssign, token.Semicolon, token.EOF)
	expectKinds(t, ">>=", token.ShrAssign, token.Semicolon, token.EOF)
	expectKinds(t, "&^=", token.AmpCaretAssign, token.Semicolon, token.EOF)
	expectKinds(t, "&^", token.AmpCaret, token.Semicolon, token.EOF)
	expectKinds(t, "<-<=<<<", token.Arrow, token.LtEq, token.Shl, token.Lt, token.Semicolon, token.EOF)
	expectKinds(t, "x:=y", token.Ident, token.ColonAssign, token.Ident, token.Semicolon, token.EOF)
	expectKinds(t, "a&&b||!c", token.Ident, token.AndAnd, token.Ident, token.OrOr, token.Bang, token.Ident, token.Semicolon, token.EOF)
	expectKinds(t, "f(xs...)", token.Ident, token.LParen, token.Ident, token.Ellipsis, token.RParen, token.Semicolon, token.EOF)
	expectKinds(t, "a /= b", token.Ident, token.SlashAssign, token.Ident, token.Semicolon, token.EOF)
}

func TestNumericClassification(t *testing.T) {
	cases := map[string]token.Kind{
		"0x1F":  token.IntLit,
		"0XaB":  token.IntLit,
		"0755":  token.IntLit,
		"0":     token.IntLit,
		"42":    token.IntLit,
		"3.14":  token.FloatLit,
		"1e10":  token.FloatLit,
		"1E-3":  token.FloatLit,
		"6.":    token.FloatLit,
		".5":    token.FloatLit,
		"1e":    token.FloatLit,
		"09.5":  token.FloatLit,
		"2i":    token.ImagLit,
		"1.5i":  token.ImagLit,
		"1e3i":  token.ImagLit,
		".25i":  token.ImagLit,
	}
	for src, want := range cases {
		toks := lexAll(t, src)
		if toks[0].Kind != want || toks[0].Text != src {
			t.Errorf("%q: got %v %q, want %v", src, toks[0].Kind, toks[0].Text, want)
		}
	}
}

func TestDotVersusFloat(t *testing.T) {
	expectKinds(t, "a.b", token.Ident, token.Dot, token.Ident, token.Semicolon, token.EOF)
	expectKinds(t, "a.5", token.Ident, token.FloatLit, token.Semicolon, token.EOF)
	expectKinds(t, "[...]", token.LBracket, token.Ellipsis, token.RBracket, token.Semicolon, token.EOF)
}

func TestLexemeRoundTrip(t *testing.T) {
	src := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tx := []int{0x1F, 0755, 3}\n\ty := 1.5i + 'a' + '\\n'\n\ts := `raw\nline` + \"q\\\"uote\"\n\tx[1:2:3] <<= 2 &^ y\n}\n"
	fs := source.NewFileSet()
	id := fs.AddVirtual("rt.go", []byte(src))
	f := fs.Get(id)
	toks, err := lexer.All(f, lexer.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tok := range toks {
		if tok.Kind == token.EOF || (tok.IsSynthetic() && tok.Text == "") {
			continue
		}
		if want := string(f.Content[tok.Span.Start:tok.Span.End]); tok.Text != want {
			t.Errorf("%v: text %q does not match source %q", tok.Kind, tok.Text, want)
		}
	}
}

func TestLoadedFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.go")
	raw := "\xEF\xBB\xBFpackage p\r\n\nvar s = `one\r\ntwo`\r\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if f.Flags&source.FileHadBOM == 0 || f.Flags&source.FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %v, want BOM and CRLF recorded", f.Flags)
	}
	toks, err := lexer.All(f, lexer.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rawLit string
	for _, tok := range toks {
		if tok.Kind == token.EOF || (tok.IsSynthetic() && tok.Text == "") {
			continue
		}
		if want := string(f.Content[tok.Span.Start:tok.Span.End]); tok.Text != want {
			t.Errorf("%v: text %q does not match content %q", tok.Kind, tok.Text, want)
		}
		if tok.Kind == token.StringLit {
			rawLit = tok.Text
		}
	}
	if rawLit != "`one\ntwo`" || strings.Contains(string(f.Content), "\r") {
		t.Errorf("raw literal %q read from normalized content %q", rawLit, f.Content)
	}
	if toks[0].Span.Start != 0 {
		t.Errorf("first token starts at %d after BOM removal", toks[0].Span.Start)
	}
}

func TestRuneLiterals(t *testing.T) {
	for _, src := range []string{`'a'`, `'\n'`, `'\\'`, `'\''`, `'\x41'`, `'\u00e9'`, `'\U0001F600'`, `'\101'`, `'\0'`, `'é'`} {
		toks := lexAll(t, src)
		if toks[0].Kind != token.CharLit || toks[0].Text != src {
			t.Errorf("%s: got %v %q", src, toks[0].Kind, toks[0].Text)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	for _, src := range []string{`""`, `"abc"`, `"a\"b"`, `"\q is not validated"`, "`multi\nline`"} {
		toks := lexAll(t, src)
		if toks[0].Kind != token.StringLit || toks[0].Text != src {
			t.Errorf("%q: got %v %q", src, toks[0].Kind, toks[0].Text)
		}
	}
}

func TestLexicalErrors(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{`x := "abc`, diag.LexUnterminatedString},
		{"\"abc\nd\"", diag.LexUnterminatedString},
		{"`abc", diag.LexUnterminatedRawString},
		{"'a", diag.LexUnterminatedRune},
		{"'ab'", diag.LexUnterminatedRune},
		{"''", diag.LexUnterminatedRune},
		{`'\q'`, diag.LexBadEscape},
		{`'\x4'`, diag.LexBadEscape},
		{"f(a..)", diag.LexBadEllipsis},
		{"x @ y", diag.LexIllegalChar},
		{"a # b", diag.LexIllegalChar},
		{"/* open", diag.LexUnterminatedComment},
		{"0x", diag.LexBadNumber},
		{"09", diag.LexBadNumber},
	}
	for _, tc := range cases {
		expectError(t, tc.src, tc.code)
	}
}

func TestUnterminatedStringIsNotTruncated(t *testing.T) {
	toks := lexAll(t, "s := \"abc\n")
	last := toks[len(toks)-1]
	if last.Kind != token.Invalid || last.Text != "\"abc" {
		t.Fatalf("got %v %q, want Invalid \"abc", last.Kind, last.Text)
	}
}

func TestIdempotentEOF(t *testing.T) {
	lx, _ := newLexer("x")
	for lx.Next().Kind != token.EOF {
	}
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d after EOF returned %v", i, tok.Kind)
		}
	}
}

func TestStreamEndsAfterError(t *testing.T) {
	lx, bag := newLexer("a $ b c")
	expect := []token.Kind{token.Ident, token.Invalid, token.EOF, token.EOF}
	for i, k := range expect {
		if got := lx.Next().Kind; got != k {
			t.Fatalf("token %d: got %v, want %v", i, got, k)
		}
	}
	if bag.Len() != 1 {
		t.Errorf("expected one diagnostic, got %d", bag.Len())
	}
	var de *diag.Error
	if !errors.As(lx.Err(), &de) || de.Pos.Col != 3 {
		t.Errorf("Err() = %v", lx.Err())
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := newLexer("a b")
	if lx.Peek().Text != "a" || lx.Peek().Text != "a" {
		t.Fatal("Peek must be stable")
	}
	if lx.Next().Text != "a" || lx.Next().Text != "b" {
		t.Fatal("Next after Peek returned the wrong tokens")
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	expectKinds(t, "func funcs _ chan interface",
		token.KwFunc, token.Ident, token.Ident, token.KwChan, token.KwInterface, token.Semicolon, token.EOF)
	expectKinds(t, "héllo", token.Ident, token.Semicolon, token.EOF)
}

func TestSessionsAreIndependent(t *testing.T) {
	a, _ := newLexer("x\n")
	b, _ := newLexer("+\n")
	a.Next()
	b.Next()
	if tok := a.Next(); tok.Kind != token.Semicolon {
		t.Errorf("session a lost its state: %v", tok.Kind)
	}
	if tok := b.Next(); tok.Kind != token.Semicolon || tok.Text != "" {
		t.Errorf("session b inherited state: %v %q", tok.Kind, tok.Text)
	}
}
