package lexer_test

import (
	"testing"

	"g5/internal/diag"
	"g5/internal/lexer"
	"g5/internal/source"
	"g5/internal/token"
)

func newLexer(src string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.go", []byte(src))
	bag := diag.NewBag(0)
	return lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

// lexAll collects tokens up to and including EOF or the first Invalid.
func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	lx, _ := newLexer(src)
	var out []token.Token
	for i := 0; i < 10000; i++ {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			return out
		}
	}
	t.Fatalf("lexer did not terminate on %q", src)
	return nil
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func expectKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	got := kinds(lexAll(t, src))
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v (all: %v)", src, i, got[i], want[i], got)
		}
	}
}

// expectError lexes src and checks that the first diagnostic has code.
func expectError(t *testing.T, src string, code diag.Code) {
	t.Helper()
	lx, bag := newLexer(src)
	for i := 0; i < 10000; i++ {
		if tok := lx.Next(); tok.Kind == token.EOF || tok.Kind == token.Invalid {
			break
		}
	}
	d, ok := bag.First()
	if !ok {
		t.Fatalf("%q: expected %s, got no diagnostics", src, code.ID())
	}
	if d.Code != code {
		t.Fatalf("%q: got %s (%s), want %s", src, d.Code.ID(), d.Message, code.ID())
	}
	if lx.Err() == nil {
		t.Fatalf("%q: Err() is nil after a lexical error", src)
	}
}
