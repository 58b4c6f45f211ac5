package fuzztests

import (
	"testing"

	"g5/internal/diag"
	"g5/internal/lexer"
	"g5/internal/source"
	"g5/internal/token"
)

const maxFuzzInput = 1 << 16

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.go", input))

		bag := diag.NewBag(4)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		// every byte yields at most one token plus the final semicolon
		limit := len(input) + 2
		for n := 0; ; n++ {
			if n > limit {
				t.Fatalf("lexer produced more than %d tokens for %d bytes", limit, len(input))
			}
			tok := lx.Next()
			if tok.Kind == token.EOF || lx.Err() != nil {
				break
			}
		}
		if lx.Err() == nil && bag.Len() != 0 {
			t.Fatalf("bag has %d diagnostics without a lexer error", bag.Len())
		}
	})
}
