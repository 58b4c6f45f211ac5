package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"g5/internal/source"
	"g5/internal/token"
)

// TokenFormat selects the token dump encoding.
type TokenFormat uint8

const (
	TokensPretty TokenFormat = iota
	TokensJSON
	TokensMsgpack
)

func ParseTokenFormat(s string) (TokenFormat, error) {
	switch strings.ToLower(s) {
	case "", "pretty":
		return TokensPretty, nil
	case "json":
		return TokensJSON, nil
	case "msgpack", "mp":
		return TokensMsgpack, nil
	}
	return TokensPretty, fmt.Errorf("unknown token format %q (expected: pretty|json|msgpack)", s)
}

// TokenOutput is the serialized form of one token.
type TokenOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text,omitempty"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Line  uint32 `json:"line" msgpack:"line"`
	Col   uint32 `json:"col" msgpack:"col"`
	// Synthetic marks a semicolon inserted at a newline or end of input.
	Synthetic bool `json:"synthetic,omitempty" msgpack:"synthetic,omitempty"`
}

// FormatTokens writes tokens in the chosen format. The dump stops after EOF.
func FormatTokens(w io.Writer, tokens []token.Token, fs *source.FileSet, format TokenFormat) error {
	switch format {
	case TokensJSON:
		return FormatTokensJSON(w, tokens, fs)
	case TokensMsgpack:
		return FormatTokensMsgpack(w, tokens, fs)
	default:
		return FormatTokensPretty(w, tokens, fs)
	}
}

// FormatTokensPretty prints one `line:col  KIND  "lexeme"` row per token.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for _, tok := range tokenOutputs(tokens, fs) {
		pos := fmt.Sprintf("%d:%d", tok.Line, tok.Col)
		line := fmt.Sprintf("%-8s %-10s", pos, tok.Kind)
		switch {
		case tok.Synthetic:
			line += " (auto)"
		case tok.Text != "":
			line += " " + quoteLexeme(tok.Text)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens, fs))
}

func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(tokens, fs))
}

func tokenOutputs(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		pos, _ := fs.Resolve(tok.Span)
		out = append(out, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			Start:     tok.Span.Start,
			End:       tok.Span.End,
			Line:      pos.Line,
			Col:       pos.Col,
			Synthetic: tok.IsSynthetic(),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// quoteLexeme quotes text unless it is a raw string, which is shown as is.
func quoteLexeme(text string) string {
	if strings.HasPrefix(text, "`") {
		return text
	}
	return fmt.Sprintf("%q", text)
}
