package driver

import (
	"g5/internal/diag"
	"g5/internal/lexer"
	"g5/internal/source"
	"g5/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	// Err is the lexical error that ended the stream early, if any.
	Err    error
	Tokens []token.Token
}

// TokenizeFile loads path and drains the lexer up to EOF or the first
// lexical error. Only I/O failures are returned as the error value.
func TokenizeFile(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return tokenize(fs, file, maxDiagnostics), nil
}

// TokenizeSource is TokenizeFile for in-memory content.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	return tokenize(fs, file, maxDiagnostics)
}

func tokenize(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	tokens, err := lexer.All(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Err:     err,
	}
}
