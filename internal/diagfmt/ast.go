package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"g5/internal/ast"
)

// ASTFormat selects the tree dump encoding.
type ASTFormat uint8

const (
	ASTTree ASTFormat = iota
	ASTJSON
)

func ParseASTFormat(s string) (ASTFormat, error) {
	switch strings.ToLower(s) {
	case "", "tree", "pretty":
		return ASTTree, nil
	case "json":
		return ASTJSON, nil
	}
	return ASTTree, fmt.Errorf("unknown AST format %q (expected: tree|json)", s)
}

// FormatAST dumps file as an indented tree or as nested JSON objects.
func FormatAST(w io.Writer, b *ast.Builder, file ast.FileID, format ASTFormat) error {
	root := b.Tree(file)
	if root == nil {
		return fmt.Errorf("no tree for file %d", file)
	}
	if format == ASTJSON {
		return encodeIndented(w, root)
	}
	return root.Write(w)
}
