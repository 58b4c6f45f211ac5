package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
)

func parseSource(t *testing.T, src string, opts Options) (*ast.Builder, Result) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.go", []byte(src))
	b := ast.NewBuilder(ast.Hints{})
	if opts.Reporter == nil {
		opts.Reporter = diag.BagReporter{Bag: diag.NewBag(16)}
	}
	return b, ParseFile(context.Background(), fs, fs.Get(id), b, opts)
}

func mustParse(t *testing.T, src string, opts Options) (*ast.Builder, *ast.File) {
	t.Helper()
	b, res := parseSource(t, src, opts)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v\nsource:\n%s", res.Err, src)
	}
	if !res.File.IsValid() {
		t.Fatalf("no file produced for:\n%s", src)
	}
	return b, b.Files.Get(res.File)
}

func mustFail(t *testing.T, src string, code diag.Code) *diag.Error {
	t.Helper()
	_, res := parseSource(t, src, Options{})
	if res.Err == nil {
		t.Fatalf("expected %s, parse succeeded:\n%s", code.ID(), src)
	}
	if res.File.IsValid() {
		t.Fatalf("failed parse must not return a file")
	}
	var de *diag.Error
	if !errors.As(res.Err, &de) {
		t.Fatalf("error is %T, want *diag.Error", res.Err)
	}
	if de.Code != code {
		t.Fatalf("got %s (%s), want %s\nsource:\n%s", de.Code.ID(), de.Msg, code.ID(), src)
	}
	return de
}

// parseBody parses stmts as the body of a function and returns its
// statements.
func parseBody(t *testing.T, stmts string, opts Options) (*ast.Builder, []ast.StmtID) {
	t.Helper()
	b, f := mustParse(t, "package p\nfunc f() {\n"+stmts+"\n}\n", opts)
	fn, ok := b.Items.Func(f.Items[0])
	if !ok {
		t.Fatal("first item is not a function")
	}
	block, _ := b.Stmts.Block(fn.Body)
	return b, block.Stmts
}

func bodyError(t *testing.T, stmts string, code diag.Code) *diag.Error {
	t.Helper()
	return mustFail(t, "package p\nfunc f() {\n"+stmts+"\n}\n", code)
}

// parseExprSrc parses `_ = src` and returns the right-hand side.
func parseExprSrc(t *testing.T, src string, opts Options) (*ast.Builder, ast.ExprID) {
	t.Helper()
	b, stmts := parseBody(t, "_ = "+src, opts)
	as, ok := b.Stmts.Assign(stmts[0])
	if !ok {
		t.Fatalf("expected assignment, got %s", b.Stmts.Get(stmts[0]).Kind)
	}
	return b, as.RHS[0]
}

// sexpr renders an expression compactly for assertions.
func sexpr(b *ast.Builder, id ast.ExprID) string {
	if !id.IsValid() {
		return "_"
	}
	e := b.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprIdent:
		d, _ := b.Exprs.Ident(id)
		return b.Name(d.Name)
	case ast.ExprBasicLit:
		d, _ := b.Exprs.BasicLit(id)
		return b.Name(d.Value)
	case ast.ExprUnary:
		d, _ := b.Exprs.Unary(id)
		return fmt.Sprintf("(%s %s)", d.Op, sexpr(b, d.X))
	case ast.ExprBinary:
		d, _ := b.Exprs.Binary(id)
		return fmt.Sprintf("(%s %s %s)", d.Op, sexpr(b, d.X), sexpr(b, d.Y))
	case ast.ExprParen:
		d, _ := b.Exprs.Paren(id)
		return "(paren " + sexpr(b, d.X) + ")"
	case ast.ExprSelector:
		d, _ := b.Exprs.Selector(id)
		return sexpr(b, d.X) + "." + b.Name(d.Sel)
	case ast.ExprIndex:
		d, _ := b.Exprs.Index(id)
		return fmt.Sprintf("(index %s %s)", sexpr(b, d.X), sexpr(b, d.Index))
	case ast.ExprSlice:
		d, _ := b.Exprs.Slice(id)
		return fmt.Sprintf("(slice %s %s %s %s)", sexpr(b, d.X), sexpr(b, d.Low), sexpr(b, d.High), sexpr(b, d.Max))
	case ast.ExprCall:
		d, _ := b.Exprs.Call(id)
		parts := []string{"call", sexpr(b, d.Fun)}
		if d.TypeArg.IsValid() {
			parts = append(parts, "<"+b.Types.Get(d.TypeArg).Kind.String()+">")
		}
		for _, a := range d.Args {
			parts = append(parts, sexpr(b, a))
		}
		if d.Ellipsis {
			parts = append(parts, "...")
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprTypeAssert:
		d, _ := b.Exprs.TypeAssert(id)
		return fmt.Sprintf("(assert %s %s)", sexpr(b, d.X), b.Types.Get(d.Type).Kind)
	case ast.ExprCompositeLit:
		d, _ := b.Exprs.CompositeLit(id)
		return fmt.Sprintf("(lit %d)", len(d.Elts))
	case ast.ExprTypeOperand:
		d, _ := b.Exprs.TypeOperand(id)
		return "<" + b.Types.Get(d.Type).Kind.String() + ">"
	}
	return e.Kind.String()
}
