package ast_test

import (
	"context"
	"strings"
	"testing"

	"g5/internal/ast"
	"g5/internal/parser"
	"g5/internal/source"
)

const walkSrc = `package p

var n = [2]int{1, 2}

func f(x int) int {
	g := func() int { return x * 3 }
	return g() + n[0]
}
`

func parseForWalk(t *testing.T) (*ast.Builder, ast.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("walk.go", []byte(walkSrc))
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(context.Background(), fs, fs.Get(id), b, parser.Options{})
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	return b, res.File
}

func label(b *ast.Builder, id ast.ExprID) string {
	if d, ok := b.Exprs.Ident(id); ok {
		return b.Name(d.Name)
	}
	if d, ok := b.Exprs.BasicLit(id); ok {
		return b.Name(d.Value)
	}
	return b.Exprs.Get(id).Kind.String()
}

func TestWalkPreOrder(t *testing.T) {
	b, file := parseForWalk(t)
	var got []string
	ast.Walk(b, file, func(id ast.ExprID) bool {
		got = append(got, label(b, id))
		return true
	})
	want := []string{
		"CompositeLit", "2", "1", "2",
		"FuncLit", "BinaryExpr", "x", "3",
		"BinaryExpr", "CallExpr", "g", "IndexExpr", "n", "0",
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("walk order:\n got %v\nwant %v", got, want)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	b, file := parseForWalk(t)
	var got []string
	ast.Walk(b, file, func(id ast.ExprID) bool {
		got = append(got, label(b, id))
		kind := b.Exprs.Get(id).Kind
		return kind != ast.ExprFuncLit && kind != ast.ExprCompositeLit
	})
	want := "CompositeLit FuncLit BinaryExpr CallExpr g IndexExpr n 0"
	if s := strings.Join(got, " "); s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestWalkStmtAndExpr(t *testing.T) {
	b, file := parseForWalk(t)
	f := b.Files.Get(file)
	fn, ok := b.Items.Func(f.Items[1])
	if !ok {
		t.Fatal("second item is not a function")
	}
	count := 0
	ast.WalkStmt(b, fn.Body, func(ast.ExprID) bool { count++; return true })
	if count != 10 {
		t.Errorf("WalkStmt visited %d expressions, want 10", count)
	}

	var idents []string
	ast.WalkExpr(b, ast.NoExprID, func(ast.ExprID) bool { t.Error("absent expression visited"); return true })
	block, _ := b.Stmts.Block(fn.Body)
	ret, _ := b.Stmts.Return(block.Stmts[1])
	ast.WalkExpr(b, ret.Results[0], func(id ast.ExprID) bool {
		if d, ok := b.Exprs.Ident(id); ok {
			idents = append(idents, b.Name(d.Name))
		}
		return true
	})
	if strings.Join(idents, ",") != "g,n" {
		t.Errorf("idents = %v", idents)
	}
}
