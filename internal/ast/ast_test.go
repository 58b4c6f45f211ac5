package ast_test

import (
	"strings"
	"testing"

	"g5/internal/ast"
	"g5/internal/source"
	"g5/internal/token"
)

func TestArenaIDsAreOneBased(t *testing.T) {
	a := ast.NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatal("index 0 must be the absent marker")
	}
	id := a.Allocate(7)
	if id != 1 || *a.Get(id) != 7 {
		t.Fatalf("Allocate returned %d", id)
	}
	if a.Get(2) != nil {
		t.Error("out of range index must return nil")
	}
}

func TestEmptyListsAreAbsent(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	blk := b.Stmts.NewBlock(source.Span{}, []ast.StmtID{})
	data, ok := b.Stmts.Block(blk)
	if !ok || data.Stmts != nil {
		t.Fatalf("empty block should have a nil statement list, got %#v", data.Stmts)
	}
	call := b.Exprs.NewCall(source.Span{}, b.Exprs.NewIdent(source.Span{}, b.Strings.Intern("f")), ast.NoTypeID, []ast.ExprID{}, false)
	cd, _ := b.Exprs.Call(call)
	if cd.Args != nil {
		t.Error("empty argument list should be nil")
	}
}

func TestAccessorsCheckKind(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	id := b.Exprs.NewIdent(source.Span{}, b.Strings.Intern("x"))
	if _, ok := b.Exprs.Binary(id); ok {
		t.Error("Binary accessor accepted an identifier")
	}
	if d, ok := b.Exprs.Ident(id); !ok || b.Name(d.Name) != "x" {
		t.Error("Ident accessor failed")
	}
	if _, ok := b.Exprs.Ident(ast.NoExprID); ok {
		t.Error("absent expression must not resolve")
	}
}

func TestTreeDump(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	sp := source.Span{}
	intT := b.Types.NewNamed(sp, source.NoStringID, b.Strings.Intern("int"))
	x := b.Exprs.NewIdent(sp, b.Strings.Intern("x"))
	one := b.Exprs.NewBasicLit(sp, token.IntLit, b.Strings.Intern("1"))
	sum := b.Exprs.NewBinary(sp, token.Plus, x, one)
	ret := b.Stmts.NewReturn(sp, []ast.ExprID{sum})
	body := b.Stmts.NewBlock(sp, []ast.StmtID{ret})
	fn := b.Items.NewFunc(sp, ast.FuncDecl{
		Name: b.Strings.Intern("inc"),
		Sig: ast.Signature{
			Params:  []ast.Param{{Name: b.Strings.Intern("x"), Type: intT}},
			Results: []ast.Param{{Type: intT}},
		},
		Body: body,
	})
	file := b.NewFile(sp, b.Strings.Intern("main"))
	b.PushItem(file, fn)

	want := strings.Join([]string{
		"File main",
		"  FuncDecl inc",
		"    Params",
		"      Param x",
		"        NamedType int",
		"    Results",
		"      Param",
		"        NamedType int",
		"    BlockStmt",
		"      ReturnStmt",
		"        BinaryExpr +",
		"          Ident x",
		"          BasicLit INT 1",
		"",
	}, "\n")
	if got := b.Tree(file).String(); got != want {
		t.Errorf("tree mismatch:\n%s\nwant:\n%s", got, want)
	}
}
