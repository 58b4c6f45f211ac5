package parser

import (
	"testing"

	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/source"
)

func TestImports(t *testing.T) {
	src := "package p\nimport \"fmt\"\nimport (\n\tf \"fmt\"\n\t. \"strings\"\n\t_ \"os\"\n\t`raw/path`\n)\n"
	b, f := mustParse(t, src, Options{})
	if len(f.Items) != 2 {
		t.Fatalf("got %d items", len(f.Items))
	}
	single, _ := b.Items.Import(f.Items[0])
	if single.Grouped || b.Name(single.Specs[0].Path) != "fmt" {
		t.Errorf("single import = %+v", single)
	}

	group, _ := b.Items.Import(f.Items[1])
	if !group.Grouped || len(group.Specs) != 4 {
		t.Fatalf("group = %+v", group)
	}
	want := []struct {
		name string
		dot  bool
		path string
	}{
		{"f", false, "fmt"},
		{"", true, "strings"},
		{"_", false, "os"},
		{"", false, "raw/path"},
	}
	for i, w := range want {
		s := group.Specs[i]
		if b.Name(s.Name) != w.name || s.Dot != w.dot || b.Name(s.Path) != w.path {
			t.Errorf("spec %d: name=%q dot=%v path=%q", i, b.Name(s.Name), s.Dot, b.Name(s.Path))
		}
	}
	if sp := group.Specs[0].Span; src[sp.Start:sp.End] != `f "fmt"` {
		t.Errorf("named spec span covers %q", src[sp.Start:sp.End])
	}
}

func TestValueDecls(t *testing.T) {
	src := "package p\nconst (\n\tA = iota\n\tB\n)\nvar x, y int = 1, 2\nvar z = 3\nvar w []string\n"
	b, f := mustParse(t, src, Options{})
	if len(f.Items) != 4 {
		t.Fatalf("got %d items", len(f.Items))
	}
	if b.Items.Get(f.Items[0]).Kind != ast.ItemConst {
		t.Error("first item should be a const declaration")
	}
	consts, _ := b.Items.Value(f.Items[0])
	if !consts.Grouped || len(consts.Specs) != 2 || len(consts.Specs[1].Values) != 0 {
		t.Errorf("const group = %+v", consts)
	}
	xy, _ := b.Items.Value(f.Items[1])
	spec := xy.Specs[0]
	if len(spec.Names) != 2 || !spec.Type.IsValid() || len(spec.Values) != 2 {
		t.Errorf("var x, y = %+v", spec)
	}
	z, _ := b.Items.Value(f.Items[2])
	if z.Specs[0].Type.IsValid() || len(z.Specs[0].Values) != 1 {
		t.Errorf("var z = %+v", z.Specs[0])
	}
}

func TestTypeDecls(t *testing.T) {
	src := "package p\n" +
		"type T struct {\n\ta, b int\n\tio.Reader\n\t*Base\n\tName string `json:\"name\"`\n\tError\n}\n" +
		"type A = B\n" +
		"type I interface {\n\tM(x int) error\n\tio.Closer\n\tStringer\n}\n" +
		"type (\n\tC <-chan int\n\tS chan<- []*T\n\tF func(int, ...string) (bool, error)\n\tM map[string][4]int\n)\n"
	b, f := mustParse(t, src, Options{})

	td, _ := b.Items.TypeDecl(f.Items[0])
	st, ok := b.Types.Struct(td.Specs[0].Type)
	if !ok || len(st.Fields) != 5 {
		t.Fatalf("struct = %+v", st)
	}
	wantEmbedded := []bool{false, true, true, false, true}
	for i, emb := range wantEmbedded {
		if st.Fields[i].Embedded != emb {
			t.Errorf("field %d: embedded = %v", i, st.Fields[i].Embedded)
		}
	}
	if len(st.Fields[0].Names) != 2 {
		t.Errorf("field 0 names = %v", st.Fields[0].Names)
	}
	if b.Name(st.Fields[3].Tag) != "`json:\"name\"`" {
		t.Errorf("tag = %q", b.Name(st.Fields[3].Tag))
	}
	named, _ := b.Types.Named(st.Fields[1].Type)
	if b.Name(named.Pkg) != "io" || b.Name(named.Name) != "Reader" {
		t.Errorf("embedded io.Reader = %+v", named)
	}

	alias, _ := b.Items.TypeDecl(f.Items[1])
	if !alias.Specs[0].Alias {
		t.Error("type A = B should be an alias")
	}

	iface, _ := b.Items.TypeDecl(f.Items[2])
	it, _ := b.Types.Interface(iface.Specs[0].Type)
	if len(it.Methods) != 3 || b.Name(it.Methods[0].Name) != "M" || !it.Methods[1].Embed.IsValid() || !it.Methods[2].Embed.IsValid() {
		t.Errorf("interface = %+v", it)
	}

	group, _ := b.Items.TypeDecl(f.Items[3])
	if !group.Grouped || len(group.Specs) != 4 {
		t.Fatalf("group = %+v", group)
	}
	recv, _ := b.Types.Chan(group.Specs[0].Type)
	send, _ := b.Types.Chan(group.Specs[1].Type)
	if recv.Dir != ast.ChanRecv || send.Dir != ast.ChanSend {
		t.Errorf("chan dirs = %s, %s", recv.Dir, send.Dir)
	}
	fn, _ := b.Types.Func(group.Specs[2].Type)
	if len(fn.Sig.Params) != 2 || !fn.Sig.Params[1].Variadic || len(fn.Sig.Results) != 2 {
		t.Errorf("func type = %+v", fn.Sig)
	}
	m, _ := b.Types.Map(group.Specs[3].Type)
	arr, ok := b.Types.Array(m.Value)
	if !ok || !arr.Len.IsValid() {
		t.Errorf("map value = %+v", arr)
	}
}

// The end-to-end scenario: three names share one type and a+b+c groups
// to the right.
func TestFuncSharedParamType(t *testing.T) {
	b, f := mustParse(t, "package main\nfunc f(a, b, c int) int { return a+b+c }\n", Options{})
	if b.Name(f.Package) != "main" {
		t.Error("package name")
	}
	fn, ok := b.Items.Func(f.Items[0])
	if !ok {
		t.Fatal("expected FuncDecl")
	}
	if len(fn.Sig.Params) != 3 {
		t.Fatalf("got %d params", len(fn.Sig.Params))
	}
	for i, name := range []string{"a", "b", "c"} {
		p := fn.Sig.Params[i]
		named, _ := b.Types.Named(p.Type)
		if b.Name(p.Name) != name || b.Name(named.Name) != "int" {
			t.Errorf("param %d = %s %s", i, b.Name(p.Name), b.Name(named.Name))
		}
	}
	if len(fn.Sig.Results) != 1 || fn.Sig.Results[0].Name != source.NoStringID {
		t.Errorf("results = %+v", fn.Sig.Results)
	}
	body, _ := b.Stmts.Block(fn.Body)
	ret, _ := b.Stmts.Return(body.Stmts[0])
	if got := sexpr(b, ret.Results[0]); got != "(+ a (+ b c))" {
		t.Errorf("return = %s", got)
	}
}

func TestFuncForms(t *testing.T) {
	src := "package p\nfunc (r *T) M() {}\nfunc ext(int) int\nfunc two() (n int, err error) { return }\nfunc g(pkg.T, ...int) {}\n"
	b, f := mustParse(t, src, Options{})
	m, _ := b.Items.Func(f.Items[0])
	if len(m.Recv) != 1 || b.Name(m.Recv[0].Name) != "r" {
		t.Errorf("receiver = %+v", m.Recv)
	}
	ext, _ := b.Items.Func(f.Items[1])
	if ext.Body.IsValid() || len(ext.Sig.Params) != 1 || ext.Sig.Params[0].Name != source.NoStringID {
		t.Errorf("ext = %+v", ext)
	}
	two, _ := b.Items.Func(f.Items[2])
	if len(two.Sig.Results) != 2 || b.Name(two.Sig.Results[1].Name) != "err" {
		t.Errorf("named results = %+v", two.Sig.Results)
	}
	g, _ := b.Items.Func(f.Items[3])
	if len(g.Sig.Params) != 2 || !g.Sig.Params[1].Variadic {
		t.Errorf("g params = %+v", g.Sig.Params)
	}
}

func TestDeclErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"package p\nfunc f(a int, string) {}\n", diag.SynMixedParams},
		{"package p\nfunc f(a, b.T, c int) {}\n", diag.SynMixedParams},
		{"package p\nfunc f(a ...int, b int) {}\n", diag.SynVariadicNotLast},
		{"package p\nfunc f(a, b ...int) {}\n", diag.SynVariadicNotLast},
		{"package p\nfunc f() (...int)\n", diag.SynVariadicNotLast},
		{"package p\nfunc () M() {}\n", diag.SynUnexpectedToken},
		{"package p\nimport fmt\n", diag.SynExpectString},
		{"package p\nimport (\n\t\"a\"\n", diag.SynExpectString},
		{"package p\nvar x\n", diag.SynExpectType},
		{"package p\nconst c int\n", diag.SynExpectExpression},
		{"package p\ntype T struct {\n\t1\n}\n", diag.SynExpectIdentifier},
		{"package p\ntype T map[int\n", diag.SynExpectRBracket},
		{"package p\ntype T <-int\n", diag.SynExpectType},
		{"package p\ntype T interface {\n\t(x)\n}\n", diag.SynExpectIdentifier},
		{"package p\ntype T\n", diag.SynExpectType},
		{"package p\nx := 1\n", diag.SynExpectDecl},
		{"package p\nfunc f() {} func g() {}\n", diag.SynExpectSemicolon},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			mustFail(t, tt.src, tt.code)
		})
	}
}

func TestResolveParams(t *testing.T) {
	typ := ast.TypeID(1)
	bare := func(name source.StringID) paramEntry { return paramEntry{typ: typ, bare: name} }
	named := func(name source.StringID) paramEntry { return paramEntry{name: name, typ: typ, named: true} }

	tests := []struct {
		name    string
		entries []paramEntry
		kind    listKind
		names   []source.StringID
		code    diag.Code
	}{
		{"all unnamed", []paramEntry{bare(1), bare(2)}, listParams, []source.StringID{0, 0}, 0},
		{"shared type", []paramEntry{bare(1), bare(2), named(3)}, listParams, []source.StringID{1, 2, 3}, 0},
		{"two groups", []paramEntry{bare(1), named(2), named(3)}, listParams, []source.StringID{1, 2, 3}, 0},
		{"trailing unnamed", []paramEntry{named(1), bare(2)}, listParams, nil, diag.SynMixedParams},
		{"unnamed type before named", []paramEntry{{typ: typ}, named(2)}, listParams, nil, diag.SynMixedParams},
		{"variadic result", []paramEntry{{typ: typ, variadic: true}}, listResults, nil, diag.SynVariadicNotLast},
		{"empty", nil, listParams, []source.StringID{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, issue := resolveParams(tt.entries, tt.kind)
			if tt.code != 0 {
				if issue == nil || issue.code != tt.code {
					t.Fatalf("issue = %+v, want %s", issue, tt.code.ID())
				}
				return
			}
			if issue != nil {
				t.Fatalf("unexpected issue %+v", issue)
			}
			if len(params) != len(tt.names) {
				t.Fatalf("got %d params", len(params))
			}
			for i, n := range tt.names {
				if params[i].Name != n || params[i].Type != typ {
					t.Errorf("param %d = %+v", i, params[i])
				}
			}
		})
	}
}
