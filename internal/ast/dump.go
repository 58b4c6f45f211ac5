package ast

import (
	"fmt"
	"io"
	"strings"

	"g5/internal/source"
)

// Node is a generic, serialisable view of the tree used for dumps.
type Node struct {
	Kind     string  `json:"kind"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

func (n *Node) add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Write prints n as an indented tree, two spaces per level.
func (n *Node) Write(w io.Writer) error {
	return n.write(w, 0)
}

func (n *Node) write(w io.Writer, depth int) error {
	line := strings.Repeat("  ", depth) + n.Kind
	if n.Text != "" {
		line += " " + n.Text
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.write(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) String() string {
	var sb strings.Builder
	_ = n.Write(&sb)
	return sb.String()
}

// Tree converts file into its generic view.
func (b *Builder) Tree(file FileID) *Node {
	f := b.Files.Get(file)
	if f == nil {
		return nil
	}
	root := &Node{Kind: "File", Text: b.Name(f.Package)}
	for _, it := range f.Items {
		root.add(b.ItemNode(it))
	}
	return root
}

func (b *Builder) names(ids []source.StringID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = b.Name(id)
	}
	return strings.Join(parts, ", ")
}

func (b *Builder) ItemNode(id ItemID) *Node {
	it := b.Items.Get(id)
	if it == nil {
		return nil
	}
	n := &Node{Kind: it.Kind.String()}
	switch it.Kind {
	case ItemImport:
		d, _ := b.Items.Import(id)
		for _, spec := range d.Specs {
			text := fmt.Sprintf("%q", b.Name(spec.Path))
			switch {
			case spec.Dot:
				text = ". " + text
			case spec.Name != source.NoStringID:
				text = b.Name(spec.Name) + " " + text
			}
			n.add(&Node{Kind: "ImportSpec", Text: text})
		}
	case ItemConst, ItemVar:
		d, _ := b.Items.Value(id)
		for _, spec := range d.Specs {
			sn := &Node{Kind: "ValueSpec", Text: b.names(spec.Names)}
			sn.add(b.TypeNode(spec.Type))
			for _, v := range spec.Values {
				sn.add(b.ExprNode(v))
			}
			n.add(sn)
		}
	case ItemType:
		d, _ := b.Items.TypeDecl(id)
		for _, spec := range d.Specs {
			kind := "TypeSpec"
			if spec.Alias {
				kind = "AliasSpec"
			}
			n.add((&Node{Kind: kind, Text: b.Name(spec.Name)}).add(b.TypeNode(spec.Type)))
		}
	case ItemFunc:
		fn, _ := b.Items.Func(id)
		n.Text = b.Name(fn.Name)
		if len(fn.Recv) > 0 {
			n.add(b.paramsNode("Recv", fn.Recv))
		}
		n.add(b.sigNodes(fn.Sig)...)
		n.add(b.StmtNode(fn.Body))
	}
	return n
}

func (b *Builder) paramsNode(kind string, params []Param) *Node {
	if len(params) == 0 {
		return nil
	}
	n := &Node{Kind: kind}
	for _, p := range params {
		pn := &Node{Kind: "Param", Text: b.Name(p.Name)}
		if p.Variadic {
			pn.Kind = "VariadicParam"
		}
		n.add(pn.add(b.TypeNode(p.Type)))
	}
	return n
}

func (b *Builder) sigNodes(sig Signature) []*Node {
	return []*Node{b.paramsNode("Params", sig.Params), b.paramsNode("Results", sig.Results)}
}

func (b *Builder) TypeNode(id TypeID) *Node {
	t := b.Types.Get(id)
	if t == nil {
		return nil
	}
	n := &Node{Kind: t.Kind.String()}
	switch t.Kind {
	case TypeNamed:
		d, _ := b.Types.Named(id)
		n.Text = b.Name(d.Name)
		if d.Pkg != source.NoStringID {
			n.Text = b.Name(d.Pkg) + "." + n.Text
		}
	case TypeArray:
		d, _ := b.Types.Array(id)
		if d.Ellipsis {
			n.Text = "..."
		}
		n.add(b.ExprNode(d.Len), b.TypeNode(d.Elem))
	case TypeSlice, TypePointer, TypeParen:
		d, _ := b.Types.Elem(id)
		n.add(b.TypeNode(d.Elem))
	case TypeStruct:
		d, _ := b.Types.Struct(id)
		for _, f := range d.Fields {
			fn := &Node{Kind: "Field", Text: b.names(f.Names)}
			if f.Embedded {
				fn.Kind = "EmbeddedField"
			}
			if f.Tag != source.NoStringID {
				fn.Text = strings.TrimSpace(fn.Text + " " + b.Name(f.Tag))
			}
			n.add(fn.add(b.TypeNode(f.Type)))
		}
	case TypeFunc:
		d, _ := b.Types.Func(id)
		n.add(b.sigNodes(d.Sig)...)
	case TypeInterface:
		d, _ := b.Types.Interface(id)
		for _, m := range d.Methods {
			if m.Embed.IsValid() {
				n.add((&Node{Kind: "Embedded"}).add(b.TypeNode(m.Embed)))
				continue
			}
			n.add((&Node{Kind: "Method", Text: b.Name(m.Name)}).add(b.sigNodes(m.Sig)...))
		}
	case TypeMap:
		d, _ := b.Types.Map(id)
		n.add(b.TypeNode(d.Key), b.TypeNode(d.Value))
	case TypeChan:
		d, _ := b.Types.Chan(id)
		n.Text = d.Dir.String()
		n.add(b.TypeNode(d.Elem))
	}
	return n
}

func (b *Builder) StmtNode(id StmtID) *Node {
	st := b.Stmts.Get(id)
	if st == nil {
		return nil
	}
	n := &Node{Kind: st.Kind.String()}
	switch st.Kind {
	case StmtBlock:
		d, _ := b.Stmts.Block(id)
		n.add(b.stmtNodes(d.Stmts)...)
	case StmtLabeled:
		d, _ := b.Stmts.LabeledStmt(id)
		n.Text = b.Name(d.Label)
		n.add(b.StmtNode(d.Stmt))
	case StmtDecl:
		d, _ := b.Stmts.Decl(id)
		n.add(b.ItemNode(d.Item))
	case StmtGo, StmtDefer:
		d, _ := b.Stmts.CallStmt(id)
		n.add(b.ExprNode(d.Call))
	case StmtReturn:
		d, _ := b.Stmts.Return(id)
		n.add(b.exprNodes(d.Results)...)
	case StmtBreak, StmtContinue, StmtGoto:
		d, _ := b.Stmts.Branch(id)
		n.Text = b.Name(d.Label)
	case StmtIf:
		d, _ := b.Stmts.If(id)
		n.add(b.StmtNode(d.Init), b.ExprNode(d.Cond), b.StmtNode(d.Then), b.StmtNode(d.Else))
	case StmtSwitch:
		d, _ := b.Stmts.Switch(id)
		n.add(b.StmtNode(d.Init), b.ExprNode(d.Tag))
		n.add(b.caseNodes(d.Clauses)...)
	case StmtTypeSwitch:
		d, _ := b.Stmts.TypeSwitch(id)
		n.Text = b.Name(d.Bind)
		n.add(b.StmtNode(d.Init), b.ExprNode(d.Guard))
		n.add(b.caseNodes(d.Clauses)...)
	case StmtSelect:
		d, _ := b.Stmts.Select(id)
		for _, c := range d.Clauses {
			cn := &Node{Kind: "CommClause"}
			if !c.Comm.IsValid() {
				cn.Text = "default"
			}
			cn.add(b.StmtNode(c.Comm))
			n.add(cn.add(b.stmtNodes(c.Body)...))
		}
	case StmtFor:
		d, _ := b.Stmts.For(id)
		n.add(b.StmtNode(d.Init), b.ExprNode(d.Cond), b.StmtNode(d.Post), b.StmtNode(d.Body))
	case StmtRange:
		d, _ := b.Stmts.Range(id)
		if d.Define {
			n.Text = ":="
		}
		n.add(b.ExprNode(d.Key), b.ExprNode(d.Value), b.ExprNode(d.X), b.StmtNode(d.Body))
	case StmtExpr:
		d, _ := b.Stmts.Expr(id)
		n.add(b.ExprNode(d.X))
	case StmtSend:
		d, _ := b.Stmts.Send(id)
		n.add(b.ExprNode(d.Chan), b.ExprNode(d.Value))
	case StmtIncDec:
		d, _ := b.Stmts.IncDec(id)
		n.Text = d.Op.String()
		n.add(b.ExprNode(d.X))
	case StmtAssign:
		d, _ := b.Stmts.Assign(id)
		n.Text = d.Op.String()
		n.add(b.exprNodes(d.LHS)...)
		n.add(b.exprNodes(d.RHS)...)
	case StmtShortVarDecl:
		d, _ := b.Stmts.ShortVarDecl(id)
		n.Text = b.names(d.Names)
		n.add(b.exprNodes(d.Values)...)
	}
	return n
}

func (b *Builder) caseNodes(clauses []CaseClause) []*Node {
	out := make([]*Node, 0, len(clauses))
	for _, c := range clauses {
		cn := &Node{Kind: "CaseClause"}
		if c.Default {
			cn.Text = "default"
		}
		cn.add(b.exprNodes(c.List)...)
		out = append(out, cn.add(b.stmtNodes(c.Body)...))
	}
	return out
}

func (b *Builder) stmtNodes(ids []StmtID) []*Node {
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.StmtNode(id))
	}
	return out
}

func (b *Builder) exprNodes(ids []ExprID) []*Node {
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.ExprNode(id))
	}
	return out
}

func (b *Builder) ExprNode(id ExprID) *Node {
	e := b.Exprs.Get(id)
	if e == nil {
		return nil
	}
	n := &Node{Kind: e.Kind.String()}
	switch e.Kind {
	case ExprIdent:
		d, _ := b.Exprs.Ident(id)
		n.Text = b.Name(d.Name)
	case ExprBasicLit:
		d, _ := b.Exprs.BasicLit(id)
		n.Text = d.Kind.String() + " " + b.Name(d.Value)
	case ExprUnary:
		d, _ := b.Exprs.Unary(id)
		n.Text = d.Op.String()
		n.add(b.ExprNode(d.X))
	case ExprBinary:
		d, _ := b.Exprs.Binary(id)
		n.Text = d.Op.String()
		n.add(b.ExprNode(d.X), b.ExprNode(d.Y))
	case ExprParen:
		d, _ := b.Exprs.Paren(id)
		n.add(b.ExprNode(d.X))
	case ExprTypeSwitchGuard:
		d, _ := b.Exprs.TypeSwitchGuard(id)
		n.add(b.ExprNode(d.X))
	case ExprSelector:
		d, _ := b.Exprs.Selector(id)
		n.Text = b.Name(d.Sel)
		n.add(b.ExprNode(d.X))
	case ExprTypeAssert:
		d, _ := b.Exprs.TypeAssert(id)
		n.add(b.ExprNode(d.X), b.TypeNode(d.Type))
	case ExprIndex:
		d, _ := b.Exprs.Index(id)
		n.add(b.ExprNode(d.X), b.ExprNode(d.Index))
	case ExprSlice:
		d, _ := b.Exprs.Slice(id)
		if d.Slice3 {
			n.Text = "3"
		}
		n.add(b.ExprNode(d.X), bound("Low", b.ExprNode(d.Low)), bound("High", b.ExprNode(d.High)), bound("Max", b.ExprNode(d.Max)))
	case ExprCall:
		d, _ := b.Exprs.Call(id)
		if d.Ellipsis {
			n.Text = "..."
		}
		n.add(b.ExprNode(d.Fun), b.TypeNode(d.TypeArg))
		n.add(b.exprNodes(d.Args)...)
	case ExprCompositeLit:
		d, _ := b.Exprs.CompositeLit(id)
		n.add(b.TypeNode(d.Type))
		for _, el := range d.Elts {
			if el.Key.IsValid() {
				n.add((&Node{Kind: "KeyValue"}).add(b.ExprNode(el.Key), b.ExprNode(el.Value)))
				continue
			}
			n.add(b.ExprNode(el.Value))
		}
	case ExprFuncLit:
		d, _ := b.Exprs.FuncLit(id)
		n.add(b.sigNodes(d.Sig)...)
		n.add(b.StmtNode(d.Body))
	case ExprTypeOperand:
		d, _ := b.Exprs.TypeOperand(id)
		n.add(b.TypeNode(d.Type))
	}
	return n
}

func bound(kind string, child *Node) *Node {
	if child == nil {
		return nil
	}
	return (&Node{Kind: kind}).add(child)
}
