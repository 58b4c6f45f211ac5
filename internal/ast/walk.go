package ast

// Walk calls visit for every expression reachable from file in depth-first
// pre-order: declarations, types, statements and function literal bodies
// included. When visit returns false nothing under that expression is
// visited.
func Walk(b *Builder, file FileID, visit func(ExprID) bool) {
	f := b.Files.Get(file)
	if f == nil {
		return
	}
	w := walker{b: b, visit: visit}
	for _, it := range f.Items {
		w.item(it)
	}
}

// WalkStmt is Walk restricted to one statement and everything under it.
func WalkStmt(b *Builder, id StmtID, visit func(ExprID) bool) {
	w := walker{b: b, visit: visit}
	w.stmt(id)
}

// WalkExpr is Walk restricted to one expression tree.
func WalkExpr(b *Builder, id ExprID, visit func(ExprID) bool) {
	w := walker{b: b, visit: visit}
	w.expr(id)
}

type walker struct {
	b     *Builder
	visit func(ExprID) bool
}

func (w *walker) item(id ItemID) {
	it := w.b.Items.Get(id)
	if it == nil {
		return
	}
	switch it.Kind {
	case ItemConst, ItemVar:
		d, _ := w.b.Items.Value(id)
		for _, spec := range d.Specs {
			w.typ(spec.Type)
			w.exprs(spec.Values)
		}
	case ItemType:
		d, _ := w.b.Items.TypeDecl(id)
		for _, spec := range d.Specs {
			w.typ(spec.Type)
		}
	case ItemFunc:
		fn, _ := w.b.Items.Func(id)
		w.params(fn.Recv)
		w.sig(fn.Sig)
		w.stmt(fn.Body)
	}
}

func (w *walker) params(ps []Param) {
	for _, p := range ps {
		w.typ(p.Type)
	}
}

func (w *walker) sig(s Signature) {
	w.params(s.Params)
	w.params(s.Results)
}

// typ descends into types only to reach array length expressions.
func (w *walker) typ(id TypeID) {
	t := w.b.Types.Get(id)
	if t == nil {
		return
	}
	switch t.Kind {
	case TypeArray:
		d, _ := w.b.Types.Array(id)
		w.expr(d.Len)
		w.typ(d.Elem)
	case TypeSlice, TypePointer, TypeParen:
		d, _ := w.b.Types.Elem(id)
		w.typ(d.Elem)
	case TypeStruct:
		d, _ := w.b.Types.Struct(id)
		for _, f := range d.Fields {
			w.typ(f.Type)
		}
	case TypeFunc:
		d, _ := w.b.Types.Func(id)
		w.sig(d.Sig)
	case TypeInterface:
		d, _ := w.b.Types.Interface(id)
		for _, m := range d.Methods {
			w.typ(m.Embed)
			w.sig(m.Sig)
		}
	case TypeMap:
		d, _ := w.b.Types.Map(id)
		w.typ(d.Key)
		w.typ(d.Value)
	case TypeChan:
		d, _ := w.b.Types.Chan(id)
		w.typ(d.Elem)
	}
}

func (w *walker) stmts(ids []StmtID) {
	for _, id := range ids {
		w.stmt(id)
	}
}

func (w *walker) stmt(id StmtID) {
	st := w.b.Stmts.Get(id)
	if st == nil {
		return
	}
	switch st.Kind {
	case StmtBlock:
		d, _ := w.b.Stmts.Block(id)
		w.stmts(d.Stmts)
	case StmtLabeled:
		d, _ := w.b.Stmts.LabeledStmt(id)
		w.stmt(d.Stmt)
	case StmtDecl:
		d, _ := w.b.Stmts.Decl(id)
		w.item(d.Item)
	case StmtGo, StmtDefer:
		d, _ := w.b.Stmts.CallStmt(id)
		w.expr(d.Call)
	case StmtReturn:
		d, _ := w.b.Stmts.Return(id)
		w.exprs(d.Results)
	case StmtIf:
		d, _ := w.b.Stmts.If(id)
		w.stmt(d.Init)
		w.expr(d.Cond)
		w.stmt(d.Then)
		w.stmt(d.Else)
	case StmtSwitch:
		d, _ := w.b.Stmts.Switch(id)
		w.stmt(d.Init)
		w.expr(d.Tag)
		w.clauses(d.Clauses)
	case StmtTypeSwitch:
		d, _ := w.b.Stmts.TypeSwitch(id)
		w.stmt(d.Init)
		w.expr(d.Guard)
		w.clauses(d.Clauses)
	case StmtSelect:
		d, _ := w.b.Stmts.Select(id)
		for _, c := range d.Clauses {
			w.stmt(c.Comm)
			w.stmts(c.Body)
		}
	case StmtFor:
		d, _ := w.b.Stmts.For(id)
		w.stmt(d.Init)
		w.expr(d.Cond)
		w.stmt(d.Post)
		w.stmt(d.Body)
	case StmtRange:
		d, _ := w.b.Stmts.Range(id)
		w.expr(d.Key)
		w.expr(d.Value)
		w.expr(d.X)
		w.stmt(d.Body)
	case StmtExpr:
		d, _ := w.b.Stmts.Expr(id)
		w.expr(d.X)
	case StmtSend:
		d, _ := w.b.Stmts.Send(id)
		w.expr(d.Chan)
		w.expr(d.Value)
	case StmtIncDec:
		d, _ := w.b.Stmts.IncDec(id)
		w.expr(d.X)
	case StmtAssign:
		d, _ := w.b.Stmts.Assign(id)
		w.exprs(d.LHS)
		w.exprs(d.RHS)
	case StmtShortVarDecl:
		d, _ := w.b.Stmts.ShortVarDecl(id)
		w.exprs(d.Values)
	}
}

func (w *walker) clauses(cs []CaseClause) {
	for _, c := range cs {
		w.exprs(c.List)
		w.stmts(c.Body)
	}
}

func (w *walker) exprs(ids []ExprID) {
	for _, id := range ids {
		w.expr(id)
	}
}

func (w *walker) expr(id ExprID) {
	e := w.b.Exprs.Get(id)
	if e == nil {
		return
	}
	if !w.visit(id) {
		return
	}
	switch e.Kind {
	case ExprUnary:
		d, _ := w.b.Exprs.Unary(id)
		w.expr(d.X)
	case ExprBinary:
		d, _ := w.b.Exprs.Binary(id)
		w.expr(d.X)
		w.expr(d.Y)
	case ExprParen:
		d, _ := w.b.Exprs.Paren(id)
		w.expr(d.X)
	case ExprTypeSwitchGuard:
		d, _ := w.b.Exprs.TypeSwitchGuard(id)
		w.expr(d.X)
	case ExprSelector:
		d, _ := w.b.Exprs.Selector(id)
		w.expr(d.X)
	case ExprTypeAssert:
		d, _ := w.b.Exprs.TypeAssert(id)
		w.expr(d.X)
		w.typ(d.Type)
	case ExprIndex:
		d, _ := w.b.Exprs.Index(id)
		w.expr(d.X)
		w.expr(d.Index)
	case ExprSlice:
		d, _ := w.b.Exprs.Slice(id)
		w.expr(d.X)
		w.expr(d.Low)
		w.expr(d.High)
		w.expr(d.Max)
	case ExprCall:
		d, _ := w.b.Exprs.Call(id)
		w.expr(d.Fun)
		w.typ(d.TypeArg)
		w.exprs(d.Args)
	case ExprCompositeLit:
		d, _ := w.b.Exprs.CompositeLit(id)
		w.typ(d.Type)
		for _, el := range d.Elts {
			w.expr(el.Key)
			w.expr(el.Value)
		}
	case ExprFuncLit:
		d, _ := w.b.Exprs.FuncLit(id)
		w.sig(d.Sig)
		w.stmt(d.Body)
	case ExprTypeOperand:
		d, _ := w.b.Exprs.TypeOperand(id)
		w.typ(d.Type)
	}
}
