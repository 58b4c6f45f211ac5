package ast

import (
	"g5/internal/source"
	"g5/internal/token"
)

type Stmts struct {
	Arena        *Arena[Stmt]
	Blocks       *Arena[StmtBlockData]
	Labeled      *Arena[StmtLabeledData]
	Decls        *Arena[StmtDeclData]
	Calls        *Arena[StmtCallData]
	Returns      *Arena[StmtReturnData]
	Branches     *Arena[StmtBranchData]
	Ifs          *Arena[StmtIfData]
	Switches     *Arena[StmtSwitchData]
	TypeSwitches *Arena[StmtTypeSwitchData]
	Selects      *Arena[StmtSelectData]
	Fors         *Arena[StmtForData]
	Ranges       *Arena[StmtRangeData]
	Exprs        *Arena[StmtExprData]
	Sends        *Arena[StmtSendData]
	IncDecs      *Arena[StmtIncDecData]
	Assigns      *Arena[StmtAssignData]
	ShortVars    *Arena[StmtShortVarDeclData]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:        NewArena[Stmt](capHint),
		Blocks:       NewArena[StmtBlockData](capHint),
		Labeled:      NewArena[StmtLabeledData](0),
		Decls:        NewArena[StmtDeclData](0),
		Calls:        NewArena[StmtCallData](0),
		Returns:      NewArena[StmtReturnData](capHint),
		Branches:     NewArena[StmtBranchData](0),
		Ifs:          NewArena[StmtIfData](capHint),
		Switches:     NewArena[StmtSwitchData](0),
		TypeSwitches: NewArena[StmtTypeSwitchData](0),
		Selects:      NewArena[StmtSelectData](0),
		Fors:         NewArena[StmtForData](0),
		Ranges:       NewArena[StmtRangeData](0),
		Exprs:        NewArena[StmtExprData](capHint),
		Sends:        NewArena[StmtSendData](0),
		IncDecs:      NewArena[StmtIncDecData](0),
		Assigns:      NewArena[StmtAssignData](capHint),
		ShortVars:    NewArena[StmtShortVarDeclData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, sp source.Span, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: sp, Payload: PayloadID(payload)}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payload(id StmtID, kinds ...StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil {
		return 0, false
	}
	for _, k := range kinds {
		if st.Kind == k {
			return uint32(st.Payload), true
		}
	}
	return 0, false
}

func (s *Stmts) NewBlock(sp source.Span, stmts []StmtID) StmtID {
	return s.new(StmtBlock, sp, s.Blocks.Allocate(StmtBlockData{Stmts: list(stmts)}))
}

func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	p, ok := s.payload(id, StmtBlock)
	if !ok {
		return nil, false
	}
	return s.Blocks.Get(p), true
}

func (s *Stmts) NewLabeled(sp source.Span, label source.StringID, stmt StmtID) StmtID {
	return s.new(StmtLabeled, sp, s.Labeled.Allocate(StmtLabeledData{Label: label, Stmt: stmt}))
}

func (s *Stmts) LabeledStmt(id StmtID) (*StmtLabeledData, bool) {
	p, ok := s.payload(id, StmtLabeled)
	if !ok {
		return nil, false
	}
	return s.Labeled.Get(p), true
}

func (s *Stmts) NewDecl(sp source.Span, item ItemID) StmtID {
	return s.new(StmtDecl, sp, s.Decls.Allocate(StmtDeclData{Item: item}))
}

func (s *Stmts) Decl(id StmtID) (*StmtDeclData, bool) {
	p, ok := s.payload(id, StmtDecl)
	if !ok {
		return nil, false
	}
	return s.Decls.Get(p), true
}

// NewCallStmt creates a go (StmtGo) or defer (StmtDefer) statement.
func (s *Stmts) NewCallStmt(kind StmtKind, sp source.Span, call ExprID) StmtID {
	return s.new(kind, sp, s.Calls.Allocate(StmtCallData{Call: call}))
}

func (s *Stmts) CallStmt(id StmtID) (*StmtCallData, bool) {
	p, ok := s.payload(id, StmtGo, StmtDefer)
	if !ok {
		return nil, false
	}
	return s.Calls.Get(p), true
}

func (s *Stmts) NewReturn(sp source.Span, results []ExprID) StmtID {
	return s.new(StmtReturn, sp, s.Returns.Allocate(StmtReturnData{Results: list(results)}))
}

func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	p, ok := s.payload(id, StmtReturn)
	if !ok {
		return nil, false
	}
	return s.Returns.Get(p), true
}

// NewBranch creates break, continue or goto.
func (s *Stmts) NewBranch(kind StmtKind, sp source.Span, label source.StringID) StmtID {
	return s.new(kind, sp, s.Branches.Allocate(StmtBranchData{Label: label}))
}

func (s *Stmts) Branch(id StmtID) (*StmtBranchData, bool) {
	p, ok := s.payload(id, StmtBreak, StmtContinue, StmtGoto)
	if !ok {
		return nil, false
	}
	return s.Branches.Get(p), true
}

// NewBare creates a statement without payload (fallthrough, empty).
func (s *Stmts) NewBare(kind StmtKind, sp source.Span) StmtID {
	return s.new(kind, sp, 0)
}

func (s *Stmts) NewIf(sp source.Span, data StmtIfData) StmtID {
	return s.new(StmtIf, sp, s.Ifs.Allocate(data))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	p, ok := s.payload(id, StmtIf)
	if !ok {
		return nil, false
	}
	return s.Ifs.Get(p), true
}

func (s *Stmts) NewSwitch(sp source.Span, init StmtID, tag ExprID, clauses []CaseClause) StmtID {
	return s.new(StmtSwitch, sp, s.Switches.Allocate(StmtSwitchData{Init: init, Tag: tag, Clauses: list(clauses)}))
}

func (s *Stmts) Switch(id StmtID) (*StmtSwitchData, bool) {
	p, ok := s.payload(id, StmtSwitch)
	if !ok {
		return nil, false
	}
	return s.Switches.Get(p), true
}

func (s *Stmts) NewTypeSwitch(sp source.Span, data StmtTypeSwitchData) StmtID {
	data.Clauses = list(data.Clauses)
	return s.new(StmtTypeSwitch, sp, s.TypeSwitches.Allocate(data))
}

func (s *Stmts) TypeSwitch(id StmtID) (*StmtTypeSwitchData, bool) {
	p, ok := s.payload(id, StmtTypeSwitch)
	if !ok {
		return nil, false
	}
	return s.TypeSwitches.Get(p), true
}

func (s *Stmts) NewSelect(sp source.Span, clauses []CommClause) StmtID {
	return s.new(StmtSelect, sp, s.Selects.Allocate(StmtSelectData{Clauses: list(clauses)}))
}

func (s *Stmts) Select(id StmtID) (*StmtSelectData, bool) {
	p, ok := s.payload(id, StmtSelect)
	if !ok {
		return nil, false
	}
	return s.Selects.Get(p), true
}

func (s *Stmts) NewFor(sp source.Span, data StmtForData) StmtID {
	return s.new(StmtFor, sp, s.Fors.Allocate(data))
}

func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	p, ok := s.payload(id, StmtFor)
	if !ok {
		return nil, false
	}
	return s.Fors.Get(p), true
}

func (s *Stmts) NewRange(sp source.Span, data StmtRangeData) StmtID {
	return s.new(StmtRange, sp, s.Ranges.Allocate(data))
}

func (s *Stmts) Range(id StmtID) (*StmtRangeData, bool) {
	p, ok := s.payload(id, StmtRange)
	if !ok {
		return nil, false
	}
	return s.Ranges.Get(p), true
}

func (s *Stmts) NewExpr(sp source.Span, x ExprID) StmtID {
	return s.new(StmtExpr, sp, s.Exprs.Allocate(StmtExprData{X: x}))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	p, ok := s.payload(id, StmtExpr)
	if !ok {
		return nil, false
	}
	return s.Exprs.Get(p), true
}

func (s *Stmts) NewSend(sp source.Span, ch, value ExprID) StmtID {
	return s.new(StmtSend, sp, s.Sends.Allocate(StmtSendData{Chan: ch, Value: value}))
}

func (s *Stmts) Send(id StmtID) (*StmtSendData, bool) {
	p, ok := s.payload(id, StmtSend)
	if !ok {
		return nil, false
	}
	return s.Sends.Get(p), true
}

func (s *Stmts) NewIncDec(sp source.Span, x ExprID, op token.Kind) StmtID {
	return s.new(StmtIncDec, sp, s.IncDecs.Allocate(StmtIncDecData{X: x, Op: op}))
}

func (s *Stmts) IncDec(id StmtID) (*StmtIncDecData, bool) {
	p, ok := s.payload(id, StmtIncDec)
	if !ok {
		return nil, false
	}
	return s.IncDecs.Get(p), true
}

func (s *Stmts) NewAssign(sp source.Span, op token.Kind, lhs, rhs []ExprID) StmtID {
	return s.new(StmtAssign, sp, s.Assigns.Allocate(StmtAssignData{Op: op, LHS: list(lhs), RHS: list(rhs)}))
}

func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	p, ok := s.payload(id, StmtAssign)
	if !ok {
		return nil, false
	}
	return s.Assigns.Get(p), true
}

func (s *Stmts) NewShortVarDecl(sp source.Span, names []source.StringID, values []ExprID) StmtID {
	return s.new(StmtShortVarDecl, sp, s.ShortVars.Allocate(StmtShortVarDeclData{Names: list(names), Values: list(values)}))
}

func (s *Stmts) ShortVarDecl(id StmtID) (*StmtShortVarDeclData, bool) {
	p, ok := s.payload(id, StmtShortVarDecl)
	if !ok {
		return nil, false
	}
	return s.ShortVars.Get(p), true
}
