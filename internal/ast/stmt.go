package ast

import (
	"g5/internal/source"
	"g5/internal/token"
)

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtLabeled
	StmtDecl
	StmtGo
	StmtDefer
	StmtReturn
	StmtBreak
	StmtContinue
	StmtGoto
	StmtFallthrough
	StmtIf
	StmtSwitch
	StmtTypeSwitch
	StmtSelect
	StmtFor
	StmtRange
	StmtExpr
	StmtSend
	StmtIncDec
	StmtAssign
	StmtShortVarDecl
	StmtEmpty
)

var stmtKindNames = [...]string{
	StmtBlock:        "BlockStmt",
	StmtLabeled:      "LabeledStmt",
	StmtDecl:         "DeclStmt",
	StmtGo:           "GoStmt",
	StmtDefer:        "DeferStmt",
	StmtReturn:       "ReturnStmt",
	StmtBreak:        "BreakStmt",
	StmtContinue:     "ContinueStmt",
	StmtGoto:         "GotoStmt",
	StmtFallthrough:  "FallthroughStmt",
	StmtIf:           "IfStmt",
	StmtSwitch:       "SwitchStmt",
	StmtTypeSwitch:   "TypeSwitchStmt",
	StmtSelect:       "SelectStmt",
	StmtFor:          "ForStmt",
	StmtRange:        "RangeStmt",
	StmtExpr:         "ExprStmt",
	StmtSend:         "SendStmt",
	StmtIncDec:       "IncDecStmt",
	StmtAssign:       "AssignStmt",
	StmtShortVarDecl: "ShortVarDecl",
	StmtEmpty:        "EmptyStmt",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Stmt?"
}

// Stmt is a statement header. Fallthrough and Empty carry no payload.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtBlockData struct {
	Stmts []StmtID
}

type StmtLabeledData struct {
	Label source.StringID
	Stmt  StmtID
}

type StmtDeclData struct {
	Item ItemID
}

// StmtCallData backs go and defer.
type StmtCallData struct {
	Call ExprID
}

type StmtReturnData struct {
	Results []ExprID
}

// StmtBranchData backs break, continue and goto. Label is optional for
// break and continue.
type StmtBranchData struct {
	Label source.StringID
}

type StmtIfData struct {
	Init StmtID
	Cond ExprID
	Then StmtID
	Else StmtID // block or nested if
}

// CaseClause is `case List:` or, with Default, `default:`.
type CaseClause struct {
	List    []ExprID
	Default bool
	Body    []StmtID
	Span    source.Span
}

type StmtSwitchData struct {
	Init    StmtID
	Tag     ExprID
	Clauses []CaseClause
}

// StmtTypeSwitchData is `switch [Init;] [Bind :=] X.(type) {...}`. Case
// lists hold types in expression position.
type StmtTypeSwitchData struct {
	Init    StmtID
	Bind    source.StringID
	Guard   ExprID
	Clauses []CaseClause
}

// CommClause guards a send or receive statement; Comm is absent for default.
type CommClause struct {
	Comm StmtID
	Body []StmtID
	Span source.Span
}

type StmtSelectData struct {
	Clauses []CommClause
}

type StmtForData struct {
	Init StmtID
	Cond ExprID
	Post StmtID
	Body StmtID
}

// StmtRangeData is `for [Key [, Value] (:= | =)] range X`.
type StmtRangeData struct {
	Key    ExprID
	Value  ExprID
	Define bool
	X      ExprID
	Body   StmtID
}

type StmtExprData struct {
	X ExprID
}

type StmtSendData struct {
	Chan  ExprID
	Value ExprID
}

type StmtIncDecData struct {
	X  ExprID
	Op token.Kind
}

type StmtAssignData struct {
	Op  token.Kind
	LHS []ExprID
	RHS []ExprID
}

type StmtShortVarDeclData struct {
	Names  []source.StringID
	Values []ExprID
}
