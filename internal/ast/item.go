package ast

import (
	"g5/internal/source"
)

type ItemKind uint8

const (
	ItemImport ItemKind = iota
	ItemConst
	ItemVar
	ItemType
	ItemFunc
)

func (k ItemKind) String() string {
	switch k {
	case ItemImport:
		return "ImportDecl"
	case ItemConst:
		return "ConstDecl"
	case ItemVar:
		return "VarDecl"
	case ItemType:
		return "TypeDecl"
	case ItemFunc:
		return "FuncDecl"
	}
	return "Item?"
}

// Item is a top-level or statement-level declaration.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// ImportSpec maps an unquoted import path to an optional local name. Name
// may be "_"; Dot marks `import . "path"`.
type ImportSpec struct {
	Name source.StringID
	Dot  bool
	Path source.StringID
	Span source.Span
}

type ImportDecl struct {
	Specs   []ImportSpec
	Grouped bool
}

// ValueSpec is one line of a const or var declaration. Type and Values are
// both optional.
type ValueSpec struct {
	Names  []source.StringID
	Type   TypeID
	Values []ExprID
	Span   source.Span
}

// ValueDecl backs both ItemConst and ItemVar.
type ValueDecl struct {
	Specs   []ValueSpec
	Grouped bool
}

type TypeSpec struct {
	Name  source.StringID
	Alias bool
	Type  TypeID
	Span  source.Span
}

type TypeDecl struct {
	Specs   []TypeSpec
	Grouped bool
}

// Param is one parameter after name back-propagation. Name is NoStringID
// for unnamed parameters.
type Param struct {
	Name     source.StringID
	Type     TypeID
	Variadic bool
	Span     source.Span
}

type Signature struct {
	Params  []Param
	Results []Param
}

// FuncDecl is a function or method. Body is NoStmtID for a declaration
// without a body.
type FuncDecl struct {
	Recv []Param
	Name source.StringID
	Sig  Signature
	Body StmtID
}

type Items struct {
	Arena   *Arena[Item]
	Imports *Arena[ImportDecl]
	Values  *Arena[ValueDecl]
	Types   *Arena[TypeDecl]
	Funcs   *Arena[FuncDecl]
}

func NewItems(capHint uint) *Items {
	return &Items{
		Arena:   NewArena[Item](capHint),
		Imports: NewArena[ImportDecl](capHint),
		Values:  NewArena[ValueDecl](capHint),
		Types:   NewArena[TypeDecl](capHint),
		Funcs:   NewArena[FuncDecl](capHint),
	}
}

func (i *Items) new(kind ItemKind, sp source.Span, payload uint32) ItemID {
	return ItemID(i.Arena.Allocate(Item{Kind: kind, Span: sp, Payload: PayloadID(payload)}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

func (i *Items) NewImport(sp source.Span, specs []ImportSpec, grouped bool) ItemID {
	return i.new(ItemImport, sp, i.Imports.Allocate(ImportDecl{Specs: list(specs), Grouped: grouped}))
}

func (i *Items) Import(id ItemID) (*ImportDecl, bool) {
	it := i.Get(id)
	if it == nil || it.Kind != ItemImport {
		return nil, false
	}
	return i.Imports.Get(uint32(it.Payload)), true
}

// NewValue creates a const (kind ItemConst) or var (ItemVar) declaration.
func (i *Items) NewValue(kind ItemKind, sp source.Span, specs []ValueSpec, grouped bool) ItemID {
	return i.new(kind, sp, i.Values.Allocate(ValueDecl{Specs: list(specs), Grouped: grouped}))
}

func (i *Items) Value(id ItemID) (*ValueDecl, bool) {
	it := i.Get(id)
	if it == nil || (it.Kind != ItemConst && it.Kind != ItemVar) {
		return nil, false
	}
	return i.Values.Get(uint32(it.Payload)), true
}

func (i *Items) NewTypeDecl(sp source.Span, specs []TypeSpec, grouped bool) ItemID {
	return i.new(ItemType, sp, i.Types.Allocate(TypeDecl{Specs: list(specs), Grouped: grouped}))
}

func (i *Items) TypeDecl(id ItemID) (*TypeDecl, bool) {
	it := i.Get(id)
	if it == nil || it.Kind != ItemType {
		return nil, false
	}
	return i.Types.Get(uint32(it.Payload)), true
}

func (i *Items) NewFunc(sp source.Span, fn FuncDecl) ItemID {
	fn.Recv = list(fn.Recv)
	fn.Sig = fn.Sig.normalized()
	return i.new(ItemFunc, sp, i.Funcs.Allocate(fn))
}

func (i *Items) Func(id ItemID) (*FuncDecl, bool) {
	it := i.Get(id)
	if it == nil || it.Kind != ItemFunc {
		return nil, false
	}
	return i.Funcs.Get(uint32(it.Payload)), true
}

func (s Signature) normalized() Signature {
	return Signature{Params: list(s.Params), Results: list(s.Results)}
}
