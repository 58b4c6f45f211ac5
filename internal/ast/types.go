package ast

import (
	"g5/internal/source"
)

type TypeKind uint8

const (
	TypeNamed TypeKind = iota
	TypeArray
	TypeSlice
	TypeStruct
	TypePointer
	TypeFunc
	TypeInterface
	TypeMap
	TypeChan
	TypeParen
)

var typeKindNames = [...]string{
	TypeNamed:     "NamedType",
	TypeArray:     "ArrayType",
	TypeSlice:     "SliceType",
	TypeStruct:    "StructType",
	TypePointer:   "PointerType",
	TypeFunc:      "FuncType",
	TypeInterface: "InterfaceType",
	TypeMap:       "MapType",
	TypeChan:      "ChanType",
	TypeParen:     "ParenType",
}

func (k TypeKind) String() string {
	if int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}
	return "Type?"
}

type Type struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}

// TypeNamedData is `Name` or the qualified `Pkg.Name`.
type TypeNamedData struct {
	Pkg  source.StringID
	Name source.StringID
}

// TypeArrayData is [Len]Elem. Ellipsis marks [...]Elem, which only occurs
// as the type of a composite literal; Len is then absent.
type TypeArrayData struct {
	Len      ExprID
	Elem     TypeID
	Ellipsis bool
}

// TypeElemData backs slice, pointer and parenthesized types.
type TypeElemData struct {
	Elem TypeID
}

type Field struct {
	Names    []source.StringID
	Type     TypeID
	Embedded bool
	Tag      source.StringID
	Span     source.Span
}

type TypeStructData struct {
	Fields []Field
}

type TypeFuncData struct {
	Sig Signature
}

// Method is an interface element: either Name+Sig or an embedded type.
type Method struct {
	Name  source.StringID
	Sig   Signature
	Embed TypeID
	Span  source.Span
}

type TypeInterfaceData struct {
	Methods []Method
}

type TypeMapData struct {
	Key   TypeID
	Value TypeID
}

type ChanDir uint8

const (
	ChanBoth ChanDir = iota
	ChanSend
	ChanRecv
)

func (d ChanDir) String() string {
	switch d {
	case ChanSend:
		return "chan<-"
	case ChanRecv:
		return "<-chan"
	}
	return "chan"
}

type TypeChanData struct {
	Dir  ChanDir
	Elem TypeID
}

type Types struct {
	Arena      *Arena[Type]
	Nameds     *Arena[TypeNamedData]
	Arrays     *Arena[TypeArrayData]
	Elems      *Arena[TypeElemData]
	Structs    *Arena[TypeStructData]
	Funcs      *Arena[TypeFuncData]
	Interfaces *Arena[TypeInterfaceData]
	Maps       *Arena[TypeMapData]
	Chans      *Arena[TypeChanData]
}

func NewTypes(capHint uint) *Types {
	return &Types{
		Arena:      NewArena[Type](capHint),
		Nameds:     NewArena[TypeNamedData](capHint),
		Arrays:     NewArena[TypeArrayData](capHint),
		Elems:      NewArena[TypeElemData](capHint),
		Structs:    NewArena[TypeStructData](capHint),
		Funcs:      NewArena[TypeFuncData](capHint),
		Interfaces: NewArena[TypeInterfaceData](capHint),
		Maps:       NewArena[TypeMapData](capHint),
		Chans:      NewArena[TypeChanData](capHint),
	}
}

func (t *Types) new(kind TypeKind, sp source.Span, payload uint32) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: kind, Span: sp, Payload: PayloadID(payload)}))
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

func (t *Types) payload(id TypeID, kinds ...TypeKind) (PayloadID, bool) {
	typ := t.Get(id)
	if typ == nil {
		return NoPayloadID, false
	}
	for _, k := range kinds {
		if typ.Kind == k {
			return typ.Payload, true
		}
	}
	return NoPayloadID, false
}

func (t *Types) NewNamed(sp source.Span, pkg, name source.StringID) TypeID {
	return t.new(TypeNamed, sp, t.Nameds.Allocate(TypeNamedData{Pkg: pkg, Name: name}))
}

func (t *Types) Named(id TypeID) (*TypeNamedData, bool) {
	p, ok := t.payload(id, TypeNamed)
	if !ok {
		return nil, false
	}
	return t.Nameds.Get(uint32(p)), true
}

func (t *Types) NewArray(sp source.Span, length ExprID, elem TypeID, ellipsis bool) TypeID {
	return t.new(TypeArray, sp, t.Arrays.Allocate(TypeArrayData{Len: length, Elem: elem, Ellipsis: ellipsis}))
}

func (t *Types) Array(id TypeID) (*TypeArrayData, bool) {
	p, ok := t.payload(id, TypeArray)
	if !ok {
		return nil, false
	}
	return t.Arrays.Get(uint32(p)), true
}

// NewElem creates a slice, pointer or parenthesized type.
func (t *Types) NewElem(kind TypeKind, sp source.Span, elem TypeID) TypeID {
	return t.new(kind, sp, t.Elems.Allocate(TypeElemData{Elem: elem}))
}

// Elem returns the element of a slice, pointer or parenthesized type.
func (t *Types) Elem(id TypeID) (*TypeElemData, bool) {
	p, ok := t.payload(id, TypeSlice, TypePointer, TypeParen)
	if !ok {
		return nil, false
	}
	return t.Elems.Get(uint32(p)), true
}

func (t *Types) NewStruct(sp source.Span, fields []Field) TypeID {
	return t.new(TypeStruct, sp, t.Structs.Allocate(TypeStructData{Fields: list(fields)}))
}

func (t *Types) Struct(id TypeID) (*TypeStructData, bool) {
	p, ok := t.payload(id, TypeStruct)
	if !ok {
		return nil, false
	}
	return t.Structs.Get(uint32(p)), true
}

func (t *Types) NewFunc(sp source.Span, sig Signature) TypeID {
	return t.new(TypeFunc, sp, t.Funcs.Allocate(TypeFuncData{Sig: sig.normalized()}))
}

func (t *Types) Func(id TypeID) (*TypeFuncData, bool) {
	p, ok := t.payload(id, TypeFunc)
	if !ok {
		return nil, false
	}
	return t.Funcs.Get(uint32(p)), true
}

func (t *Types) NewInterface(sp source.Span, methods []Method) TypeID {
	return t.new(TypeInterface, sp, t.Interfaces.Allocate(TypeInterfaceData{Methods: list(methods)}))
}

func (t *Types) Interface(id TypeID) (*TypeInterfaceData, bool) {
	p, ok := t.payload(id, TypeInterface)
	if !ok {
		return nil, false
	}
	return t.Interfaces.Get(uint32(p)), true
}

func (t *Types) NewMap(sp source.Span, key, value TypeID) TypeID {
	return t.new(TypeMap, sp, t.Maps.Allocate(TypeMapData{Key: key, Value: value}))
}

func (t *Types) Map(id TypeID) (*TypeMapData, bool) {
	p, ok := t.payload(id, TypeMap)
	if !ok {
		return nil, false
	}
	return t.Maps.Get(uint32(p)), true
}

func (t *Types) NewChan(sp source.Span, dir ChanDir, elem TypeID) TypeID {
	return t.new(TypeChan, sp, t.Chans.Allocate(TypeChanData{Dir: dir, Elem: elem}))
}

func (t *Types) Chan(id TypeID) (*TypeChanData, bool) {
	p, ok := t.payload(id, TypeChan)
	if !ok {
		return nil, false
	}
	return t.Chans.Get(uint32(p)), true
}
