package ast

import (
	"g5/internal/source"
)

// File is the root of one parsed source unit.
type File struct {
	Span    source.Span
	Package source.StringID
	Items   []ItemID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

func (f *Files) New(sp source.Span, pkg source.StringID) FileID {
	return FileID(f.Arena.Allocate(File{Span: sp, Package: pkg}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
