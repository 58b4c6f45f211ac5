package diag

import (
	"fmt"

	"g5/internal/source"
)

// Error is a fatal diagnostic surfaced as a Go error. Pos is resolved at
// creation so the error stays meaningful after the FileSet is gone.
type Error struct {
	Code Code
	Span source.Span
	Path string
	Pos  source.LineCol
	Msg  string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%d:%d: %s: %s", e.Pos.Line, e.Pos.Col, e.Code.ID(), e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.Path, e.Pos.Line, e.Pos.Col, e.Code.ID(), e.Msg)
}

// Diagnostic converts the error back into a bag entry.
func (e *Error) Diagnostic() Diagnostic {
	return NewError(e.Code, e.Span, e.Msg)
}

// ErrorFrom resolves d against fs. fs may be nil, in which case the position
// is left zero.
func ErrorFrom(fs *source.FileSet, d Diagnostic) *Error {
	e := &Error{Code: d.Code, Span: d.Primary, Msg: d.Message}
	if fs != nil && int(d.Primary.File) < fs.Len() {
		f := fs.Get(d.Primary.File)
		e.Path = f.Path
		e.Pos = f.Position(d.Primary.Start)
	}
	return e
}
