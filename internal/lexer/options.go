package lexer

import (
	"g5/internal/diag"
	"g5/internal/source"
)

type Options struct {
	// Reporter receives the lexical error, if any. May be nil.
	Reporter diag.Reporter
}

// fail records the first lexical error and reports it. The returned token
// is Invalid and carries the offending text.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) {
	if lx.err != nil {
		return
	}
	lx.err = &diag.Error{
		Code: code,
		Span: sp,
		Path: lx.file.Path,
		Pos:  lx.file.Position(sp.Start),
		Msg:  msg,
	}
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
