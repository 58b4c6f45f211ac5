// Package testkit holds assertions shared by the parser, driver and fuzz
// tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"g5/internal/ast"
	"g5/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span is non-empty and within file content bounds
// 2) every item span is non-empty and fully contained in file.Span
// 3) file.Span covers the union of item spans (if any items exist)
// 4) a function body lies inside its item and holds its statements
// 5) every expression under a function body lies inside that body
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	if f.Span.End <= f.Span.Start {
		return fmt.Errorf("file span is empty: %v", f.Span)
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	var union source.Span
	for i, it := range f.Items {
		item := b.Items.Get(it)
		if item == nil {
			return fmt.Errorf("nil item for id=%d", it)
		}
		sp := item.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty %s span: %v", item.Kind, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("item span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if !within(sp, f.Span) {
			return fmt.Errorf("item span %v is outside file span %v", sp, f.Span)
		}
		if i == 0 {
			union = sp
		} else {
			union = union.Cover(sp)
		}
		if err := checkFuncBody(b, it, sp); err != nil {
			return err
		}
	}

	if len(f.Items) > 0 && !within(union, f.Span) {
		return fmt.Errorf("file span %v does not cover union of items %v", f.Span, union)
	}
	return nil
}

func checkFuncBody(b *ast.Builder, id ast.ItemID, itemSpan source.Span) error {
	fn, ok := b.Items.Func(id)
	if !ok || !fn.Body.IsValid() {
		return nil
	}
	body := b.Stmts.Get(fn.Body)
	if !within(body.Span, itemSpan) {
		return fmt.Errorf("body of %s at %v is outside its declaration %v", b.Name(fn.Name), body.Span, itemSpan)
	}
	block, ok := b.Stmts.Block(fn.Body)
	if !ok {
		return fmt.Errorf("body of %s is a %s", b.Name(fn.Name), body.Kind)
	}
	for _, st := range block.Stmts {
		s := b.Stmts.Get(st)
		if s.Kind != ast.StmtEmpty && s.Span.End <= s.Span.Start {
			return fmt.Errorf("empty %s span in %s: %v", s.Kind, b.Name(fn.Name), s.Span)
		}
		if !within(s.Span, body.Span) {
			return fmt.Errorf("%s at %v escapes body of %s %v", s.Kind, s.Span, b.Name(fn.Name), body.Span)
		}
	}
	var escaped error
	ast.WalkStmt(b, fn.Body, func(id ast.ExprID) bool {
		e := b.Exprs.Get(id)
		if !within(e.Span, body.Span) {
			escaped = fmt.Errorf("%s at %v escapes body of %s %v", e.Kind, e.Span, b.Name(fn.Name), body.Span)
		}
		return escaped == nil
	})
	return escaped
}

func within(inner, outer source.Span) bool {
	return inner.Start >= outer.Start && inner.End <= outer.End
}
