package driver

import (
	"context"
	"fmt"
	"time"

	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/parser"
	"g5/internal/source"
	"g5/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Bag     *diag.Bag
	// Err is the *diag.Error that stopped the parse; FileID is then
	// ast.NoFileID.
	Err    error
	FileID ast.FileID
}

// OK reports whether a complete tree was built.
func (r *ParseResult) OK() bool { return r.Err == nil && r.FileID != ast.NoFileID }

// Tree renders the parsed file, or "" after a failure.
func (r *ParseResult) Tree() string {
	if !r.OK() {
		return ""
	}
	return r.Builder.Tree(r.FileID).String()
}

// ParseFile loads path and parses it in a fresh session. The returned
// error is non-nil only for I/O failures or cancellation; syntax errors
// land in ParseResult.Err.
func ParseFile(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	tr := opts.tracer(trace.FromContext(ctx))
	span := trace.Begin(tr, trace.ScopePass, "load", trace.CurrentSpan(ctx)).WithExtra("path", path)
	timerIdx := -1
	if opts.Timer != nil {
		timerIdx = opts.Timer.Begin("load")
	}
	fs, file, err := loadFile(path)
	if opts.Timer != nil {
		opts.Timer.End(timerIdx, "")
	}
	if err != nil {
		span.End("error")
		return nil, err
	}
	span.End(fmt.Sprintf("%d bytes", len(file.Content)))
	return parseLoaded(ctx, fs, file, opts)
}

// ParseSource parses in-memory content registered under name.
func ParseSource(ctx context.Context, name string, content []byte, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	return parseLoaded(ctx, fs, file, opts)
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*ParseResult, error) {
	tr := opts.tracer(trace.FromContext(ctx))
	span := trace.Begin(tr, trace.ScopePass, "parse", trace.CurrentSpan(ctx)).WithExtra("path", file.Path)
	pctx := trace.WithSpan(ctx, span)

	bag := diag.NewBag(opts.MaxErrors)
	builder := ast.NewBuilder(ast.Hints{})
	started := time.Now()
	res := parser.ParseFile(pctx, fs, file, builder, parser.Options{
		Trace:    opts.TraceDecls,
		Tracer:   tr,
		Reporter: diag.BagReporter{Bag: bag},
		Binary:   opts.Binary,
	})
	if opts.Timer != nil {
		opts.Timer.Add("lex+parse", time.Since(started))
	}

	if err := ctx.Err(); err != nil && res.Err == err {
		span.End("cancelled")
		return nil, err
	}
	if res.Err != nil {
		trace.Point(tr, trace.ScopePass, "error", res.Err.Error(), span.ID())
		span.End("error")
	} else {
		span.End("ok")
	}
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Bag:     bag,
		Err:     res.Err,
		FileID:  res.File,
	}, nil
}
