// Package parser builds an AST from the token stream of one file. Parsing is
// fail-fast: the first lexical or syntax error stops the parse and no
// partial tree is returned.
package parser

import (
	"context"
	"fmt"
	"strings"

	"g5/internal/ast"
	"g5/internal/diag"
	"g5/internal/lexer"
	"g5/internal/source"
	"g5/internal/token"
	"g5/internal/trace"
)

// BinaryMode selects how binary operator chains are grouped.
type BinaryMode uint8

const (
	// BinaryFlat treats every binary operator as equal precedence and
	// groups to the right: a*b+c is a*(b+c).
	BinaryFlat BinaryMode = iota
	// BinaryPrecedence uses the usual five levels, left-associative.
	BinaryPrecedence
)

func (m BinaryMode) String() string {
	if m == BinaryPrecedence {
		return "precedence"
	}
	return "flat"
}

func ParseBinaryMode(s string) (BinaryMode, error) {
	switch strings.ToLower(s) {
	case "", "flat":
		return BinaryFlat, nil
	case "precedence", "prec":
		return BinaryPrecedence, nil
	}
	return BinaryFlat, fmt.Errorf("invalid binary mode %q (expected: flat|precedence)", s)
}

type Options struct {
	Trace    bool          // open a span per top-level declaration
	Tracer   trace.Tracer  // defaults to the tracer in ctx
	Reporter diag.Reporter // receives the error, if any
	Binary   BinaryMode
}

// Result of one ParseFile call. On failure File is ast.NoFileID and Err is
// the *diag.Error that stopped the parse (or ctx.Err()).
type Result struct {
	File ast.FileID
	Err  error
	Bag  *diag.Bag
}

// Parser holds the state for a single file.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	fs       *source.FileSet
	file     *source.File
	opts     Options
	tracer   trace.Tracer
	lastSpan source.Span // span of the last consumed token
	failed   error

	// exprLev < 0 inside if/for/switch headers, where `T {` opens the
	// statement body instead of a composite literal.
	exprLev int

	// type switch guards are only legal directly in a switch header
	guardOK   bool
	guards    int
	guardSpan source.Span
}

// ParseFile parses file into arenas. fs is used to resolve error
// positions and may be nil.
func ParseFile(ctx context.Context, fs *source.FileSet, file *source.File, arenas *ast.Builder, opts Options) Result {
	tr := opts.Tracer
	if tr == nil {
		tr = trace.FromContext(ctx)
	}
	p := &Parser{
		lx:       lexer.New(file, lexer.Options{Reporter: opts.Reporter}),
		arenas:   arenas,
		fs:       fs,
		file:     file,
		opts:     opts,
		tracer:   tr,
		lastSpan: source.Span{File: file.ID},
	}

	fileID, ok := p.parseFile(ctx)
	res := Result{Bag: bagOf(opts.Reporter)}
	if !ok || p.failed != nil {
		res.Err = p.failed
		if res.Err == nil {
			res.Err = p.lx.Err()
		}
		return res
	}
	res.File = fileID
	return res
}

func bagOf(r diag.Reporter) *diag.Bag {
	switch br := r.(type) {
	case diag.BagReporter:
		return br.Bag
	case *diag.BagReporter:
		return br.Bag
	}
	return nil
}

// parseFile parses `package Name ;` followed by top-level declarations.
func (p *Parser) parseFile(ctx context.Context) (ast.FileID, bool) {
	start := p.peek().Span
	if _, ok := p.expect(token.KwPackage, diag.SynExpectPackage, "expected 'package' clause"); !ok {
		return ast.NoFileID, false
	}
	pkg, _, ok := p.parseIdent()
	if !ok {
		return ast.NoFileID, false
	}
	if !p.expectSemi() {
		return ast.NoFileID, false
	}

	var items []ast.ItemID
	parent := trace.CurrentSpan(ctx)
	for !p.at(token.EOF) {
		if err := ctx.Err(); err != nil {
			p.failed = err
			return ast.NoFileID, false
		}
		item, ok := p.parseTopDecl(parent)
		if !ok {
			return ast.NoFileID, false
		}
		items = append(items, item)
		if !p.expectSemi() {
			return ast.NoFileID, false
		}
	}
	if p.lx.Err() != nil {
		return ast.NoFileID, false
	}

	id := p.arenas.NewFile(start.Cover(p.lastSpan), pkg)
	for _, item := range items {
		p.arenas.PushItem(id, item)
	}
	return id, true
}

func (p *Parser) parseTopDecl(parent uint64) (ast.ItemID, bool) {
	tok := p.peek()
	var span *trace.Span
	if p.opts.Trace {
		span = trace.Begin(p.tracer, trace.ScopeDecl, "decl "+tok.Kind.String(), parent)
	}

	var (
		id ast.ItemID
		ok bool
	)
	switch tok.Kind {
	case token.KwImport:
		id, ok = p.parseImportDecl()
	case token.KwConst, token.KwVar:
		id, ok = p.parseValueDecl()
	case token.KwType:
		id, ok = p.parseTypeDecl()
	case token.KwFunc:
		id, ok = p.parseFuncDecl()
	default:
		ok = p.errorf(diag.SynExpectDecl, "expected declaration, got %s", describe(tok))
	}

	if span != nil {
		detail := "ok"
		if !ok {
			detail = "error"
		} else if fn, isFn := p.arenas.Items.Func(id); isFn {
			span.WithExtra("name", p.arenas.Name(fn.Name))
		}
		span.End(detail)
	}
	return id, ok
}
