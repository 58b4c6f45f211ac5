package driver

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"g5/internal/diag"
	"g5/internal/source"
	"g5/internal/trace"
)

// CheckResult is the verdict for one file.
type CheckResult struct {
	// File is nil when the file could not be loaded.
	File *source.File
	// Err is the first lexical or syntax error; nil when parsing passed.
	Err *diag.Error
	// LoadErr is set instead of Err when the file could not be read.
	LoadErr error
	Path    string
	Elapsed time.Duration
	Cached  bool
}

// OK reports whether the file loaded and parsed.
func (r *CheckResult) OK() bool { return r.LoadErr == nil && r.Err == nil }

// ListFiles returns every *.go file under dir in sorted order.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".go") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir parses every *.go file under dir. Each file gets its own lexer
// and parser session; results come back in path order.
func CheckDir(ctx context.Context, dir string, opts Options) ([]CheckResult, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	return CheckFiles(ctx, files, opts)
}

// CheckFiles checks paths concurrently with at most opts.Jobs workers.
func CheckFiles(ctx context.Context, paths []string, opts Options) ([]CheckResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	tr := opts.tracer(trace.FromContext(ctx))
	span := trace.Begin(tr, trace.ScopeDriver, "check", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(trace.WithTracer(ctx, tr), span)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns results[i]
	results := make([]CheckResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			opts.emit(Event{Kind: EventStart, Path: path, Index: i, Total: len(paths)})
			res, err := checkOne(gctx, path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			opts.emit(Event{
				Kind:    EventDone,
				Path:    path,
				Index:   i,
				Total:   len(paths),
				OK:      res.OK(),
				Cached:  res.Cached,
				Err:     res.Err,
				Elapsed: res.Elapsed,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End("cancelled")
		return results, err
	}

	failed := 0
	for i := range results {
		if !results[i].OK() {
			failed++
		}
	}
	span.WithExtra("files", strconv.Itoa(len(paths))).WithExtra("failed", strconv.Itoa(failed)).End("done")
	return results, nil
}

// checkOne produces the verdict for path, consulting the cache first. Only
// cancellation is returned as an error; load failures are recorded in the
// result.
func checkOne(ctx context.Context, path string, opts Options) (CheckResult, error) {
	started := time.Now()
	res := CheckResult{Path: path}

	loadIdx := -1
	if opts.Timer != nil {
		loadIdx = opts.Timer.Begin("load")
	}
	fs, file, err := loadFile(path)
	if opts.Timer != nil {
		opts.Timer.End(loadIdx, "")
	}
	if err != nil {
		res.LoadErr = err
		res.Elapsed = time.Since(started)
		return res, nil
	}
	res.File = file

	key := KeyFor(file.Content, opts.Binary)
	if v, ok := lookup(ctx, opts, key); ok {
		res.Err = v.Error(file)
		res.Cached = true
		res.Elapsed = time.Since(started)
		return res, nil
	}

	parsed, err := parseLoaded(ctx, fs, file, opts)
	if err != nil {
		return res, err
	}
	if parsed.Err != nil {
		var derr *diag.Error
		if !errors.As(parsed.Err, &derr) {
			return res, parsed.Err
		}
		res.Err = derr
	}
	store(ctx, opts, key, verdictFrom(res.Err))
	res.Elapsed = time.Since(started)
	return res, nil
}

// lookup treats cache read failures as misses; the entry is rewritten
// after parsing.
func lookup(ctx context.Context, opts Options, key Key) (Verdict, bool) {
	if opts.Cache == nil {
		return Verdict{}, false
	}
	start := time.Now()
	v, ok, err := opts.Cache.Get(key)
	if opts.Timer != nil {
		opts.Timer.Add("cache", time.Since(start))
	}
	if err != nil {
		trace.Point(opts.tracer(trace.FromContext(ctx)), trace.ScopePass, "cache", "read failed: "+err.Error(), trace.CurrentSpan(ctx))
		return Verdict{}, false
	}
	return v, ok
}

func store(ctx context.Context, opts Options, key Key, v Verdict) {
	if opts.Cache == nil {
		return
	}
	start := time.Now()
	err := opts.Cache.Put(key, v)
	if opts.Timer != nil {
		opts.Timer.Add("cache", time.Since(start))
	}
	if err != nil {
		trace.Point(opts.tracer(trace.FromContext(ctx)), trace.ScopePass, "cache", "write failed: "+err.Error(), trace.CurrentSpan(ctx))
	}
}
