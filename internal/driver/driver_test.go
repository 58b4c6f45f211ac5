package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"g5/internal/diag"
	"g5/internal/driver"
	"g5/internal/observ"
	"g5/internal/parser"
	"g5/internal/token"
)

func TestTokenizeFileMissing(t *testing.T) {
	_, err := driver.TokenizeFile(filepath.Join(t.TempDir(), "absent.go"), 0)
	var le *driver.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LoadError", err)
	}
	if le.Code() != diag.IOLoadFileError || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected load error %v", err)
	}
	if !strings.Contains(err.Error(), "IO4000") {
		t.Errorf("error text %q lacks code", err)
	}
}

func TestTokenizeSourceStopsAtError(t *testing.T) {
	res := driver.TokenizeSource("lex.go", []byte(lexErrSrc), 0)
	var de *diag.Error
	if !errors.As(res.Err, &de) || de.Code != diag.LexUnterminatedString {
		t.Fatalf("err = %v", res.Err)
	}
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind == token.EOF {
		t.Fatalf("stream should end before EOF, got %d tokens", n)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("bag has %d entries", res.Bag.Len())
	}
}

func TestTokenizeFileEndsWithEOF(t *testing.T) {
	root := writeTree(t, map[string]string{"a.go": "package p\n"})
	res, err := driver.TokenizeFile(filepath.Join(root, "a.go"), 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Kind{token.KwPackage, token.Ident, token.Semicolon, token.EOF}
	if len(res.Tokens) != len(want) {
		t.Fatalf("tokens = %v", res.Tokens)
	}
	for i, k := range want {
		if res.Tokens[i].Kind != k {
			t.Errorf("token %d = %s, want %s", i, res.Tokens[i].Kind, k)
		}
	}
}

func TestParseFile(t *testing.T) {
	root := writeTree(t, map[string]string{"ok.go": goodSrc, "bad.go": noPkgSrc})

	res, err := driver.ParseFile(context.Background(), filepath.Join(root, "ok.go"), driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK() || !strings.HasPrefix(res.Tree(), "File p\n") {
		t.Fatalf("tree = %q err = %v", res.Tree(), res.Err)
	}

	res, err = driver.ParseFile(context.Background(), filepath.Join(root, "bad.go"), driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var de *diag.Error
	if res.OK() || !errors.As(res.Err, &de) || de.Code != diag.SynExpectPackage {
		t.Fatalf("err = %v", res.Err)
	}
	if res.Tree() != "" {
		t.Error("failed parse must not render a tree")
	}

	if _, err := driver.ParseFile(context.Background(), filepath.Join(root, "nope.go"), driver.Options{}); err == nil {
		t.Fatal("expected load error")
	}
}

func TestParseSourceBinaryMode(t *testing.T) {
	src := []byte("package p\nvar x = 1 * 2 + 3\n")
	flat, err := driver.ParseSource(context.Background(), "m.go", src, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	prec, err := driver.ParseSource(context.Background(), "m.go", src, driver.Options{Binary: parser.BinaryPrecedence})
	if err != nil {
		t.Fatal(err)
	}
	if flat.Tree() == prec.Tree() {
		t.Fatalf("modes should group differently:\n%s", flat.Tree())
	}
}

func TestCheckDirOrderAndVerdicts(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.go":       goodSrc,
		"a.go":       noPkgSrc,
		"sub/c.go":   lexErrSrc,
		"notes.txt":  "not go",
		"sub/d.go":   goodSrc,
		"sub/e/f.go": goodSrc,
	})
	results, err := driver.CheckDir(context.Background(), root, driver.Options{Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		rel  string
		code diag.Code
	}{
		{"a.go", diag.SynExpectPackage},
		{"b.go", 0},
		{"sub/c.go", diag.LexUnterminatedString},
		{"sub/d.go", 0},
		{"sub/e/f.go", 0},
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results", len(results))
	}
	for i, w := range want {
		r := results[i]
		if r.Path != filepath.Join(root, filepath.FromSlash(w.rel)) {
			t.Errorf("result %d path = %s, want %s", i, r.Path, w.rel)
		}
		switch {
		case w.code == 0 && !r.OK():
			t.Errorf("%s: unexpected error %v", w.rel, r.Err)
		case w.code != 0 && (r.Err == nil || r.Err.Code != w.code):
			t.Errorf("%s: err = %v, want %s", w.rel, r.Err, w.code.ID())
		}
	}
}

func TestCheckFilesRecordsLoadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.go")
	results, err := driver.CheckFiles(context.Background(), []string{missing}, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].LoadErr == nil || results[0].OK() || results[0].File != nil {
		t.Fatalf("result = %+v", results[0])
	}
}

func TestCheckCancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"a.go": goodSrc})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.CheckDir(ctx, root, driver.Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestCheckUsesCache(t *testing.T) {
	root := writeTree(t, map[string]string{"a.go": noPkgSrc, "b.go": goodSrc})
	cache, err := driver.OpenCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	var events []driver.Event
	eventsCh := make(chan driver.Event, 16)
	timer := observ.NewTimer()
	opts := driver.Options{Cache: cache, Jobs: 1, Timer: timer, Progress: func(ev driver.Event) { eventsCh <- ev }}

	first, err := driver.CheckDir(context.Background(), root, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := driver.CheckDir(context.Background(), root, opts)
	if err != nil {
		t.Fatal(err)
	}
	close(eventsCh)
	for ev := range eventsCh {
		events = append(events, ev)
	}

	for i := range first {
		if first[i].Cached {
			t.Errorf("%s: cold run reported a cache hit", first[i].Path)
		}
		if !second[i].Cached {
			t.Errorf("%s: warm run missed the cache", second[i].Path)
		}
	}
	if second[0].Err == nil || *second[0].Err != *first[0].Err {
		t.Fatalf("cached error %v differs from %v", second[0].Err, first[0].Err)
	}
	if second[1].Err != nil {
		t.Fatalf("cached ok verdict carries %v", second[1].Err)
	}

	if len(events) != 8 {
		t.Fatalf("got %d events, want 8", len(events))
	}
	done := 0
	for _, ev := range events {
		if ev.Kind == driver.EventDone {
			done++
			if ev.Total != 2 {
				t.Errorf("event total = %d", ev.Total)
			}
		}
	}
	if done != 4 {
		t.Errorf("done events = %d", done)
	}

	names := map[string]bool{}
	for _, p := range timer.Report().Phases {
		names[p.Name] = true
	}
	for _, want := range []string{"load", "lex+parse", "cache"} {
		if !names[want] {
			t.Errorf("timer lacks phase %q", want)
		}
	}
}
