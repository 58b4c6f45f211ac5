package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"g5/internal/trace"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]trace.Level{"off": trace.LevelOff, "PHASE": trace.LevelPhase, "detail": trace.LevelDetail} {
		got, err := trace.ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := trace.ParseLevel("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestPhaseLevelFiltersDeclSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)
	root := trace.Begin(tr, trace.ScopePass, "parse", 0)
	decl := trace.Begin(tr, trace.ScopeDecl, "func main", root.ID())
	decl.End("")
	root.WithExtra("file", "main.go").End("ok")

	out := buf.String()
	if strings.Contains(out, "func main") {
		t.Errorf("decl span leaked at phase level:\n%s", out)
	}
	if !strings.Contains(out, "← parse (ok) {file=main.go}") {
		t.Errorf("missing end event:\n%s", out)
	}
	if decl.ID() != root.ID() {
		t.Error("inert span should report its parent's id")
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := trace.New(trace.Config{Level: trace.LevelDetail, Format: trace.FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	trace.Begin(tr, trace.ScopeDriver, "check", 0).End("")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 events, got %d: %q", len(lines), buf.String())
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev["kind"] != "end" || ev["scope"] != "driver" || ev["name"] != "check" {
		t.Errorf("unexpected event %v", ev)
	}
}

func TestContextPropagation(t *testing.T) {
	ctx := context.Background()
	if trace.FromContext(ctx) != trace.Nop {
		t.Error("empty context must yield Nop")
	}
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx = trace.WithTracer(ctx, tr)
	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "run", 0)
	ctx = trace.WithSpan(ctx, sp)
	if trace.CurrentSpan(ctx) != sp.ID() || sp.ID() == 0 {
		t.Error("span id was not propagated")
	}
}

func TestOffIsNop(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("got %v, %v", tr, err)
	}
	if d := trace.Begin(tr, trace.ScopeDriver, "x", 0).End(""); d != 0 {
		t.Error("inert span reported a duration")
	}
}
