package observ_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"g5/internal/observ"
)

func TestTimerAccumulatesByName(t *testing.T) {
	tm := observ.NewTimer()
	idx := tm.Begin("load")
	tm.End(idx, "3 files")
	tm.Add("parse", 2*time.Millisecond)
	tm.Add("parse", 3*time.Millisecond)
	tm.End(42, "ignored")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(rep.Phases))
	}
	if rep.Phases[0].Name != "load" || rep.Phases[0].Note != "3 files" || rep.Phases[0].Count != 1 {
		t.Fatalf("load phase = %+v", rep.Phases[0])
	}
	parse := rep.Phases[1]
	if parse.Count != 2 || parse.DurationMS < 5 || parse.DurationMS > 5.001 {
		t.Fatalf("parse phase = %+v", parse)
	}
	if rep.TotalMS < parse.DurationMS {
		t.Fatalf("total %.3f below parse %.3f", rep.TotalMS, parse.DurationMS)
	}

	sum := tm.Summary()
	for _, want := range []string{"timings:", "load", "// 3 files", "parse", "x2", "total"} {
		if !strings.Contains(sum, want) {
			t.Errorf("summary missing %q:\n%s", want, sum)
		}
	}
}

func TestTimerConcurrentAdd(t *testing.T) {
	tm := observ.NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("lex+parse", time.Microsecond)
		}()
	}
	wg.Wait()
	if got := tm.Report().Phases[0].Count; got != 16 {
		t.Fatalf("count = %d, want 16", got)
	}
}

func TestEmptyReport(t *testing.T) {
	if rep := observ.NewTimer().Report(); rep.Phases != nil || rep.TotalMS != 0 {
		t.Fatalf("unexpected report %+v", rep)
	}
}
