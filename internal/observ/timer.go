// Package observ collects phase timings for --timings output.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase records the accumulated duration of one named phase.
type Phase struct {
	Start time.Time
	Name  string
	Note  string
	Dur   time.Duration
	Count int
}

// Timer tracks phases in first-use order. It is safe for concurrent use;
// repeated phases with the same name are summed.
type Timer struct {
	index  map[string]int
	phases []Phase
	mu     sync.Mutex
}

func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 8), index: make(map[string]int, 8)}
}

// Begin starts (or resumes) a phase and returns a handle for End.
func (t *Timer) Begin(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := t.slot(name)
	t.phases[idx].Start = time.Now()
	return idx
}

// End closes the phase opened by Begin. An empty note keeps the previous one.
func (t *Timer) End(idx int, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur += time.Since(p.Start)
	p.Count++
	if note != "" {
		p.Note = note
	}
}

// Add accounts d to the named phase without Begin/End, for durations
// measured elsewhere (worker goroutines).
func (t *Timer) Add(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := &t.phases[t.slot(name)]
	p.Dur += d
	p.Count++
}

func (t *Timer) slot(name string) int {
	if idx, ok := t.index[name]; ok {
		return idx
	}
	t.phases = append(t.phases, Phase{Name: name})
	idx := len(t.phases) - 1
	t.index[name] = idx
	return idx
}

// Summary renders the report as an aligned text table.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			fmt.Fprintf(&b, "  x%d", p.Count)
		}
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-20s %7.2f ms\n", "total", report.TotalMS)
	return b.String()
}

// PhaseReport is the serialized form of a phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	Note       string  `json:"note,omitempty"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count"`
}

// Report is the serialized form of the whole timer.
type Report struct {
	Phases  []PhaseReport `json:"phases"`
	TotalMS float64       `json:"total_ms"`
}

func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
			Count:      phase.Count,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
