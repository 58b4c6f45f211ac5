package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"g5/internal/diag"
	"g5/internal/driver"
	"g5/internal/source"
)

func TestApplyEventTracksStatus(t *testing.T) {
	files := []string{"a.go", "b.go", "c.go"}
	m := NewProgressModel("check", files, nil).(*progressModel)

	m.applyEvent(driver.Event{Kind: driver.EventStart, Path: "a.go"})
	if m.items[0].status != statusParsing {
		t.Fatalf("a.go status = %q", m.items[0].status)
	}
	m.applyEvent(driver.Event{Kind: driver.EventDone, Path: "a.go", OK: true})
	m.applyEvent(driver.Event{Kind: driver.EventDone, Path: "b.go", OK: true, Cached: true})
	m.applyEvent(driver.Event{Kind: driver.EventDone, Path: "c.go", Err: &diag.Error{
		Code: diag.SynExpectPackage, Pos: source.LineCol{Line: 1, Col: 1}, Msg: "expected 'package' clause",
	}})
	m.applyEvent(driver.Event{Kind: driver.EventDone, Path: "unknown.go", OK: true})

	want := []string{statusOK, statusCached, statusError}
	for i, w := range want {
		if m.items[i].status != w {
			t.Errorf("%s status = %q, want %q", files[i], m.items[i].status, w)
		}
	}
	if m.finished != 3 || m.failed != 1 {
		t.Fatalf("finished=%d failed=%d", m.finished, m.failed)
	}
	if m.items[2].detail != "1:1 expected 'package' clause" {
		t.Fatalf("detail = %q", m.items[2].detail)
	}
}

func TestViewAndQuit(t *testing.T) {
	events := make(chan driver.Event)
	close(events)
	m := NewProgressModel("check", []string{"a.go"}, events).(*progressModel)

	msg := m.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("closed channel produced %T", msg)
	}
	model, cmd := m.Update(msg)
	if cmd == nil || !model.(*progressModel).done {
		t.Fatal("doneMsg should finish the model and quit")
	}
	view := m.View()
	if !strings.Contains(view, "done: check (0/1)") || !strings.Contains(view, "a.go") {
		t.Fatalf("view = %q", view)
	}

	m.Update(tea.WindowSizeMsg{Width: 40})
	if m.width != 40 {
		t.Fatalf("width = %d", m.width)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "a..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("日本語", 4); runewidth.StringWidth(got) > 4 {
		t.Fatalf("truncate wide = %q", got)
	}
	if got := truncate("ab", 0); got != "ab" {
		t.Fatalf("truncate zero = %q", got)
	}
}
