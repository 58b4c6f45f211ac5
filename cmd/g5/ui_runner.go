package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"g5/internal/driver"
	"g5/internal/ui"
)

type checkOutcome struct {
	err     error
	results []driver.CheckResult
}

// runCheckWithUI runs the check in the background and drives the progress
// view from its events. Quitting the view cancels the check.
func (a *app) runCheckWithUI(ctx context.Context, title string, files []string, opts driver.Options) ([]driver.CheckResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)
	go func() {
		opts.Progress = func(ev driver.Event) { events <- ev }
		res, err := driver.CheckFiles(ctx, files, opts)
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	program := tea.NewProgram(ui.NewProgressModel(title, files, events), tea.WithOutput(a.stdout))
	_, uiErr := program.Run()
	cancel()
	// unblock workers if the view quit early
	go func() {
		for range events {
		}
	}()

	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
