package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"g5/internal/trace"
)

// setupTracing builds the tracer from the trace flags, opens the root span
// tagged with a fresh run id and attaches both to the command context.
func (a *app) setupTracing(cmd *cobra.Command) error {
	flags := cmd.Flags()
	output, _ := flags.GetString("trace")
	levelStr, _ := flags.GetString("trace-level")
	formatStr, _ := flags.GetString("trace-format")

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// naming an output without a level means phase tracing
	if level == trace.LevelOff && output != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	cfg := trace.Config{Level: level, Format: format, OutputPath: output}
	if output == "" || output == "-" {
		// hide any Close so the tracer cannot close stderr
		cfg.Output = struct{ io.Writer }{a.stderr}
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	a.tracer = tracer
	a.runID = uuid.NewString()
	a.rootSpan = trace.Begin(tracer, trace.ScopeDriver, "g5 "+cmd.Name(), 0).WithExtra("run", a.runID)

	ctx := trace.WithSpan(trace.WithTracer(cmd.Context(), tracer), a.rootSpan)
	cmd.SetContext(ctx)
	return nil
}
