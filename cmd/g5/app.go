package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"g5/internal/config"
	"g5/internal/diag"
	"g5/internal/diagfmt"
	"g5/internal/observ"
	"g5/internal/parser"
	"g5/internal/prof"
	"g5/internal/source"
	"g5/internal/trace"
)

// app holds the state of one invocation.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	tracer   trace.Tracer
	rootSpan *trace.Span
	timer    *observ.Timer
	profile  *prof.Session
	runID    string
	settings settings
}

// settings are the config file values with command line overrides applied.
type settings struct {
	color          toggle
	cacheDir       string
	configPath     string
	maxDiagnostics int
	jobs           int
	binary         parser.BinaryMode
	cache          bool
	quiet          bool
	timings        bool
	profiles       prof.Paths
}

func (a *app) prepare(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return usageError(err)
	}
	a.settings = s
	color.NoColor = !a.useColor(a.stdout)
	if s.timings {
		a.timer = observ.NewTimer()
	}
	if s.profiles.Any() {
		if a.profile, err = prof.Start(s.profiles); err != nil {
			return usageError(err)
		}
	}
	if err := a.setupTracing(cmd); err != nil {
		return usageError(err)
	}
	if s.configPath != "" {
		trace.Point(a.tracer, trace.ScopeDriver, "config", s.configPath, a.rootSpan.ID())
	}
	return nil
}

// finish closes the root span, flushes the tracer and prints timings.
func (a *app) finish() {
	if err := a.profile.Stop(); err != nil {
		fmt.Fprintf(a.stderr, "profile: %v\n", err)
	}
	if a.rootSpan != nil {
		a.rootSpan.End("")
	}
	if a.tracer != nil {
		if err := a.tracer.Close(); err != nil {
			fmt.Fprintf(a.stderr, "trace: close error: %v\n", err)
		}
	}
	if a.timer != nil {
		fmt.Fprint(a.stderr, a.timer.Summary())
	}
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Flags()
	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Resolve(cfgPath, ".")
	if err != nil {
		return settings{}, err
	}
	binary, err := parser.ParseBinaryMode(cfg.Parse.Binary)
	if err != nil {
		return settings{}, err
	}
	s := settings{
		maxDiagnostics: cfg.Diagnostics.Max,
		jobs:           cfg.Check.Jobs,
		cache:          cfg.Check.Cache,
		cacheDir:       cfg.Check.CacheDir,
		configPath:     cfg.Path,
		binary:         binary,
	}

	colorStr := cfg.Diagnostics.Color
	if flags.Changed("color") {
		colorStr, _ = flags.GetString("color")
	}
	if s.color, err = parseToggle("color", colorStr); err != nil {
		return settings{}, err
	}
	if flags.Changed("max-diagnostics") {
		s.maxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if flags.Lookup("precedence") != nil && flags.Changed("precedence") {
		prec, _ := flags.GetBool("precedence")
		s.binary = parser.BinaryFlat
		if prec {
			s.binary = parser.BinaryPrecedence
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		s.jobs, _ = flags.GetInt("jobs")
	}
	if flags.Lookup("no-cache") != nil {
		if off, _ := flags.GetBool("no-cache"); off {
			s.cache = false
		}
	}
	s.quiet, _ = flags.GetBool("quiet")
	s.timings, _ = flags.GetBool("timings")
	s.profiles.CPU, _ = flags.GetString("cpu-profile")
	s.profiles.Mem, _ = flags.GetString("mem-profile")
	s.profiles.Trace, _ = flags.GetString("runtime-trace")
	return s, nil
}

func (a *app) useColor(w io.Writer) bool {
	return a.settings.color.enabled(func() bool {
		return isTerminal(w) && os.Getenv("NO_COLOR") == ""
	})
}

func (a *app) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{Color: a.useColor(a.stderr), Context: 2}
}

// reportError prints a fatal diagnostic to stderr with its source excerpt.
func (a *app) reportError(err error, file *source.File) {
	if de, ok := err.(*diag.Error); ok {
		if perr := diagfmt.PrettyError(a.stderr, de, file, a.prettyOpts()); perr == nil {
			return
		}
	}
	fmt.Fprintln(a.stderr, err)
}

// phase times fn under name when --timings is set.
func (a *app) phase(name string, fn func() string) {
	if a.timer == nil {
		fn()
		return
	}
	idx := a.timer.Begin(name)
	a.timer.End(idx, fn())
}

func (a *app) infof(format string, args ...any) {
	if a.settings.quiet {
		return
	}
	fmt.Fprintf(a.stdout, format, args...)
}

// statPath rejects a missing path, or a directory when dirOK is false,
// before anything is lexed.
func statPath(path string, dirOK bool) (os.FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, usageError(fmt.Errorf("%s: %s: %w", path, diag.IOLoadFileError.ID(), err))
	}
	if st.IsDir() && !dirOK {
		return nil, usageError(fmt.Errorf("%s: is a directory", path))
	}
	return st, nil
}
