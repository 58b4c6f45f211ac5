package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"g5/internal/diag"
	"g5/internal/diagfmt"
	"g5/internal/driver"
	"g5/internal/trace"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <file.go|directory>",
		Short: "Parse files and report the first error in each",
		Long: `Check lexes and parses a file, or every *.go file under a directory, and prints
"parsing passed" when all of them parse. Exit status is 1 when any file fails
and 2 when the path cannot be used.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runCheck,
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	cmd.Flags().Bool("no-cache", false, "ignore and do not update the verdict cache")
	cmd.Flags().Bool("clear-cache", false, "drop every cached verdict before checking")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	addBinaryFlag(cmd)
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	uiStr, _ := flags.GetString("ui")
	progress, err := parseToggle("ui", uiStr)
	if err != nil {
		return usageError(err)
	}
	format, _ := flags.GetString("format")
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return usageError(fmt.Errorf("unknown format %q (expected: pretty|json)", format))
	}

	path := args[0]
	st, err := statPath(path, true)
	if err != nil {
		return err
	}
	files := []string{path}
	if st.IsDir() {
		if files, err = driver.ListFiles(path); err != nil {
			return usageError(err)
		}
		if len(files) == 0 {
			return usageError(fmt.Errorf("%s: no .go files", path))
		}
	}

	ctx := cmd.Context()
	if drop, _ := flags.GetBool("clear-cache"); drop {
		if err := a.openCache(ctx).DropAll(); err != nil {
			return &exitError{code: exitFailed, err: fmt.Errorf("clear cache: %w", err)}
		}
	}
	opts := driver.Options{
		Timer:     a.timer,
		MaxErrors: a.settings.maxDiagnostics,
		Jobs:      a.settings.jobs,
		Binary:    a.settings.binary,
	}
	if a.settings.cache {
		opts.Cache = a.openCache(ctx)
	}

	var results []driver.CheckResult
	if st.IsDir() && format == "pretty" && progress.enabled(func() bool { return isTerminal(a.stdout) }) {
		results, err = a.runCheckWithUI(ctx, "g5 check "+path, files, opts)
	} else {
		results, err = driver.CheckFiles(ctx, files, opts)
	}
	if err != nil {
		return &exitError{code: exitFailed, err: err}
	}
	return a.reportCheck(cmd, results, format)
}

// openCache returns nil, disabling the cache, when the directory cannot be
// used; the check itself still runs.
func (a *app) openCache(ctx context.Context) *driver.Cache {
	cache, err := driver.OpenCache(a.settings.cacheDir)
	if err != nil {
		trace.Point(trace.FromContext(ctx), trace.ScopeDriver, "cache", "disabled: "+err.Error(), trace.CurrentSpan(ctx))
		return nil
	}
	return cache
}

func (a *app) reportCheck(cmd *cobra.Command, results []driver.CheckResult, format string) error {
	var errs []*diag.Error
	failed := 0
	for i := range results {
		r := &results[i]
		switch {
		case r.LoadErr != nil:
			failed++
			fmt.Fprintln(a.stderr, r.LoadErr)
		case r.Err != nil:
			failed++
			errs = append(errs, r.Err)
			if format == "pretty" {
				_ = diagfmt.PrettyError(a.stderr, r.Err, r.File, a.prettyOpts())
			}
		}
	}

	if format == "json" {
		if err := diagfmt.ErrorsJSON(cmd.OutOrStdout(), errs, diagfmt.JSONOpts{
			IncludePositions: true,
			Max:              a.settings.maxDiagnostics,
		}); err != nil {
			return err
		}
	}
	if failed > 0 {
		if len(results) > 1 {
			fmt.Fprintf(a.stderr, "%d of %d files failed\n", failed, len(results))
		}
		return &exitError{code: exitFailed}
	}
	if format == "pretty" {
		a.infof("parsing passed\n")
	}
	return nil
}
