package main

import (
	"github.com/spf13/cobra"

	"g5/internal/diagfmt"
	"g5/internal/driver"
)

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.go",
		Short: "Parse a source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json)")
	cmd.Flags().Bool("trace-decls", false, "trace every top-level declaration (needs --trace-level detail)")
	addBinaryFlag(cmd)
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	format, err := diagfmt.ParseASTFormat(formatStr)
	if err != nil {
		return usageError(err)
	}
	traceDecls, _ := cmd.Flags().GetBool("trace-decls")
	path := args[0]
	if _, err := statPath(path, false); err != nil {
		return err
	}

	res, err := driver.ParseFile(cmd.Context(), path, driver.Options{
		Timer:      a.timer,
		MaxErrors:  a.settings.maxDiagnostics,
		Binary:     a.settings.binary,
		TraceDecls: traceDecls,
	})
	if err != nil {
		return usageError(err)
	}
	if !res.OK() {
		a.reportError(res.Err, res.File)
		return &exitError{code: exitFailed}
	}
	return diagfmt.FormatAST(cmd.OutOrStdout(), res.Builder, res.FileID, format)
}
