package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"g5/internal/diagfmt"
	"g5/internal/driver"
)

func (a *app) tokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.go",
		Short: "Print the token stream of a source file",
		Long:  `Tokenize prints every token with its position, kind and lexeme, including inserted semicolons`,
		Args:  cobra.ExactArgs(1),
		RunE:  a.runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

func (a *app) runTokenize(cmd *cobra.Command, args []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	format, err := diagfmt.ParseTokenFormat(formatStr)
	if err != nil {
		return usageError(err)
	}
	path := args[0]
	if _, err := statPath(path, false); err != nil {
		return err
	}

	var res *driver.TokenizeResult
	a.phase("tokenize", func() string {
		res, err = driver.TokenizeFile(path, a.settings.maxDiagnostics)
		if err != nil {
			return "error"
		}
		return fmt.Sprintf("%d tokens", len(res.Tokens))
	})
	if err != nil {
		return usageError(err)
	}

	if err := diagfmt.FormatTokens(cmd.OutOrStdout(), res.Tokens, res.FileSet, format); err != nil {
		return err
	}
	if res.Err != nil {
		a.reportError(res.Err, res.File)
		return &exitError{code: exitFailed}
	}
	return nil
}
