package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"g5/internal/version"
)

type versionPayload struct {
	Tool string `json:"tool"`
	version.Info
}

func (a *app) versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show g5 build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			full, _ := cmd.Flags().GetBool("full")
			info := version.Collect()

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(versionPayload{Tool: "g5", Info: info})
			case "pretty":
				fmt.Fprintf(out, "g5 %s\n", version.Banner(info.Version))
				if full {
					fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
					fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
					fmt.Fprintf(out, "go:     %s\n", valueOrUnknown(info.GoVersion))
				}
				return nil
			default:
				return usageError(fmt.Errorf("unsupported format %q (must be pretty or json)", format))
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("full", false, "show commit, build date and Go version")
	return cmd
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
