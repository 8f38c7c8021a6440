// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mavenhook/mavenhook/internal/mavenlog"
)

func newExtractCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "extract <logfile>",
		Short: "Parse a captured build log into diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading log file: %w", err)
			}

			diags := mavenlog.Extract(string(data))

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(diags)
			}

			for _, d := range diags {
				loc := d.Path
				if d.Line > 0 {
					loc = fmt.Sprintf("%s:%d", loc, d.Line)
					if d.Column > 0 {
						loc = fmt.Sprintf("%s:%d", loc, d.Column)
					}
				}
				fmt.Printf("%s [%s] %s: %s\n", d.Severity, d.Title, loc, d.Message)
			}
			if len(diags) == 0 {
				fmt.Println("No diagnostics found.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output diagnostics in JSON")
	return cmd
}
