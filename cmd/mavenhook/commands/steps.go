// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mavenhook/mavenhook/internal/config"
	"github.com/mavenhook/mavenhook/internal/maven"
)

func newStepsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the pipeline steps in execution order",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The step list is fixed; the builder's collaborators are
			// never invoked just to name them.
			b := &maven.Builder{Options: config.Default()}

			var names []string
			for _, s := range b.Steps() {
				names = append(names, s.Name)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"steps": names})
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output step names in JSON")
	return cmd
}
