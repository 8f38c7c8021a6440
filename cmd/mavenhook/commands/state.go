// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mavenhook/mavenhook/internal/pipeline"
)

func newStateCmd() *cobra.Command {
	var (
		asJSON   bool
		stateDir string
	)

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the outcome of the last handled event",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := pipeline.NewStateStore(stateDir)
			last, err := store.ReadLastRun()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(last)
			}

			if last == nil {
				fmt.Println("No run state found.")
				return nil
			}

			fmt.Printf("Status: %s\n", last.Status)
			if last.Aborted {
				fmt.Println("Aborted: nothing to do")
			}
			if last.Failed != "" {
				fmt.Printf("Failed step: %s\n", last.Failed)
			}
			for _, name := range last.Steps {
				res, err := store.ReadStep(name)
				if err != nil || res == nil {
					continue
				}
				fmt.Printf("  %-18s %s\n", name, res.Status)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&stateDir, "state-dir", ".mavenhook/run", "Directory holding run state")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output state in JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear run state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return pipeline.NewStateStore(stateDir).Reset()
		},
	})

	return cmd
}
