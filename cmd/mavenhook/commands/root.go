// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the mavenhook root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("MAVENHOOK_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "mavenhook",
		Short:         "mavenhook - Maven build automation for push and tag events",
		Long:          "mavenhook runs a configurable Maven build for a source-control push or tag event and reports structured results back as a check run.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of mavenhook",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mavenhook version %s\n", version)
		},
	})

	cmd.AddCommand(newHandleCmd())
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newStepsCmd())
	cmd.AddCommand(newStateCmd())

	return cmd
}
