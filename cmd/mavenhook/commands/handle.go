// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mavenhook/mavenhook/cmd/mavenhook/internal/clierr"
	"github.com/mavenhook/mavenhook/internal/checkrun"
	"github.com/mavenhook/mavenhook/internal/config"
	"github.com/mavenhook/mavenhook/internal/event"
	"github.com/mavenhook/mavenhook/internal/maven"
	"github.com/mavenhook/mavenhook/internal/pipeline"
)

const (
	// exit code for a handler that could not start: unreadable event
	// payload or options file.
	exitBadInput = 2
	// exit code for a pipeline that ran and concluded failure.
	exitBuildFailed = 3
)

func newHandleCmd() *cobra.Command {
	var (
		eventPath   string
		optionsPath string
		projectDir  string
		stateDir    string
		noReport    bool
	)

	cmd := &cobra.Command{
		Use:   "handle",
		Short: "Run the build pipeline for a push or tag event",
		Long: `Handle reads a push-or-tag event payload, provisions the requested
JDK toolchain, runs the configured Maven build, and reports pass/fail with
file annotations to the originating platform as a check run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := event.Load(eventPath)
			if err != nil {
				return clierr.Wrap(exitBadInput, "reading event", err)
			}

			opts, err := config.Load(optionsPath)
			if err != nil {
				return clierr.Wrap(exitBadInput, "reading options", err)
			}

			var checks checkrun.Client = checkrun.NullClient{}
			if !noReport {
				if token := os.Getenv("GITHUB_TOKEN"); token != "" {
					checks = checkrun.NewGitHubClient(token)
				} else {
					fmt.Println("WARN: GITHUB_TOKEN not set, check-run reporting disabled")
				}
			}

			builder := &maven.Builder{
				Checks:     checks,
				Exec:       maven.SystemExecer{},
				Options:    opts,
				ProjectDir: projectDir,
			}

			runner := pipeline.NewRunner(builder.Steps(), pipeline.NewStateStore(stateDir))
			out := runner.Run(cmd.Context(), &pipeline.Params{Event: ev})

			if out.Failed() {
				return clierr.New(exitBuildFailed, out.Reason)
			}
			if out.Abort && out.Hidden {
				fmt.Println("Nothing to do:", out.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&eventPath, "event", "", "Path to the event payload JSON (required)")
	cmd.Flags().StringVar(&optionsPath, "options", ".mavenhook.yml", "Path to the handler options file")
	cmd.Flags().StringVar(&projectDir, "project", ".", "Project directory to build")
	cmd.Flags().StringVar(&stateDir, "state-dir", ".mavenhook/run", "Directory to store run state")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "Run the pipeline without check-run reporting")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}
