// Package cli provides the Cobra-based command line interface for fasttrack.
// Every invocation runs one timer action (start, stop, pause, resume, status)
// or one informational command (history, version) and exits.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fasttrack/fasttrack/internal/cli/fast"
	"github.com/fasttrack/fasttrack/internal/cli/shared"
	"github.com/fasttrack/fasttrack/internal/cli/util"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fasttrack",
		Short: "Intermittent fasting timer",
		Long: `fasttrack intermittent fasting timer

Track one fast at a time: start it, pause and resume it, stop it and keep a
history of completed fasts. State lives in ~/.fasting_tracker/.`,
		Example: `  # Start a fast that began 1h30m ago
  fasttrack start --duration 01:30

  # How long have I been fasting?
  fasttrack status

  # Finish and record it
  fasttrack stop

  # Last 10 fasts
  fasttrack history --limit 10`,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shared.Usagef("an action is required (start, stop, pause, resume, status, history)")
		},
	}

	cmd.AddGroup(&cobra.Group{ID: shared.GroupTimer, Title: "Timer:"})
	cmd.AddGroup(&cobra.Group{ID: shared.GroupInfo, Title: "Information:"})
	cmd.SetHelpCommandGroupID(shared.GroupInfo)
	cmd.SetCompletionCommandGroupID(shared.GroupInfo)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return shared.UsageError(err)
	})

	// Global flags
	cmd.PersistentFlags().StringP(shared.FlagConfig, "c", "", "Path to config file (JSON)")
	cmd.PersistentFlags().String(shared.FlagDataDir, "", "Directory holding timer state and history (default ~/.fasting_tracker)")
	cmd.PersistentFlags().BoolP(shared.FlagDebug, "d", false, "Log at debug level")
	cmd.PersistentFlags().Bool(shared.FlagNoColor, false, "Disable coloured output")

	fast.Register(cmd)
	util.Register(cmd)
	return cmd
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context, which aborts a wait for the data directory lock.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}
