package fast

import (
	"fmt"

	"github.com/fasttrack/fasttrack/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "status",
		Aliases:      []string{"st"},
		Short:        "Show the active fast (st)",
		Long:         `Show whether a fast is running or paused, when it started and how long it has lasted so far.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := shared.LoadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()
			return runStatus(cmd, env)
		},
	}
	cmd.GroupID = shared.GroupTimer
	return cmd
}

func runStatus(cmd *cobra.Command, env *shared.Env) error {
	st, err := env.Tracker.Status(shared.CommandContext(cmd))
	if err != nil {
		return shared.RuntimeError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), shared.FormatStatus(st, env.Config.TimeFormat))
	return nil
}
