package fast

import (
	"fmt"

	"github.com/fasttrack/fasttrack/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newPauseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pause",
		Short:        "Pause the active fast",
		Long:         `Pause the fasting timer. Time spent paused is not counted towards the fast.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := shared.LoadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()
			return runPause(cmd, env)
		},
	}
	cmd.GroupID = shared.GroupTimer
	return cmd
}

func newResumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "resume",
		Short:        "Resume a paused fast",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := shared.LoadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()
			return runResume(cmd, env)
		},
	}
	cmd.GroupID = shared.GroupTimer
	return cmd
}

func runPause(cmd *cobra.Command, env *shared.Env) error {
	res, err := env.Tracker.Pause(shared.CommandContext(cmd))
	if err != nil {
		return shared.RuntimeError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), shared.FormatResult(res))
	return nil
}

func runResume(cmd *cobra.Command, env *shared.Env) error {
	res, err := env.Tracker.Resume(shared.CommandContext(cmd))
	if err != nil {
		return shared.RuntimeError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), shared.FormatResult(res))
	return nil
}
