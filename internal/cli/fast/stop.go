package fast

import (
	"fmt"

	"github.com/fasttrack/fasttrack/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newStopCmd() *cobra.Command {
	var discard bool

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the active fast and record it",
		Long: `Stop the fasting timer. The fast is added to history unless --discard is given.
Pauses are excluded from the recorded duration.`,
		Example: `  # Stop and keep the fast in history
  fasttrack stop

  # Stop without recording
  fasttrack stop --discard`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := shared.LoadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()
			return runStop(cmd, env, !discard)
		},
	}

	cmd.GroupID = shared.GroupTimer
	cmd.Flags().BoolVar(&discard, "discard", false, "Discard the current fast instead of recording it")
	return cmd
}

func runStop(cmd *cobra.Command, env *shared.Env, keep bool) error {
	res, err := env.Tracker.Stop(shared.CommandContext(cmd), keep)
	if err != nil {
		return shared.RuntimeError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), shared.FormatResult(res))
	return nil
}
