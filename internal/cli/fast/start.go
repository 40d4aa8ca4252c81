package fast

import (
	"fmt"

	"github.com/fasttrack/fasttrack/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	backdate := &backdateFlag{}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new fast",
		Long: `Start the fasting timer. Only one fast can be active at a time; starting
while a fast is running leaves it untouched.

Use --duration to record a fast that began earlier.`,
		Example: `  # Start fasting now
  fasttrack start

  # Started 2h30m ago
  fasttrack start --duration 02:30`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := shared.LoadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()
			return runStart(cmd, env, backdate)
		},
	}

	cmd.GroupID = shared.GroupTimer
	cmd.Flags().Var(backdate, "duration", "Time already fasted, backdates the start (format: 'HH:MM')")
	return cmd
}

func runStart(cmd *cobra.Command, env *shared.Env, backdate *backdateFlag) error {
	res, err := env.Tracker.Start(shared.CommandContext(cmd), backdate.Value())
	if err != nil {
		return shared.RuntimeError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), shared.FormatResult(res))
	return nil
}
