package util

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fasttrack/fasttrack/internal/cli/shared"
	"github.com/fasttrack/fasttrack/internal/history"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View completed fasts",
		Long:  `List completed fasts, most recent first, with their end time and duration.`,
		Example: `  # Show every completed fast
  fasttrack history

  # Last 5 fasts as JSON
  fasttrack history --limit 5 --format json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			if limit < 0 {
				return shared.Usagef("limit must be positive, got %d", limit)
			}
			format, _ := cmd.Flags().GetString("format")
			if !validFormat(format) {
				return shared.Usagef("unknown format %q (use text, json or yaml)", format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := shared.LoadEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			format, _ := cmd.Flags().GetString("format")
			return runHistory(cmd, env, limit, format)
		},
	}

	cmd.GroupID = shared.GroupInfo
	cmd.Flags().IntP("limit", "n", 0, "Limit the number of history entries to display")
	cmd.Flags().StringP("format", "f", FormatText, "Output format: text, json or yaml")
	return cmd
}

func validFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

func runHistory(cmd *cobra.Command, env *shared.Env, limit int, format string) error {
	fasts, err := env.Tracker.History(shared.CommandContext(cmd), limit)
	if err != nil {
		return shared.RuntimeError(err)
	}
	return writeHistory(cmd.OutOrStdout(), fasts, format, env.Config.TimeFormat)
}

// writeHistory renders fasts in the requested format.
func writeHistory(out io.Writer, fasts []history.CompletedFast, format, timeFormat string) error {
	if fasts == nil {
		fasts = []history.CompletedFast{}
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := json.MarshalIndent(fasts, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling history: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case FormatYAML:
		data, err := yaml.Marshal(fasts)
		if err != nil {
			return fmt.Errorf("marshaling history: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		fmt.Fprintln(out, shared.FormatHistory(fasts, timeFormat))
	}
	return nil
}
