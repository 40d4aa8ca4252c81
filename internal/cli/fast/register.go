// Package fast provides the timer CLI commands.
// Includes: start, stop, pause, resume, status
package fast

import (
	"github.com/spf13/cobra"
)

// Register adds all timer commands to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newStopCmd())
	rootCmd.AddCommand(newPauseCmd())
	rootCmd.AddCommand(newResumeCmd())
	rootCmd.AddCommand(newStatusCmd())
}
