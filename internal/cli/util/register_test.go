// Package util tests informational CLI commands for fasttrack.
// Related: internal/cli/util/register.go
// Tags: util, cli, commands, registration

package util

import (
	"testing"

	"github.com/fasttrack/fasttrack/internal/cli/shared"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	rootCmd := &cobra.Command{Use: "test"}
	require.NotPanics(t, func() {
		Register(rootCmd)
	})

	commandNames := make(map[string]*cobra.Command)
	for _, cmd := range rootCmd.Commands() {
		commandNames[cmd.Name()] = cmd
	}

	for _, name := range []string{"history", "version"} {
		cmd, ok := commandNames[name]
		require.True(t, ok, "Should have '%s' command", name)
		assert.Equal(t, shared.GroupInfo, cmd.GroupID)
	}
}
