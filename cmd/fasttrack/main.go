// fasttrack - Intermittent fasting timer for the terminal

package main

import (
	"os"

	"github.com/fasttrack/fasttrack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
