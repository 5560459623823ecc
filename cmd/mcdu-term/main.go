// Mcdu-term is an MCDU-style control terminal for cabin systems bridges.
//
// It renders a 14x24 character display in the terminal window, connects to
// a bridge server over websocket and lets the operator inspect and edit
// datapoints through line-select keys and a scratchpad.
//
// Usage:
//
//	mcdu-term [command] [flags]
//
// Running without arguments connects to a discovered bridge and starts the
// terminal. See 'mcdu-term --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flixhummel/mcduterm/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mcdu-term",
	Short: "MCDU-style cabin systems terminal",
	Long: `An MCDU-style control terminal for cabin systems bridges.

Connects to a bridge server over websocket and presents its datapoints on
a 14x24 character display with line-select keys, a scratchpad and typed
entry validation.

If no command is specified, the terminal starts against a discovered
bridge.`,
	Version: version.Version,
	RunE:    runTerminal,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mcdu-term %s (commit: %s)\n", version.Version, version.Commit)
	},
}
