// Mcdu-bridge is a bridge simulator for the mcdu-term terminal.
//
// It serves the bridge JSON protocol over websocket against an in-memory
// datapoint store seeded with simulated cabin systems, and advertises
// itself over mDNS so terminals find it without configuration.
//
// Usage:
//
//	mcdu-bridge serve [flags]
//
// See 'mcdu-bridge serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flixhummel/mcduterm/internal/server"
	"github.com/flixhummel/mcduterm/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mcdu-bridge",
	Short: "Bridge simulator for mcdu-term",
	Long: `A bridge simulator serving simulated cabin systems datapoints.

The simulator speaks the same websocket protocol as a real cabin systems
bridge, so a terminal developed against it works unchanged against
aircraft hardware. Any number of terminals can connect; writes from one
are pushed to all of them.`,
	Version: version.Version,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var (
	host        string
	port        int
	wsPath      string
	logLevel    string
	instance    string
	noAdvertise bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bridge simulator",
	Long: `Start the bridge simulator and accept terminal connections.

The simulator advertises itself as "_mcdu-bridge._tcp" over mDNS unless
--no-advertise is given.`,
	Example: `  # Start with defaults
  mcdu-bridge serve

  # Custom port with debug logging
  mcdu-bridge serve --port 9000 --log-level debug

  # Without mDNS advertisement
  mcdu-bridge serve --no-advertise`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&host, "host", "", "Listen host (empty = all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", 8137, "Listen port")
	serveCmd.Flags().StringVar(&wsPath, "path", "/ws", "Websocket endpoint path")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&instance, "instance", "mcdu-bridge-sim", "mDNS instance name")
	serveCmd.Flags().BoolVar(&noAdvertise, "no-advertise", false, "Disable mDNS advertisement")
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.New(&server.Config{
		Host:      host,
		Port:      port,
		Path:      wsPath,
		LogLevel:  logLevel,
		Advertise: !noAdvertise,
		Instance:  instance,
	})
	if err != nil {
		return fmt.Errorf("failed to create simulator: %w", err)
	}
	return srv.Start()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mcdu-bridge %s (commit: %s)\n", version.Version, version.Commit)
	},
}
