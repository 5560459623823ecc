package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flixhummel/mcduterm/internal/discovery"
	"github.com/flixhummel/mcduterm/internal/logging"
	"github.com/flixhummel/mcduterm/internal/tui"
)

var (
	bridgeURL   string
	scanTimeout int
	logFile     string
)

func init() {
	runCmd.Flags().StringVar(&bridgeURL, "bridge", "", "Bridge websocket URL (skips discovery, e.g. ws://10.0.0.7:8137/ws)")
	runCmd.Flags().IntVar(&scanTimeout, "timeout", 10, "Bridge discovery timeout in seconds")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", 10, "Scan timeout in seconds")
}

// runCmd starts the terminal UI
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the terminal",
	Long: `Connect to a bridge server and start the terminal display.

Without --bridge the local network is scanned for bridge advertisements and
the first one found is used. While the display owns the terminal window,
logs go to the file given by --log-file (or nowhere).`,
	Example: `  # Discover a bridge and connect
  mcdu-term run

  # Connect to an explicit bridge
  mcdu-term run --bridge ws://10.0.0.7:8137/ws

  # Debug a session
  MCDU_LOG_LEVEL=debug mcdu-term run --log-file /tmp/mcdu.log`,
	RunE: runTerminal,
}

func runTerminal(cmd *cobra.Command, args []string) error {
	// The display takes over the whole window; refuse to start in a pipe.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	// Stderr belongs to the display from here on.
	if logFile != "" {
		if err := logging.InitializeToFile("", logFile); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
	} else {
		// Silent unless MCDU_LOG_LEVEL asks for output.
		if err := logging.InitializeFromEnv(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
	}

	url := bridgeURL
	if url == "" {
		fmt.Printf("Scanning for bridges (timeout: %ds)...\n", scanTimeout)
		scanner := discovery.NewScanner()
		scanner.Timeout = time.Duration(scanTimeout) * time.Second
		bridges, err := scanner.Scan(cmd.Context())
		if err != nil {
			return fmt.Errorf("bridge discovery failed: %w", err)
		}
		if len(bridges) == 0 {
			return fmt.Errorf("no bridge found; start one with 'mcdu-bridge serve' or pass --bridge")
		}
		url = bridges[0].URL()
		fmt.Printf("Connecting to %s\n", bridges[0])
	}

	return tui.Run(cmd.Context(), tui.Options{BridgeURL: url})
}

// discoverCmd lists bridges on the network
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Scan for bridge servers on the network",
	Long: `Scan for bridge servers using mDNS/DNS-SD discovery.

This command listens for bridge advertisements and lists every bridge found
with its address and metadata.`,
	Example: `  # Scan for 10 seconds (default)
  mcdu-term discover

  # Quick 3-second scan
  mcdu-term discover --timeout 3`,
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, args []string) error {
	fmt.Printf("Scanning for bridges (timeout: %ds)...\n\n", scanTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second
	bridges, err := scanner.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(bridges) == 0 {
		fmt.Println("No bridges found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Start a simulator with 'mcdu-bridge serve'")
		fmt.Println("  - Check that mDNS (UDP 5353) is allowed on this network")
		fmt.Println("  - Use 'mcdu-term run --bridge <url>' to connect directly")
		return nil
	}

	fmt.Printf("Found %d bridge(s):\n\n", len(bridges))
	for i, b := range bridges {
		fmt.Printf("%d. %s\n", i+1, b.Name)
		fmt.Printf("   URL:  %s\n", b.URL())
		if len(b.Metadata) > 0 {
			fmt.Printf("   TXT:  %v\n", b.Metadata)
		}
		fmt.Println()
	}

	fmt.Println("Use 'mcdu-term run --bridge <url>' to connect")
	return nil
}
