// crush is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	crush list              - List available modes
//	crush play [mode]       - Play a mode (default: crush)
//	crush menu              - Start menu to pick modes interactively
//	crush serve             - Start SSH server for remote play
//	crush scores [mode]     - Show high scores for a mode
//	crush simulate          - Play random boards headless and print statistics
//	crush config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.crush/scores.db)
//	--config <path>      - Use a custom crush.yaml
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-crush/internal/games/crush"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crush",
	Short: "Candy Crush - a match-3 puzzle in your terminal",
	Long: `Candy Crush is a terminal match-3 game. Swap neighboring candies to
line up three or more of the same color, chain cascades and pop the bomb
when it shows up.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive mode picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Headless random play for engine statistics
  config    - Print the effective configuration

Examples:
  crush play
  crush play crush_blitz --difficulty hard
  crush menu
  crush serve --ssh :2222
  crush scores crush_blitz`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom crush.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
