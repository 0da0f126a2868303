// duel is a two-player real-time arena duel played in the terminal.
//
// Usage:
//
//	duel play                - Play a match (local two-player or vs CPU)
//	duel serve               - Start SSH server for remote play
//	duel results             - Show match history and stats
//	duel config              - Print the default game configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible arenas
//	--db <path>     - Set database path (default: ~/.duel/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Duel - Real-time arena duels in your terminal",
	Long: `Duel is a terminal-based two-player arena game. Race to cross the
centerline while slowing your opponent with projectiles. Shields deflect
shots back and grant stacking speed boosts.

Available commands:
  play     - Play a match (shared keyboard or vs CPU)
  serve    - Start SSH server for remote play
  results  - View match history and stats
  config   - Print the default game configuration

Examples:
  duel play
  duel play --cpu
  duel play --preset hard
  duel serve --ssh :2222
  duel results
  duel config > my_config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duel/matches.db", "Path to match database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}
