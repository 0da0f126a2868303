package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show match history and stats",
	Long: `Display recent match results and aggregate statistics.

Examples:
  duel results
  duel results --limit 20
  duel results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent matches to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	records, err := store.RecentMatches(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'duel play' to record the first match!")
		return
	}

	fmt.Printf("  %-7s  %-7s  %-7s  %-5s  %-9s  %s\n", "Winner", "Score", "Rounds", "CPU", "Duration", "Date")
	fmt.Printf("  %-7s  %-7s  %-7s  %-5s  %-9s  %s\n", "------", "-----", "------", "---", "--------", "----")

	for _, rec := range records {
		vsCPU := "no"
		if rec.VsCPU {
			vsCPU = "yes"
		}
		fmt.Printf("  P%-6d  %d - %-3d  %-7d  %-5s  %3dm %02ds   %s\n",
			rec.Winner, rec.Score1, rec.Score2, rec.Rounds, vsCPU,
			rec.DurationSecs/60, rec.DurationSecs%60,
			rec.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Total matches: %d (P1 wins: %d, P2 wins: %d, vs CPU: %d)\n",
		stats.MatchCount, stats.P1Wins, stats.P2Wins, stats.CPUMatches)
	fmt.Printf("Average match length: %.0fs\n", stats.AvgDuration)
}
