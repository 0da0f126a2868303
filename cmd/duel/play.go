package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/duel"
	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

var (
	flagConfig string
	flagPreset string
	flagCPU    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match on a shared keyboard, or against the CPU with --cpu.

Controls:
  W/A/S/D      - Player 1 move      Arrows  - Player 2 move
  V            - Player 1 shoot     ,       - Player 2 shoot
  B            - Player 1 shield    .       - Player 2 shield (toggles)
  Space        - Next round (after a round ends)
  R            - Restart (after the match ends)
  Q/Ctrl+C     - Quit

Preset options:
  easy   - Fewer walls, more pickups, weaker CPU
  normal - Default balance
  hard   - More walls, fewer pickups, stronger CPU
  fixed  - Use the config file values unchanged

Examples:
  duel play
  duel play --cpu
  duel play --preset hard --cpu
  duel play --config ./my-duel.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagCPU, "cpu", false, "Player 2 is controlled by the CPU")
}

func runPlay(cmd *cobra.Command, args []string) {
	duelCfg, err := config.LoadDuel(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagPreset != "" {
		preset := config.DifficultyPreset(flagPreset)
		if !config.ValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q (easy, normal, hard, fixed)\n", flagPreset)
			os.Exit(1)
		}
		config.ApplyDuelPreset(&duelCfg, preset)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := duel.New(duelCfg)
	game.SetCPUEnabled(flagCPU)

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
