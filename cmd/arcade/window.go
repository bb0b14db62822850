package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trashpanda/internal/games/trashpanda"
	"github.com/vovakirdan/trashpanda/internal/platform/desktop"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play Trash Panda in a desktop window",
	Long: `Open a desktop window and play with sprites and sound.

Controls:
  Left/A, Right/D  - Move
  Click or tap     - Move toward that half of the window
  P/Space          - Pause/resume
  M                - Mute/unmute sound
  Esc/Q            - Close the window

Examples:
  arcade window
  arcade window --width 1024 --height 768
  arcade window --difficulty easy`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	tuning, tpCfg := trashpanda.LoadTuning()

	store := openStore()
	err := desktop.Run(desktop.Config{
		Width:    flagWidth,
		Height:   flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Muted:    flagMute || tpCfg.Audio.Muted,
		Tuning:   tuning,
		Store:    store,
		Player:   playerName(),
		Logger:   appLogger,
	})
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
