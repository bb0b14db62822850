package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trashpanda/internal/audio"
	"github.com/vovakirdan/trashpanda/internal/core"
	"github.com/vovakirdan/trashpanda/internal/platform/tui"
	"github.com/vovakirdan/trashpanda/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game, trashpanda by default.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Click       - Move toward that half of the screen
  P/Space     - Pause/resume
  M           - Mute/unmute sound
  Ctrl+S      - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start
  normal - Default ramp
  hard   - Faster, busier start
  fixed  - No ramp, stays at the starting values

Examples:
  arcade play
  arcade play trashpanda --difficulty hard
  arcade play --mute --seed 42
  arcade play --config ./my-trashpanda.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	sound, closeSound := openSpeaker()

	runErr := tui.Run(game, tui.Options{
		Store:  store,
		Config: runtimeConfig(),
		Audio:  sound,
		Player: playerName(),
		Logger: appLogger,
	})

	// Clean up before potential exit
	closeSound()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openSpeaker starts the sound device. Without one the game plays silently.
func openSpeaker() (core.AudioFeedback, func()) {
	speaker := audio.NewSpeaker()
	if err := speaker.Initialize(); err != nil {
		appLogger.Warn("sound disabled", "err", err)
		return core.NopAudio{}, func() {}
	}
	return speaker, speaker.Close
}
