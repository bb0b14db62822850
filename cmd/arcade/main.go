// arcade runs Trash Panda, a catch-the-falling-trash game, in the terminal,
// in a desktop window or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game in the terminal (default: trashpanda)
//	arcade menu              - Title menu with high scores and sound toggle
//	arcade window            - Play in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Write logs to a file
//	--verbose          - Log debug events
//	--mute             - Start with sound muted
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trashpanda/internal/core"
	"github.com/vovakirdan/trashpanda/internal/games/trashpanda"
	"github.com/vovakirdan/trashpanda/internal/storage"
)

const defaultGame = "trashpanda"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagVerbose    bool
	flagMute       bool
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Trash Panda - catch the trash, dodge the rest",
	Long: `Trash Panda puts a raccoon at the bottom of the screen. Falling trash
is worth a point; touching a falling enemy ends the run and a new one starts
right away. Things fall faster and more often the longer you survive.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  menu     - Title menu with high scores
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade play
  arcade play --difficulty hard --mute
  arcade window --seed 42
  arcade serve --ssh :2222
  arcade scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger(cmd.Name() == "serve" || cmd.Name() == "window")
		if err != nil {
			return err
		}
		appLogger = logger
		trashpanda.SetLogger(logger)
		trashpanda.SetConfigPath(flagConfig)
		trashpanda.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagVerbose, "verbose", false, "Log debug events")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound muted")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// appLogger is set before any command runs.
var appLogger = log.New(io.Discard)

// newLogger builds the process logger. Terminal games own stdout and stderr,
// so without --log-file they only log when toStderr is set.
func newLogger(toStderr bool) (*log.Logger, error) {
	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Muted = flagMute
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		appLogger.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}

// playerName is the local account name stored with scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.DefaultPlayer
}

// gameArg returns the game named on the command line or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
