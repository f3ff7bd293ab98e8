package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/games/escape"
	"github.com/vovakirdan/escape-arcade/internal/platform/tui"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/Right, A/D        - Move
  Shift+Arrow, Shift+A/D - Run
  Up/W                   - Jump (again mid-air for a double jump)
  Space                  - Throw felafel and run until released
  Enter                  - Start
  P                      - Pause
  R                      - Restart (after game over)
  Esc/B                  - Leave (on the intro, pause or game over screen)
  Ctrl+S                 - Save a screenshot to ~/.escape/screenshots
  Q/Ctrl+C               - Quit

Terminals do not report key releases, so a held key counts as released
once it stops repeating.

Difficulty options:
  easy   - Slow menahel, longer stuns
  normal - Starts at 30% of the scaling
  hard   - Starts at 70% of the scaling
  fixed  - No scaling at all

Examples:
  escape play
  escape play --difficulty hard
  escape play --config ./my-escape.yaml
  escape play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	_, err := tui.Run(escape.New(), store, terminalConfig(), tui.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalConfig builds the runtime config from the global flags and the
// current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run database. Runs are optional: on failure the
// game is played without saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("cannot close run database", "error", err)
	}
}
