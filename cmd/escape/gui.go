package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Open a window and play with real key presses and releases.

Controls:
  Left/Right, A/D - Move (hold Shift to run)
  Up/W            - Jump (again mid-air for a double jump)
  Space           - Throw felafel and run until released
  Enter           - Start
  P               - Pause
  R               - Restart (after game over)
  Esc/Q           - Quit

Examples:
  escape gui
  escape gui --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func runGUI(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return gui.Run(store, cfg, logger)
}
