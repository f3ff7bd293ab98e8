// escape is a lunchroom platformer: outrun the menahel to the far door,
// jumping over tables and stunning him with felafel.
//
// Usage:
//
//	escape play              - Play in the terminal
//	escape menu              - Start menu with play and high scores
//	escape gui               - Play in a window
//	escape serve             - Start SSH server for remote play
//	escape scores            - Show the best runs
//	escape config            - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.escape/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Where logs go (default: ~/.escape/escape.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/games/escape"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "escape",
	Short: "Escape the Menahel - a lunchroom chase in your terminal",
	Long: `Escape the Menahel is a side-view platformer. Run across the
lunchroom toward the far door while the menahel chases you. Jump over
tables, double jump, and throw felafel to stun him for a while.

Available commands:
  play     - Play in the terminal
  menu     - Interactive menu with high scores
  gui      - Play in a window
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the default config

Examples:
  escape play
  escape play --difficulty hard
  escape gui --seed 42
  escape serve --ssh :2222
  escape scores --limit 20`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.escape/scores.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.escape/escape.log", "Log file path (\"-\" for stderr)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup opens the log and checks the game config before any command runs,
// so a bad --config fails here instead of silently falling back to defaults.
func setup(cmd *cobra.Command, _ []string) error {
	if err := openLog(); err != nil {
		return err
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	escape.SetConfigPath(flagConfig)
	escape.SetDifficultyPreset(flagDifficulty)
	if cmd.Name() == configCmd.Name() || cmd.Name() == scoresCmd.Name() {
		return nil
	}

	cfg, err := escape.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("config loaded", "path", flagConfig, "difficulty", flagDifficulty)
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	closeLog()
}
