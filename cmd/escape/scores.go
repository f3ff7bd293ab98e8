package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/escape-arcade/internal/games/escape"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, ordered by score and then by level reached,
followed by overall statistics.

Examples:
  escape scores
  escape scores --limit 25
  escape scores --db ./scores.db
  escape scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearRuns(escape.ID); err != nil {
			return err
		}
		logger.Info("runs cleared", "game", escape.ID)
		fmt.Fprintln(out, "All runs deleted.")
		return nil
	}

	runs, err := store.TopRuns(escape.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintln(out, "Best Runs - Escape the Menahel")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'escape play' to set the first score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-5s  %-6s  %-12s  %s\n", "Rank", "Score", "Level", "Stuns", "Time", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-5d  %-5d  %-6s  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Stuns, runDuration(r.Ticks), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(escape.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Best level: %d  Average: %.1f  Total stuns: %d\n",
		stats.RunsCount, stats.HighScore, stats.BestLevel, stats.AvgScore, stats.TotalStuns)
	return nil
}

// runDuration converts a tick count at the default rate to wall time.
func runDuration(ticks int) time.Duration {
	return (time.Duration(ticks) * time.Second / 60).Round(time.Second)
}
