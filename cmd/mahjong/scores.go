package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mahjong/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, ranked by the highest level cleared.

Examples:
  mahjong scores
  mahjong scores --limit 25
  mahjong scores --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	newGame, err := loadGame()
	if err != nil {
		fatalf("%v", err)
	}
	game := newGame()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening results database: %v", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(game.ID(), flagLimit)
	if err != nil {
		fatalf("retrieving runs: %v", err)
	}

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No levels cleared yet.")
		fmt.Println()
		fmt.Println("Play 'mahjong play' and clear a board to get on the list!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Level", "Clears", "Last played")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "------", "-----------")

	for i, r := range runs {
		dateStr := r.LastPlayed.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %s\n", i+1, r.BestLevel, r.Clears, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(game.ID()); err == nil {
		fmt.Printf("%d runs, %d levels cleared, best level %d\n",
			stats.Runs, stats.LevelsCleared, stats.BestLevel)
	}
}
