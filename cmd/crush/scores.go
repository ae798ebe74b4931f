package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/games/crush"
	"github.com/vovakirdan/tui-crush/internal/registry"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the specified mode (default: crush),
followed by the totals of every recorded run.

Examples:
  crush scores
  crush scores crush_blitz --limit 20
  crush scores crush --clear`,
	Args:              modeArg,
	ValidArgsFunction: completeMode,
	RunE:              runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := string(crush.ModeZen)
	if len(args) > 0 {
		gameID = args[0]
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w\nRun 'crush list' to see available modes", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs of %s.\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit > 0 {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crush play %s' to set the first high score!\n", gameID)
		return nil
	}

	printScores(scores)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Longest chain: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestChain)
	fmt.Printf("Candies crushed: %d  Bombs popped: %d\n", stats.TotalCrushes, stats.TotalBombs)
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func printScores(scores []storage.ScoreEntry) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Score", "Player", "Chain", "Swaps", "Crushes", "Bombs", "Time", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			player,
			strconv.Itoa(e.BestChain),
			strconv.Itoa(e.Swaps),
			strconv.Itoa(e.Crushes),
			strconv.Itoa(e.Bombs),
			e.Duration.String(),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)
}
