package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/games/crush"
)

var (
	flagSimBoards    int
	flagSimSwaps     int
	flagSimBombEvery int
	flagSimShowBoard bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play random boards headless and print statistics",
	Long: `Deal boards from the loaded config and play random swaps on them without
a terminal UI. Prints score, cascade and cap statistics. Useful to check a
custom crush.yaml before playing it.

Examples:
  crush simulate
  crush simulate --boards 100 --swaps 500 --seed 42
  crush simulate --config ./wide.yaml --show-board`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimBoards, "boards", 10, "Number of boards to deal")
	simulateCmd.Flags().IntVar(&flagSimSwaps, "swaps", 200, "Random swap attempts per board")
	simulateCmd.Flags().IntVar(&flagSimBombEvery, "bomb-every", 30, "Spawn a bomb every N attempts (0 = no bombs)")
	simulateCmd.Flags().BoolVar(&flagSimShowBoard, "show-board", false, "Print the last board")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimBoards <= 0 || flagSimSwaps < 0 {
		return fmt.Errorf("--boards must be positive and --swaps not negative")
	}
	if err := loadConfig(); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	rep := crush.Simulate(crush.SimOptions{
		Rules:     crush.GetConfig().CoreRules(),
		Seed:      seed,
		Boards:    flagSimBoards,
		Swaps:     flagSimSwaps,
		BombEvery: flagSimBombEvery,
	})
	logger.Debug("simulation done", "boards", rep.Boards, "elapsed", time.Since(start))

	fmt.Printf("%-20s%d\n", "Seed:", seed)
	fmt.Printf("%-20s%d\n", "Boards:", rep.Boards)
	fmt.Printf("%-20s%d of %d attempts\n", "Swaps applied:", rep.Swaps, rep.Attempts)
	fmt.Printf("%-20s%d (%.1f%%)\n", "Productive swaps:", rep.Productive, rep.ProductiveRate()*100)
	fmt.Printf("%-20s%d\n", "Bombs popped:", rep.Bombs)
	fmt.Printf("%-20s%.1f\n", "Average score:", rep.AverageScore())
	fmt.Printf("%-20s%d\n", "Best score:", rep.BestScore)
	fmt.Printf("%-20s%d\n", "Longest chain:", rep.BestChain)
	fmt.Printf("%-20s%d\n", "Longest run:", rep.LongestRun)
	fmt.Printf("%-20s%d\n", "Cascade iterations:", rep.Iterations)
	fmt.Printf("%-20s%d\n", "Capped cascades:", rep.Capped)

	if flagSimShowBoard {
		fmt.Println()
		fmt.Println(strings.Join(rep.FinalBoards, "\n"))
	}

	if rep.Unsettled > 0 {
		return fmt.Errorf("%d operations left runs on the board", rep.Unsettled)
	}
	return nil
}
