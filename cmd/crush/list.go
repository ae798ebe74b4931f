package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/registry"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode with how often it was played and its best score.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return nil
	}

	// Play counts are a bonus; the list works without a database
	stats := map[string]*storage.GameStats{}
	if store := openStore(); store != nil {
		defer store.Close()
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		} else {
			logger.Warn("cannot read stats", "err", err)
		}
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "Title", "Runs", "Best", "Description").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, g := range modes {
		runs, best := "-", "-"
		if st := stats[g.ID]; st != nil {
			runs, best = strconv.Itoa(st.GamesCount), strconv.Itoa(st.HighScore)
		}
		t.Row(g.ID, g.Title, runs, best, g.Description)
	}

	fmt.Println(t)
	fmt.Println("Run 'crush play <id>' to play a mode.")
	return nil
}
