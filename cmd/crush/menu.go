package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/audio"
	"github.com/vovakirdan/tui-crush/internal/platform/tui"
	"github.com/vovakirdan/tui-crush/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to pick the difficulty and
Enter to play. After a run ends, B or Esc returns to the menu.

Controls:
  Up/Down/j/k     - Navigate modes
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  crush menu
  crush menu --fps 30
  crush menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty the menu starts on")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := parsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if err := loadConfig(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	restore := redirectLog()
	defer restore()

	sound := audio.New(flagMute, logger)
	defer sound.Close()

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}

		// Keep size changes and the chosen difficulty
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", err)
			continue
		}
		if ds, ok := game.(registry.DifficultySetter); ok {
			ds.SetDifficulty(string(preset))
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		opts := tui.Options{
			Store:  store,
			Sound:  sound,
			Logger: logger,
			InMenu: true,
		}
		if err := tui.Run(game, cfg, opts); err != nil {
			logger.Error("error running game", "game", menuResult.GameID, "err", err)
		}

		// Loop back to menu
	}
}
