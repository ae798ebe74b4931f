package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/audio"
	"github.com/vovakirdan/tui-crush/internal/games/crush"
	"github.com/vovakirdan/tui-crush/internal/platform/tui"
	"github.com/vovakirdan/tui-crush/internal/registry"
)

var (
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: crush).

Modes:
  crush        - Zen: no clock, the run is saved when you quit
  crush_blitz  - Blitz: score as much as you can before time runs out

Controls:
  Arrows/WASD  - Move the cursor (with a candy picked: swap that way)
  Space        - Pick a candy, or swap with the picked one
  Enter        - Pop the bomb under the cursor
  Mouse        - Drag a candy onto a neighbor, swipe, or click the bomb
  P            - Pause
  R            - Restart (after time up)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 colors, longer blitz clock
  normal - Defaults from the config
  hard   - 7 colors, shorter blitz clock, bombs speed up sooner
  fixed  - Bomb interval never shortens

Examples:
  crush play
  crush play crush_blitz
  crush play crush_blitz --difficulty hard
  crush play --mute
  crush play --config ./my-crush.yaml`,
	Args:              modeArg,
	ValidArgsFunction: completeMode,
	RunE:              runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(crush.ModeZen)
	if len(args) > 0 {
		gameID = args[0]
	}

	preset, err := parsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if err := loadConfig(); err != nil {
		return err
	}
	crush.SetDifficultyPreset(preset)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w\nRun 'crush list' to see available modes", err)
	}

	// Open score storage; the game still works without it
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	restore := redirectLog()
	defer restore()

	sound := audio.New(flagMute, logger)
	defer sound.Close()

	opts := tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
	}
	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
