package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crush/internal/games/crush/core"
)

// FileName is the config file looked up in the search directories.
const FileName = "crush.yaml"

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads the crush configuration.
// Search order: customPath -> ~/.crush/configs/crush.yaml ->
// ./configs/crush.yaml -> embedded default -> DefaultCrushConfig.
//
// A custom path that cannot be read or parsed is an error. Files found in
// the search directories are skipped when they fail to parse. The result is
// validated before it is returned.
func Load(customPath string) (CrushConfig, Source, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, cfg.Validate()
	}

	if p := userConfigPath(FileName); p != "" {
		if cfg, err := readFile(p); err == nil {
			return cfg, SourceUser, cfg.Validate()
		}
	}

	if cfg, err := readFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, SourceLocal, cfg.Validate()
	}

	cfg := DefaultCrushConfig()
	if err := yaml.Unmarshal(defaultCrushYAML, &cfg); err != nil {
		return DefaultCrushConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

// readFile parses a YAML file over the built-in defaults, so a file only
// needs the keys it changes.
func readFile(path string) (CrushConfig, error) {
	cfg := DefaultCrushConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crush", "configs", filename)
}

// Validate reports every problem found in the configuration.
func (c CrushConfig) Validate() error {
	var errs []error

	if c.Board.Width < core.MinRun {
		errs = append(errs, fmt.Errorf("board.width must be at least %d, got %d", core.MinRun, c.Board.Width))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if c.Scoring.PointsPerToken <= 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_token must be positive"))
	}
	if c.Scoring.BombPoints <= 0 {
		errs = append(errs, fmt.Errorf("scoring.bomb_points must be positive"))
	}
	if c.Timers.BombSpawnSeconds <= 0 {
		errs = append(errs, fmt.Errorf("timers.bomb_spawn_seconds must be positive"))
	}
	if c.Timers.SweepSeconds <= 0 {
		errs = append(errs, fmt.Errorf("timers.sweep_seconds must be positive"))
	}
	if c.Blitz.DurationSeconds <= 0 {
		errs = append(errs, fmt.Errorf("blitz.duration_seconds must be positive"))
	}
	if c.Rules.MaxCascadeIterations < 0 {
		errs = append(errs, fmt.Errorf("rules.max_cascade_iterations must not be negative"))
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not score, time or none", c.Difficulty.Progression.Type))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Palette resolves board.colors. It rejects unknown names, duplicates and
// palettes that could never form a run-free board.
func (c CrushConfig) Palette() ([]core.Color, error) {
	if len(c.Board.Colors) < MinColors || len(c.Board.Colors) > core.MaxColors {
		return nil, fmt.Errorf("board.colors must list %d to %d colors, got %d", MinColors, core.MaxColors, len(c.Board.Colors))
	}

	seen := make(map[core.Color]bool, len(c.Board.Colors))
	palette := make([]core.Color, 0, len(c.Board.Colors))
	for _, name := range c.Board.Colors {
		color, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("board.colors: unknown color %q", name)
		}
		if seen[color] {
			return nil, fmt.Errorf("board.colors: %s listed twice", color)
		}
		seen[color] = true
		palette = append(palette, color)
	}
	return palette, nil
}

// MinColors is the smallest palette accepted by Validate.
const MinColors = 3

// CoreRules converts the configuration to engine rules.
func (c CrushConfig) CoreRules() core.Rules {
	palette, err := c.Palette()
	if err != nil {
		palette = core.DefaultPalette()
	}
	return core.Rules{
		Width:                c.Board.Width,
		Palette:              palette,
		PointsPerToken:       c.Scoring.PointsPerToken,
		BombPoints:           c.Scoring.BombPoints,
		MaxCascadeIterations: c.Rules.MaxCascadeIterations,
		LegacyScanBounds:     c.Rules.LegacyScanBounds,
		WrapBombEdges:        c.Rules.WrapBombEdges,
	}
}

// presetColors are appended to or trimmed from the palette by presets.
var presetColors = []string{"red", "yellow", "green", "blue", "purple", "orange", "cyan", "white"}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CrushConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Board.Colors = resizePalette(cfg.Board.Colors, 5)
		cfg.Blitz.DurationSeconds = 120
	case DifficultyHard:
		cfg.Board.Colors = resizePalette(cfg.Board.Colors, 7)
		cfg.Blitz.DurationSeconds = 60
	}
}

// resizePalette trims colors to n entries, or extends it with unused
// colors from presetColors.
func resizePalette(colors []string, n int) []string {
	if len(colors) >= n {
		return append([]string(nil), colors[:n]...)
	}

	out := append([]string(nil), colors...)
	used := make(map[core.Color]bool, len(colors))
	for _, name := range colors {
		if c, ok := core.ParseColor(name); ok {
			used[c] = true
		}
	}
	for _, name := range presetColors {
		if len(out) == n {
			break
		}
		c, _ := core.ParseColor(name)
		if !used[c] {
			out = append(out, name)
			used[c] = true
		}
	}
	return out
}
