// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// CrushConfig contains all configuration for the match-3 game modes.
type CrushConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timers     TimersConfig     `yaml:"timers"`
	Rules      RulesConfig      `yaml:"rules"`
	Blitz      BlitzConfig      `yaml:"blitz"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board size and the candy palette.
type BoardConfig struct {
	Width  int      `yaml:"width"`
	Colors []string `yaml:"colors"` // Color names or letters, e.g. "red" or "r"
}

// ScoringConfig defines the points awarded by clears.
type ScoringConfig struct {
	PointsPerToken int `yaml:"points_per_token"`
	BombPoints     int `yaml:"bomb_points"`
}

// TimersConfig defines the periodic board events, in seconds.
type TimersConfig struct {
	BombSpawnSeconds float64 `yaml:"bomb_spawn_seconds"`
	SweepSeconds     float64 `yaml:"sweep_seconds"`
}

// RulesConfig holds engine switches.
type RulesConfig struct {
	MaxCascadeIterations int  `yaml:"max_cascade_iterations"`
	LegacyScanBounds     bool `yaml:"legacy_scan_bounds"`
	WrapBombEdges        bool `yaml:"wrap_bomb_edges"`
}

// BlitzConfig defines the timed mode.
type BlitzConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// BombIntervalReduction is the fraction of the bomb-spawn interval
	// removed at max difficulty.
	BombIntervalReduction float64 `yaml:"bomb_interval_reduction"`

	// MinBombSeconds is the floor for the shortened interval.
	MinBombSeconds float64 `yaml:"min_bomb_seconds"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset. The empty string is normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
