package config

import (
	_ "embed"
)

//go:embed defaults/crush.yaml
var defaultCrushYAML []byte

// DefaultCrushConfig returns the built-in configuration. It matches the
// embedded defaults/crush.yaml and is used when that file cannot be parsed.
func DefaultCrushConfig() CrushConfig {
	return CrushConfig{
		Board: BoardConfig{
			Width:  8,
			Colors: []string{"red", "yellow", "green", "blue", "purple", "orange"},
		},
		Scoring: ScoringConfig{
			PointsPerToken: 10,
			BombPoints:     30,
		},
		Timers: TimersConfig{
			BombSpawnSeconds: 30,
			SweepSeconds:     1,
		},
		Rules: RulesConfig{
			MaxCascadeIterations: 1000,
		},
		Blitz: BlitzConfig{
			DurationSeconds: 90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				BombIntervalReduction: 0.6,
				MinBombSeconds:        8,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCrushYAML
}
