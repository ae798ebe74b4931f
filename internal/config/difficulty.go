package config

import "math"

// DifficultyManager paces the blitz board: as the run progresses, by score
// or by elapsed ticks, the level rises from the configured initial level
// towards 1 and bombs spawn more often.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64 // Level at the beginning of a run, in [0, 1]
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		start: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// progress returns how far the run is towards max difficulty, in [0, 1],
// and false when progression is off.
func (d *DifficultyManager) progress(score, ticks int) (float64, bool) {
	if !d.cfg.Enabled {
		return 0, false
	}

	var done float64
	switch d.cfg.Progression.Type {
	case "score":
		done = float64(score)
	case "time":
		done = float64(ticks)
	default: // "none" or unknown
		return 0, false
	}

	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	return clampF(done/maxAt, 0.0, 1.0), true
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	p, ok := d.progress(score, ticks)
	if !ok {
		return d.start
	}
	return d.start + p*(1.0-d.start)
}

// BombInterval returns the bomb-spawn interval in seconds. It shrinks from
// base by up to Scaling.BombIntervalReduction as the level rises, and never
// drops below Scaling.MinBombSeconds (or base, if base is already lower).
func (d *DifficultyManager) BombInterval(base float64, score, ticks int) float64 {
	cut := clampF(d.cfg.Scaling.BombIntervalReduction, 0.0, 1.0) * d.Level(score, ticks)
	floor := math.Min(base, d.cfg.Scaling.MinBombSeconds)
	return math.Max(base*(1.0-cut), floor)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
