package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// RunStats are per-run counters reported alongside the score.
type RunStats struct {
	Swaps     int // Applied swap requests
	Crushes   int // Crush signals: cleared runs and bomb blasts
	Bombs     int // Bombs triggered
	BestChain int // Longest cascade chain of a single operation
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Crushes counts crush signals emitted during this tick. The platform
	// plays one feedback sound per signal.
	Crushes int
}
