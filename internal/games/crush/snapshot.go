package crush

import (
	platformcore "github.com/vovakirdan/tui-crush/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateTimeUp      GameStateType = "time_up"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Score       int
	Board       []string // One string per row, in the ASCII board format
	BombPresent bool
	Cursor      int
	Selected    int
	TicksLeft   int // Blitz clock; 0 in zen mode
	Stats       platformcore.RunStats
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateTimeUp
	case g.paused:
		state = StatePaused
	}

	left := 0
	if g.mode == ModeBlitz {
		left = g.clock.Left()
	}

	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Score:       g.session.Score(),
		Board:       g.session.Grid().Rows(),
		BombPresent: g.session.BombPresent(),
		Cursor:      g.cursor,
		Selected:    g.selected,
		TicksLeft:   left,
		Stats:       g.stats,
		State:       state,
	}
}
