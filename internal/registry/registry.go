// Package registry provides a global registry for game-mode factories.
// Modes register themselves in init() functions, so the platform can
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-crush/internal/core"
)

// ErrUnknownGame is returned by Create for IDs that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a playable mode. Modes hold pure logic; the platform owns input,
// timing and drawing to the terminal.
type Game interface {
	// ID names the mode in CLI arguments and in the leaderboard.
	ID() string
	Title() string

	// Reset starts a new run. The platform calls it once before the first
	// Step and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen that was cleared beforehand.
	Render(dst *core.Screen)

	State() core.GameState
}

// StatsReporter is implemented by games that track per-run counters.
type StatsReporter interface {
	Stats() core.RunStats
}

// Resizer is implemented by games that can adapt to a new terminal size
// without losing their state. Games without it are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Endless is implemented by games that never end on their own. The
// platform records their run when the player leaves.
type Endless interface {
	Endless() bool
}

// DifficultySetter is implemented by games with difficulty presets. It
// applies to the next Reset of that instance only.
type DifficultySetter interface {
	SetDifficulty(preset string)
}

// Describer is implemented by games that provide a one-line description.
type Describer interface {
	Description() string
}

// GameInfo describes a registered mode without creating one.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. It is meant for init functions and panics on a
// duplicate ID. The factory is called once to read the title and
// description.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of mode id. Unknown IDs yield an error
// wrapping ErrUnknownGame.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether mode id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
