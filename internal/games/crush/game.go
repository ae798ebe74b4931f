// Package crush provides the match-3 candy board for the platform.
// The board rules live in the core subpackage; this package adds the
// keyboard and mouse gestures, the bomb and sweep timers, the blitz clock
// and the screen rendering.
package crush

import (
	"math/rand"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-crush/internal/config"
	platformcore "github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush/core"
	"github.com/vovakirdan/tui-crush/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeZen   Mode = "crush"       // Endless; the run ends when the player quits
	ModeBlitz Mode = "crush_blitz" // Timed; the run ends when the clock runs out
)

// flashSeconds is how long cleared cells stay highlighted.
const flashSeconds = 0.25

// Game implements the match-3 board as a platform game.
type Game struct {
	mode Mode
	cfg  config.CrushConfig

	rng        *rand.Rand
	session    *core.Session
	difficulty *config.DifficultyManager
	gesture    *Gesture

	// Timers
	tick       uint64
	tickRate   int
	bombTimer  Ticker
	sweepTimer Ticker
	clock      Countdown // Blitz only

	// Selection state
	cursor   int // Keyboard cursor cell
	selected int // Picked-up cell, -1 when none

	// Feedback
	flash      *intmap.Map[int, int] // Cell -> ticks left highlighted
	flashTicks int
	crushes    int // Crush signals emitted during the current Step
	stats      platformcore.RunStats
	lastPoints int // Points of the last player operation, for the HUD

	// Screen dimensions
	screenW int
	screenH int

	// Rendering layout
	cellW     int // Width of each board cell in terminal chars
	cellH     int // Height of each board cell in terminal lines
	hudHeight int
	boardX    int
	boardY    int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool

	preset    config.DifficultyPreset // Per-instance override, see SetDifficulty
	hasPreset bool
}

// Package-level variables for configuration
var (
	baseConfig     = config.DefaultCrushConfig()
	selectedPreset config.DifficultyPreset // Empty keeps the config as loaded
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.CrushConfig) {
	baseConfig = cfg
}

// GetConfig returns the configuration new games start from.
func GetConfig() config.CrushConfig {
	return baseConfig
}

// SetDifficultyPreset selects a preset applied on top of the configuration
// at every Reset. The empty preset applies nothing.
func SetDifficultyPreset(p config.DifficultyPreset) {
	selectedPreset = p
}

// GetDifficultyPreset returns the currently selected preset.
func GetDifficultyPreset() config.DifficultyPreset {
	return selectedPreset
}

// New creates a new zen mode game.
func New() *Game {
	return &Game{mode: ModeZen, hudHeight: 3}
}

// NewBlitz creates a new timed game.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz, hudHeight: 3}
}

func init() {
	registry.Register(string(ModeZen), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeBlitz), func() registry.Game {
		return NewBlitz()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Candy Crush (Blitz)"
	}
	return "Candy Crush"
}

// Description returns a one-line summary for menus and `crush list`.
func (g *Game) Description() string {
	if g.mode == ModeBlitz {
		return "Crush as many candies as you can before the clock runs out"
	}
	return "Endless board: swap candies, crush runs of three, pop the bombs"
}

// Endless reports whether the mode runs until the player quits.
func (g *Game) Endless() bool {
	return g.mode == ModeZen
}

// SetDifficulty overrides the package preset for this game. Unknown names
// are ignored.
func (g *Game) SetDifficulty(name string) {
	if p, ok := config.ParsePreset(name); ok {
		g.preset = p
		g.hasPreset = true
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	preset := selectedPreset
	if g.hasPreset {
		preset = g.preset
	}
	g.cfg = baseConfig
	if preset != "" {
		config.ApplyPreset(&g.cfg, preset)
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.stats = platformcore.RunStats{}
	g.crushes = 0
	g.lastPoints = 0

	g.session = core.NewSession(g.cfg.CoreRules(), g.rng)
	g.session.SetFeedback(g.onCrush)
	g.session.Reset()

	width := g.session.Width()
	g.gesture = NewGesture(width)
	g.cursor = (width/2)*width + width/2
	g.selected = -1

	g.flash = intmap.New[int, int](width * width)
	g.flashTicks = TicksFor(flashSeconds, g.tickRate)

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.bombTimer = NewTicker(g.bombInterval(), g.tickRate)
	g.sweepTimer = NewTicker(g.cfg.Timers.SweepSeconds, g.tickRate)
	if g.mode == ModeBlitz {
		g.clock = NewCountdown(g.cfg.Blitz.DurationSeconds, g.tickRate)
	}

	g.calculateLayout()
}

// Resize adapts the layout to a new terminal size, keeping the board.
func (g *Game) Resize(w, h int) {
	if g.session == nil {
		return
	}
	g.screenW = w
	g.screenH = h
	g.gesture.Cancel()
	g.calculateLayout()
}

// bombInterval returns the current bomb-spawn interval in seconds. Blitz
// shortens it as the score rises.
func (g *Game) bombInterval() float64 {
	base := g.cfg.Timers.BombSpawnSeconds
	if g.mode != ModeBlitz || g.difficulty == nil {
		return base
	}
	return g.difficulty.BombInterval(base, g.session.Score(), int(g.tick))
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.crushes = 0

	if g.tooSmall {
		return g.result()
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		g.gesture.Cancel()
	}
	if g.paused || g.gameOver {
		return g.result()
	}

	g.decayFlash()

	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}
	g.handleKeys(in)

	if g.sweepTimer.Advance() {
		g.apply(g.session.ResolveCascade())
	}
	if g.bombTimer.Advance() {
		g.session.SpawnBomb()
		g.bombTimer.SetPeriod(g.bombInterval(), g.tickRate)
	}

	if g.mode == ModeBlitz && g.clock.Advance() {
		g.gameOver = true
		g.selected = -1
		g.gesture.Cancel()
	}

	return g.result()
}

func (g *Game) result() platformcore.StepResult {
	return platformcore.StepResult{State: g.State(), Crushes: g.crushes}
}

// handleKeys moves the cursor, or swaps the picked-up candy with its
// neighbor in the pressed direction.
func (g *Game) handleKeys(in platformcore.InputFrame) {
	dirs := []struct {
		action platformcore.Action
		dx, dy int
	}{
		{platformcore.ActionUp, 0, -1},
		{platformcore.ActionDown, 0, 1},
		{platformcore.ActionLeft, -1, 0},
		{platformcore.ActionRight, 1, 0},
	}

	width := g.session.Width()
	for _, d := range dirs {
		if !in.Has(d.action) {
			continue
		}
		if g.selected >= 0 {
			if target, ok := Swipe(width, g.selected, d.dx, d.dy); ok {
				g.swap(SwapRequest{From: g.selected, To: target})
			}
			g.selected = -1
			continue
		}
		row := platformcore.Clamp(g.cursor/width+d.dy, 0, width-1)
		col := platformcore.Clamp(g.cursor%width+d.dx, 0, width-1)
		g.cursor = row*width + col
	}

	if in.Has(platformcore.ActionSelect) || in.Has(platformcore.ActionConfirm) {
		g.tap(g.cursor)
	}
}

// handlePointer feeds one mouse event to the gesture tracker.
func (g *Game) handlePointer(ev platformcore.PointerEvent) {
	cell := g.cellAt(ev.X, ev.Y)

	switch ev.Kind {
	case platformcore.PointerPress:
		g.gesture.Press(cell, ev.X, ev.Y)
		if cell >= 0 {
			g.cursor = cell
		}
	case platformcore.PointerMotion:
		if g.gesture.Active() && cell >= 0 {
			g.cursor = cell
		}
	case platformcore.PointerRelease:
		res := g.gesture.Release(cell, ev.X, ev.Y, g.cellW, g.cellH)
		switch res.Kind {
		case GestureTap:
			g.tap(res.Cell)
		case GestureSwap:
			g.selected = -1
			g.swap(res.Swap)
		}
	}
}

// tap handles a click or select key on a cell. A bomb is triggered. A
// candy is picked up, or swapped with the picked-up neighbor.
func (g *Game) tap(cell int) {
	if g.session.Token(cell).IsBomb() {
		g.selected = -1
		d := g.session.TriggerBomb(cell)
		if d.Applied {
			g.stats.Bombs++
			g.apply(d)
		}
		return
	}

	switch {
	case g.selected < 0:
		if !g.session.Token(cell).IsEmpty() {
			g.selected = cell
		}
	case g.selected == cell:
		g.selected = -1
	case core.Adjacent(g.session.Width(), g.selected, cell):
		req := SwapRequest{From: g.selected, To: cell}
		g.selected = -1
		g.swap(req)
	default:
		g.selected = cell
	}
}

// swap forwards a swap request to the session. The swap is always
// performed, whether or not it makes a run.
func (g *Game) swap(req SwapRequest) {
	d := g.session.ApplySwap(req.From, req.To)
	if !d.Applied {
		return
	}
	g.stats.Swaps++
	g.cursor = req.To
	g.apply(d)
}

// apply folds an operation's delta into the run counters.
func (g *Game) apply(d core.Delta) {
	g.crushes += d.Crushes
	g.stats.Crushes += d.Crushes
	if d.Chain > g.stats.BestChain {
		g.stats.BestChain = d.Chain
	}
	if d.Points > 0 {
		g.lastPoints = d.Points
	}
}

// onCrush highlights the cells of every clear.
func (g *Game) onCrush(ev core.CrushEvent) {
	for _, cell := range ev.Cells {
		g.flash.Put(cell, g.flashTicks)
	}
}

// decayFlash counts down the highlighted cells.
func (g *Game) decayFlash() {
	if g.flash.Len() == 0 {
		return
	}

	type entry struct{ cell, left int }
	entries := make([]entry, 0, g.flash.Len())
	g.flash.ForEach(func(cell, left int) bool {
		entries = append(entries, entry{cell, left})
		return true
	})

	for _, e := range entries {
		if e.left <= 1 {
			g.flash.Del(e.cell)
		} else {
			g.flash.Put(e.cell, e.left-1)
		}
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Score()
	}
	return platformcore.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Stats returns the counters of the current run.
func (g *Game) Stats() platformcore.RunStats {
	return g.stats
}
