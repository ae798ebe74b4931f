package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crush/internal/audio"
	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/registry"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

// Options carries the per-run collaborators of a Model. Zero values are
// valid: no store means no leaderboard, no sound means silence.
type Options struct {
	Store  *storage.Store
	Sound  audio.Player
	Logger *log.Logger
	Player string // Recorded with the run; the SSH user name, empty locally

	// InMenu lets B/Esc return to the mode menu instead of doing nothing.
	InMenu bool
}

// Model runs one game mode: it feeds key and mouse input to the game at a
// fixed tick rate, draws it, plays crush sounds and records finished runs.
type Model struct {
	game   registry.Game
	opts   Options
	config core.RuntimeConfig
	keys   *KeyMapper

	screen *core.Screen
	input  core.InputFrame
	state  core.GameState

	started  time.Time
	recorded bool // The current run is in the leaderboard, or was skipped
	quitting bool
	leaving  bool // Back to the menu
}

// NewModel wraps game. A zero seed is replaced by the current time.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		opts:    opts,
		config:  cfg,
		keys:    NewKeyMapper(),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		started: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickEvery(m.config.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.input)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		return m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.screenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.recordEndless()
		m.quitting = true
		return m, tea.Quit
	}

	idle := m.state.GameOver || m.state.Paused
	if m.opts.InMenu && idle && m.input.Has(core.ActionBack) {
		m.recordEndless()
		m.leaving = true
	}
	return m, nil
}

// resize keeps the run of games that can adapt to the new size and
// restarts the others, unless their run is already over.
func (m *Model) resize(w, h int) {
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, h)

	switch r, ok := m.game.(registry.Resizer); {
	case ok:
		r.Resize(w, h)
	case !m.state.GameOver:
		m.game.Reset(m.config)
	}
}

func (m Model) tick() (tea.Model, tea.Cmd) {
	if m.leaving || m.quitting {
		return m, nil
	}

	if m.state.GameOver && m.input.Has(core.ActionRestart) {
		m.restart()
		m.input.Clear()
		return m, tickEvery(m.config.TickRate)
	}

	res := m.game.Step(m.input)
	m.state = res.State
	m.input.Clear()

	// One sound per crush signal; the player caps overlapping voices
	for range res.Crushes {
		m.opts.Sound.Crush()
	}

	if m.state.GameOver && !m.recorded {
		m.record()
	}
	return m, tickEvery(m.config.TickRate)
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.started = time.Now()
	m.recorded = false
}

// recordEndless records the run of an endless game the player is leaving.
// Timed games record themselves at game over.
func (m *Model) recordEndless() {
	if e, ok := m.game.(registry.Endless); ok && e.Endless() && !m.recorded {
		m.state = m.game.State()
		m.record()
	}
}

// record stores the current run once. Runs without points are skipped and
// storage failures only get logged.
func (m *Model) record() {
	m.recorded = true
	if m.opts.Store == nil || m.state.Score <= 0 {
		return
	}

	run := m.run()
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("cannot save run", "game", run.GameID, "err", err)
		return
	}
	m.opts.Logger.Info("run saved", "game", run.GameID, "player", run.Player, "score", run.Score)
}

func (m *Model) run() storage.Run {
	r := storage.Run{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    m.state.Score,
		Duration: time.Since(m.started).Truncate(time.Second),
	}
	if sr, ok := m.game.(registry.StatsReporter); ok {
		st := sr.Stats()
		r.Swaps, r.Crushes, r.Bombs, r.BestChain = st.Swaps, st.Crushes, st.Bombs, st.BestChain
	}
	return r
}

// screenshot writes the plain text of the current frame to
// ~/.crush/screenshots.
func (m *Model) screenshot() {
	m.draw()

	path, err := screenshotPath(m.game.ID(), time.Now())
	if err == nil {
		err = os.WriteFile(path, []byte(m.screen.String()), 0o600)
	}
	if err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

func screenshotPath(gameID string, at time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".crush", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, at.Format("20060102_150405"))), nil
}

func (m Model) draw() {
	m.screen.Clear()
	m.game.Render(m.screen)
}

func (m Model) View() string {
	if m.quitting || m.leaving {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player quit the program.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the player left for the menu.
func (m Model) BackToMenu() bool { return m.leaving }

// Run plays game full screen until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	// Cell motion reports press, drag and release for swipe gestures
	_, err := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
